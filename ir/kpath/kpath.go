package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrKPath = errors.New("bad kpath")

// KPath is one segment of a kinded path.  Exactly one of Field and Index is
// set; Next is the following segment or nil for the leaf.
type KPath struct {
	Field *string
	Index *int
	Next  *KPath
}

func Field(name string) *KPath {
	return &KPath{Field: &name}
}

func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// Parse parses a kinded path string.  The empty string is the root and
// parses to nil.
func Parse(kp string) (*KPath, error) {
	if kp == "" {
		return nil, nil
	}
	var head, tail *KPath
	add := func(seg *KPath) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	i := 0
	for i < len(kp) {
		switch kp[i] {
		case '[':
			j := strings.IndexByte(kp[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unclosed index at %d in %q", ErrKPath, i, kp)
			}
			n, err := strconv.Atoi(kp[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrKPath, kp[i+1:i+j], kp)
			}
			add(Index(n))
			i += j + 1
		case '.':
			if head == nil {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrKPath, kp)
			}
			i++
			f, n, err := parseField(kp[i:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, kp)
			}
			add(Field(f))
			i += n
		default:
			if head != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrKPath, i, kp)
			}
			f, n, err := parseField(kp[i:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, kp)
			}
			add(Field(f))
			i += n
		}
	}
	return head, nil
}

func parseField(s string) (string, int, error) {
	if s == "" {
		return "", 0, fmt.Errorf("%w: empty field", ErrKPath)
	}
	if s[0] == '"' {
		for j := 1; j < len(s); j++ {
			switch s[j] {
			case '\\':
				j++
			case '"':
				v, err := strconv.Unquote(s[:j+1])
				if err != nil {
					return "", 0, fmt.Errorf("%w: %w", ErrKPath, err)
				}
				return v, j + 1, nil
			}
		}
		return "", 0, fmt.Errorf("%w: unterminated quoted field", ErrKPath)
	}
	j := 0
	for j < len(s) && s[j] != '.' && s[j] != '[' {
		if s[j] == ']' || s[j] == '"' {
			return "", 0, fmt.Errorf("%w: unexpected %q", ErrKPath, s[j])
		}
		j++
	}
	if j == 0 {
		return "", 0, fmt.Errorf("%w: empty field", ErrKPath)
	}
	return s[:j], j, nil
}

// QuoteField reports whether a field name must be quoted in a kinded path.
func QuoteField(f string) bool {
	if f == "" {
		return true
	}
	for _, r := range f {
		switch r {
		case '.', '[', ']', '"':
			return true
		}
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
	}
	return false
}

// String returns the kinded path string representation of p.
func (p *KPath) String() string {
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			continue
		}
		if x.Field == nil {
			continue
		}
		if x != p {
			buf.WriteByte('.')
		}
		if QuoteField(*x.Field) {
			buf.WriteString(strconv.Quote(*x.Field))
		} else {
			buf.WriteString(*x.Field)
		}
	}
	return buf.String()
}

// Segments returns the segments of p as a slice, each with Next cleared.
func (p *KPath) Segments() []*KPath {
	var res []*KPath
	for x := p; x != nil; x = x.Next {
		res = append(res, &KPath{Field: x.Field, Index: x.Index})
	}
	return res
}

// Join links segs into one path.
func Join(segs ...*KPath) *KPath {
	var head, tail *KPath
	for _, s := range segs {
		seg := &KPath{Field: s.Field, Index: s.Index}
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head
}
