package encode

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func encodeINI(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.ObjectType:
	default:
		return fmt.Errorf("%w: ini documents must be objects, got %s", ErrEncoding, node.Type)
	}
	f := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	def := f.Section("")
	var secs []int
	for i, field := range node.Fields {
		v := node.Values[i]
		if v.Type == ir.ObjectType {
			secs = append(secs, i)
			continue
		}
		s, err := iniValue(v)
		if err != nil {
			return fmt.Errorf("%s: %w", field.String, err)
		}
		if _, err := def.NewKey(field.String, s); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncoding, field.String, err)
		}
	}
	for _, i := range secs {
		name := node.Fields[i].String
		sec, err := f.NewSection(name)
		if err != nil {
			return fmt.Errorf("%w: section %q: %w", ErrEncoding, name, err)
		}
		sv := node.Values[i]
		for j, kf := range sv.Fields {
			s, err := iniValue(sv.Values[j])
			if err != nil {
				return fmt.Errorf("%s.%s: %w", name, kf.String, err)
			}
			if _, err := sec.NewKey(kf.String, s); err != nil {
				return fmt.Errorf("%w: %s.%s: %w", ErrEncoding, name, kf.String, err)
			}
		}
	}
	if _, err := f.WriteTo(buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return nil
}

func iniValue(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.StringType:
		return iniString(node.String), nil
	case ir.ObjectType, ir.ArrayType:
		buf := bytes.NewBuffer(nil)
		es := &EncState{format: format.JSONFormat, wire: true}
		if err := es.jsonValue(node, buf, 0); err != nil {
			return "", err
		}
		return buf.String(), nil
	case ir.NumberType:
		return formatNumber(node, format.INIFormat)
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NullType:
		return "null", nil
	}
	return "", fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
}

// iniString protects values the reader would alter: surrounding quotes are
// stripped, a leading """ opens a multiline value and a trailing backslash
// continues the line.  Such values are wrapped in """, which is read back
// literally.  Values with a newline or backquote are wrapped by the writer.
func iniString(s string) string {
	if strings.ContainsAny(s, "\n`") {
		return s
	}
	if strings.HasPrefix(s, `"""`) || strings.HasSuffix(s, `\`) || surrounded(s, '"') || surrounded(s, '\'') {
		return `"""` + s + `"""`
	}
	return s
}

func surrounded(s string, q byte) bool {
	return len(s) >= 2 && s[0] == q && s[len(s)-1] == q
}
