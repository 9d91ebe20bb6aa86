package libdiff

import (
	"fmt"
	"io"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeOp int

const (
	Added ChangeOp = iota
	Removed
	Changed
	// Reordered marks an object whose shared keys appear in a different order.
	Reordered
)

func (op ChangeOp) String() string {
	switch op {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	case Reordered:
		return "^"
	}
	return fmt.Sprintf("ChangeOp(%d)", int(op))
}

type Change struct {
	// Path is nil for the document root.
	Path *kpath.KPath
	Op   ChangeOp
	From *ir.Node
	To   *ir.Node
}

func (c *Change) String() string {
	p := c.Path.String()
	if p == "" {
		p = "$"
	}
	switch c.Op {
	case Added:
		return fmt.Sprintf("%s %s: %s", c.Op, p, encode.MustString(c.To))
	case Removed:
		return fmt.Sprintf("%s %s: %s", c.Op, p, encode.MustString(c.From))
	case Reordered:
		return fmt.Sprintf("%s %s: %v -> %v", c.Op, p, c.From.Keys(), c.To.Keys())
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op, p, encode.MustString(c.From), encode.MustString(c.To))
}

// Diff returns the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diffNode(from, to, nil, &res)
	return res
}

// Equal reports whether from and to have no differences.
func Equal(from, to *ir.Node) bool {
	return len(Diff(from, to)) == 0
}

func WriteChanges(w io.Writer, changes []Change) error {
	for i := range changes {
		if _, err := fmt.Fprintln(w, changes[i].String()); err != nil {
			return err
		}
	}
	return nil
}

func diffNode(from, to *ir.Node, path []*kpath.KPath, res *[]Change) {
	switch {
	case from.Type == ir.ObjectType && to.Type == ir.ObjectType:
		DiffObject(from, to, path, res)
	case from.Type == ir.ArrayType && to.Type == ir.ArrayType:
		diffArray(from, to, path, res)
	case !ir.Equal(from, to):
		*res = append(*res, Change{Path: kpath.Join(path...), Op: Changed, From: from, To: to})
	}
}

// DiffObject aligns the keys of from and to, appending changes to res.
func DiffObject(from, to *ir.Node, path []*kpath.KPath, res *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fromIndex := fieldIndex(from)
	toIndex := fieldIndex(to)
	moved := false
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				f := runeMap[r]
				if _, ok := toIndex[f]; ok {
					moved = true
				} else {
					*res = append(*res, Change{Path: kpath.Join(field(path, f)...), Op: Removed, From: from.Values[fi]})
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				diffNode(from.Values[fi], to.Values[ti], field(path, runeMap[r]), res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				f := runeMap[r]
				if j, ok := fromIndex[f]; ok {
					moved = true
					diffNode(from.Values[j], to.Values[ti], field(path, f), res)
				} else {
					*res = append(*res, Change{Path: kpath.Join(field(path, f)...), Op: Added, To: to.Values[ti]})
				}
				ti++
			}
		}
	}
	if moved {
		*res = append(*res, Change{Path: kpath.Join(path...), Op: Reordered, From: from, To: to})
	}
}

func diffArray(from, to *ir.Node, path []*kpath.KPath, res *[]Change) {
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		diffNode(from.Values[i], to.Values[i], index(path, i), res)
	}
	for i := n; i < len(from.Values); i++ {
		*res = append(*res, Change{Path: kpath.Join(index(path, i)...), Op: Removed, From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		*res = append(*res, Change{Path: kpath.Join(index(path, i)...), Op: Added, To: to.Values[i]})
	}
}

func field(path []*kpath.KPath, f string) []*kpath.KPath {
	return append(path[:len(path):len(path)], kpath.Field(f))
}

func index(path []*kpath.KPath, i int) []*kpath.KPath {
	return append(path[:len(path):len(path)], kpath.Index(i))
}

func fieldIndex(node *ir.Node) map[string]int {
	res := make(map[string]int, len(node.Fields))
	for i, f := range node.Fields {
		res[f.String] = i
	}
	return res
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
