// Package patch applies RFC 6902 JSON Patch documents to documents of any
// supported format.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/parse"
)

var ErrPatch = errors.New("patch error")

// Apply applies the operations in ops, a JSON Patch operation array, to doc
// and returns the result.  doc is not modified.  Keys keep their position
// from doc; keys added by the patch follow them.
func Apply(doc, ops *ir.Node) (*ir.Node, error) {
	if ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: patch must be an array of operations, got %s", ErrPatch, ops.Type)
	}
	d, err := marshalJSON(ops)
	if err != nil {
		return nil, err
	}
	return ApplyJSON(doc, d)
}

// ApplyJSON is Apply with the patch given as JSON text.
func ApplyJSON(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := marshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		return nil, fmt.Errorf("%w: reading patched document: %w", ErrPatch, err)
	}
	restoreOrder(doc, res)
	return res, nil
}

func marshalJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// restoreOrder reorders the keys of objects in patched to follow orig.
func restoreOrder(orig, patched *ir.Node) {
	type pair struct{ orig, patched *ir.Node }
	stack := []pair{{orig, patched}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		o, n := p.orig, p.patched
		switch {
		case o.Type == ir.ObjectType && n.Type == ir.ObjectType:
			fields := make([]*ir.Node, 0, len(n.Fields))
			values := make([]*ir.Node, 0, len(n.Values))
			used := make([]bool, len(n.Fields))
			for i, f := range o.Fields {
				j := n.FieldIndex(f.String)
				if j == -1 {
					continue
				}
				used[j] = true
				fields = append(fields, n.Fields[j])
				values = append(values, n.Values[j])
				stack = append(stack, pair{o.Values[i], n.Values[j]})
			}
			for j, f := range n.Fields {
				if !used[j] {
					fields = append(fields, f)
					values = append(values, n.Values[j])
				}
			}
			n.Fields, n.Values = fields, values
		case o.Type == ir.ArrayType && n.Type == ir.ArrayType:
			for i := range min(len(o.Values), len(n.Values)) {
				stack = append(stack, pair{o.Values[i], n.Values[i]})
			}
		}
	}
}
