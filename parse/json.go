package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/monodev/devm/ir"
)

type jsonFrame struct {
	node *ir.Node
	key  *string
}

// parseJSON builds the tree from the decoder's token stream, keeping object
// key order.  Open containers live on an explicit stack.
func parseJSON(d []byte, o *parseOpts) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var (
		root  *ir.Node
		stack []*jsonFrame
	)
	add := func(n *ir.Node) {
		if len(stack) == 0 {
			root = n
			return
		}
		top := stack[len(stack)-1]
		if top.node.Type == ir.ArrayType {
			top.node.Append(n)
			return
		}
		top.node.Set(*top.key, n)
		top.key = nil
	}
	for root == nil || len(stack) != 0 {
		off := dec.InputOffset()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, o.errAt(io.ErrUnexpectedEOF, d, int64(len(d)))
		}
		if err != nil {
			var se *json.SyntaxError
			if errors.As(err, &se) {
				off = se.Offset
			}
			return nil, o.errAt(err, d, off)
		}
		switch x := tok.(type) {
		case json.Delim:
			switch x {
			case '{':
				n := ir.Object()
				add(n)
				stack = append(stack, &jsonFrame{node: n})
			case '[':
				n := ir.FromSlice(nil)
				add(n)
				stack = append(stack, &jsonFrame{node: n})
			default:
				stack = stack[:len(stack)-1]
			}
		case string:
			if len(stack) != 0 {
				top := stack[len(stack)-1]
				if top.node.Type == ir.ObjectType && top.key == nil {
					top.key = &x
					continue
				}
			}
			add(ir.FromString(x))
		case json.Number:
			add(ir.FromNumber(x.String()))
		case bool:
			add(ir.FromBool(x))
		case nil:
			add(ir.Null())
		}
	}
	off := dec.InputOffset()
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected data after top-level value")
		}
		return nil, o.errAt(err, d, off)
	}
	return root, nil
}
