package ir

import (
	"encoding/json"
	"strconv"
	"strings"
)

// compactOrdered renders n as compact JSON keeping key order.
func compactOrdered(n *Node) string {
	buf := &strings.Builder{}
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.Type {
		case ObjectType:
			buf.WriteByte('{')
			for i, f := range n.Fields {
				if i > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(strconv.Quote(f.String))
				buf.WriteByte(':')
				walk(n.Values[i])
			}
			buf.WriteByte('}')
		case ArrayType:
			buf.WriteByte('[')
			for i, v := range n.Values {
				if i > 0 {
					buf.WriteByte(',')
				}
				walk(v)
			}
			buf.WriteByte(']')
		default:
			d, _ := json.Marshal(n.ToAny())
			buf.Write(d)
		}
	}
	walk(n)
	return buf.String()
}
