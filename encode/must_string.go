package encode

import (
	"bytes"
	"strings"

	"github.com/monodev/devm/ir"
)

// MustString renders node as compact JSON, panicking on encoding errors.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
