package parse

import (
	"bytes"
	"testing"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func encodeString(t *testing.T, node *ir.Node, f format.Format) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeFormat(f)); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}
