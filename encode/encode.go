package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format
	indent int
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes node to w in the format selected by opts (JSON by default).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent < 0 {
		es.indent = 0
	}
	if node == nil {
		node = ir.Null()
	}
	buf := bytes.NewBuffer(nil)
	var err error
	switch es.format {
	case format.JSONFormat:
		err = encodeJSON(node, buf, es)
	case format.YAMLFormat:
		err = encodeYAML(node, buf, es)
	case format.INIFormat:
		err = encodeINI(node, buf, es)
	default:
		err = fmt.Errorf("%w: %w: %d", ErrEncoding, format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// formatNumber renders a number node as text.  The literal text from the
// source document is preferred when present, except that YAML gets exponent
// literals such as 1e3 re-rendered, since YAML reads them as strings.
func formatNumber(node *ir.Node, f format.Format) (string, error) {
	switch {
	case node.Number != "" && f == format.YAMLFormat && node.Float64 != nil && strings.ContainsAny(node.Number, "eE"):
		return formatFloat(*node.Float64, f)
	case node.Number != "":
		return node.Number, nil
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		return formatFloat(*node.Float64, f)
	}
	return "", fmt.Errorf("%w: number node has no value", ErrEncoding)
}

func formatFloat(v float64, f format.Format) (string, error) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		switch f {
		case format.JSONFormat:
			return "", fmt.Errorf("%w: %v cannot be represented in JSON", ErrEncoding, v)
		case format.YAMLFormat:
			switch {
			case math.IsNaN(v):
				return ".nan", nil
			case v > 0:
				return ".inf", nil
			default:
				return "-.inf", nil
			}
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	s := strconv.FormatFloat(v, 'g', -1, 64)
	switch {
	case !strings.ContainsAny(s, ".eE"):
		s += ".0"
	case f == format.YAMLFormat && !strings.Contains(s, "."):
		// 1e+21 -> 1.0e+21
		i := strings.IndexByte(s, 'e')
		s = s[:i] + ".0" + s[i:]
	}
	return s, nil
}
