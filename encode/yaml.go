package encode

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml/token"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	lines, err := es.yamlLines(node)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		buf.WriteString(ln)
		buf.WriteByte('\n')
	}
	return nil
}

// yamlLines renders node as block YAML starting at column 0.  Callers nest
// the result by prefixing each line.
func (es *EncState) yamlLines(node *ir.Node) ([]string, error) {
	pad := strings.Repeat(" ", es.indent)
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return []string{es.color(ir.ObjectType, SepColor, "{}")}, nil
		}
		var res []string
		for i, f := range node.Fields {
			key := es.color(ir.ObjectType, FieldColor, yamlString(f.String)) +
				es.color(ir.ObjectType, SepColor, ":")
			v := node.Values[i]
			sub, err := es.yamlLines(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.String, err)
			}
			if !isBlock(v) {
				res = append(res, key+" "+sub[0])
				continue
			}
			res = append(res, key)
			for _, ln := range sub {
				res = append(res, pad+ln)
			}
		}
		return res, nil
	case ir.ArrayType:
		if len(node.Values) == 0 {
			return []string{es.color(ir.ArrayType, SepColor, "[]")}, nil
		}
		var res []string
		dash := es.color(ir.ArrayType, SepColor, "-")
		// "- " is two columns wide regardless of indent
		cont := strings.Repeat(" ", max(es.indent, 2))
		lead := dash + cont[1:]
		for i, v := range node.Values {
			sub, err := es.yamlLines(v)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res = append(res, lead+sub[0])
			for _, ln := range sub[1:] {
				res = append(res, cont+ln)
			}
		}
		return res, nil
	}
	s, err := yamlLeaf(node)
	if err != nil {
		return nil, err
	}
	return []string{es.color(node.Type, ValueColor, s)}, nil
}

func isBlock(node *ir.Node) bool {
	switch node.Type {
	case ir.ObjectType:
		return len(node.Fields) > 0
	case ir.ArrayType:
		return len(node.Values) > 0
	}
	return false
}

func yamlLeaf(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(node.Bool), nil
	case ir.NumberType:
		return formatNumber(node, format.YAMLFormat)
	case ir.StringType:
		return yamlString(node.String), nil
	}
	return "", fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
}

// plain scalars that resolve to non-strings in YAML 1.1 or 1.2
var yamlReserved = map[string]bool{
	"~": true, "null": true, "true": true, "false": true,
	"y": true, "n": true, "yes": true, "no": true, "on": true, "off": true,
}

func yamlString(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	if s == "" || token.IsNeedQuoted(s) || yamlReserved[strings.ToLower(s)] {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s[:1], "!&*-?:,[]{}#|>@`\"'%") {
		return true
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.HasSuffix(s, ":") {
		return true
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return true
		}
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	return false
}
