package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	if err := es.jsonValue(node, buf, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

func (es *EncState) jsonValue(node *ir.Node, buf *bytes.Buffer, depth int) error {
	switch node.Type {
	case ir.ObjectType:
		return es.jsonObject(node, buf, depth)
	case ir.ArrayType:
		return es.jsonArray(node, buf, depth)
	}
	s, err := jsonLeaf(node)
	if err != nil {
		return err
	}
	buf.WriteString(es.color(node.Type, ValueColor, s))
	return nil
}

func (es *EncState) jsonObject(node *ir.Node, buf *bytes.Buffer, depth int) error {
	if len(node.Fields) == 0 {
		buf.WriteString(es.color(ir.ObjectType, SepColor, "{}"))
		return nil
	}
	buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
	for i, f := range node.Fields {
		if i > 0 {
			buf.WriteString(es.color(ir.ObjectType, SepColor, ","))
		}
		es.jsonBreak(buf, depth+1)
		buf.WriteString(es.color(ir.ObjectType, FieldColor, jsonQuote(f.String)))
		buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
		if !es.wire {
			buf.WriteByte(' ')
		}
		if err := es.jsonValue(node.Values[i], buf, depth+1); err != nil {
			return fmt.Errorf("%s: %w", f.String, err)
		}
	}
	es.jsonBreak(buf, depth)
	buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	return nil
}

func (es *EncState) jsonArray(node *ir.Node, buf *bytes.Buffer, depth int) error {
	if len(node.Values) == 0 {
		buf.WriteString(es.color(ir.ArrayType, SepColor, "[]"))
		return nil
	}
	buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
	for i, v := range node.Values {
		if i > 0 {
			buf.WriteString(es.color(ir.ArrayType, SepColor, ","))
		}
		es.jsonBreak(buf, depth+1)
		if err := es.jsonValue(v, buf, depth+1); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	es.jsonBreak(buf, depth)
	buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	return nil
}

func (es *EncState) jsonBreak(buf *bytes.Buffer, depth int) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
}

func jsonLeaf(node *ir.Node) (string, error) {
	switch node.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if node.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		return formatNumber(node, format.JSONFormat)
	case ir.StringType:
		return jsonQuote(node.String), nil
	}
	return "", fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
}

func jsonQuote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// strings always encode
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
