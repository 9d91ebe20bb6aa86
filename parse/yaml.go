package parse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/monodev/devm/ir"
)

// parseYAML decodes the first document of d.  Only the core schema is
// understood: no custom tag handlers are registered, aliases are expanded by
// the decoder and mapping order is kept with ordered maps.
func parseYAML(d []byte, o *parseOpts) (*ir.Node, error) {
	var v any
	err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	if err != nil {
		return nil, &ParseError{Format: o.format, Source: o.source, Err: err}
	}
	res, err := fromYAML(v)
	if err != nil {
		return nil, &ParseError{Format: o.format, Source: o.source, Err: err}
	}
	return res, nil
}

func fromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.Object()
		for _, item := range x {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(yamlKey(item.Key), val)
		}
		return res, nil
	case []any:
		res := ir.FromSlice(nil)
		for _, e := range x {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339Nano)), nil
	default:
		res, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("unsupported yaml value: %w", err)
		}
		return res, nil
	}
}

func yamlKey(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
