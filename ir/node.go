package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

// Clone returns a deep copy of y.  It walks the tree with an explicit stack
// so arbitrarily deep documents do not grow the goroutine stack.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	type pair struct{ src, dst *Node }
	res := &Node{}
	stack := []pair{{y, res}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		src, dst := p.src, p.dst
		dst.Type = src.Type
		dst.String = src.String
		dst.Bool = src.Bool
		dst.Number = src.Number
		if src.Float64 != nil {
			f := *src.Float64
			dst.Float64 = &f
		}
		if src.Int64 != nil {
			i := *src.Int64
			dst.Int64 = &i
		}
		if src.Fields != nil {
			dst.Fields = make([]*Node, len(src.Fields))
			for i, f := range src.Fields {
				dst.Fields[i] = &Node{}
				stack = append(stack, pair{f, dst.Fields[i]})
			}
		}
		if src.Values != nil {
			dst.Values = make([]*Node, len(src.Values))
			for i, v := range src.Values {
				dst.Values[i] = &Node{}
				stack = append(stack, pair{v, dst.Values[i]})
			}
		}
	}
	return res
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node from its literal text, filling in Int64
// or Float64 when the text fits.
func FromNumber(text string) *Node {
	res := &Node{Type: NumberType, Number: text}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		res.Float64 = &f
	}
	return res
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// Object returns an empty object node.
func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Object()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// FromMap builds an object with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.Set(key, yMap[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field.String] = node.Values[i]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// FromAny converts decoded Go values (as produced by encoding/json or a YAML
// decoder into any) to a node.  Maps are given sorted key order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = n
		}
		return FromSlice(vals), nil
	case map[string]any:
		res := Object()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T", ErrType, v)
	}
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return FromNumber(strconv.FormatUint(u, 10))
}

// ToAny converts a node to plain Go values: map[string]any, []any, string,
// bool, int64, float64, json.Number or nil.
func (y *Node) ToAny() any {
	switch y.Type {
	case NullType:
		return nil
	case BoolType:
		return y.Bool
	case StringType:
		return y.String
	case NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		default:
			return json.Number(y.Number)
		}
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = y.Values[i].ToAny()
		}
		return res
	}
	return nil
}

// FieldIndex returns the index of key in an object, or -1.
func (y *Node) FieldIndex(key string) int {
	for i, f := range y.Fields {
		if f.String == key {
			return i
		}
	}
	return -1
}

func Get(y *Node, field string) *Node {
	i := y.FieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// Set sets key to val in the object y.  An existing key keeps its position.
func (y *Node) Set(key string, val *Node) {
	if i := y.FieldIndex(key); i != -1 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, FromString(key))
	y.Values = append(y.Values, val)
}

// Delete removes key from the object y, reporting whether it was present.
func (y *Node) Delete(key string) bool {
	i := y.FieldIndex(key)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Append(vs ...*Node) {
	y.Values = append(y.Values, vs...)
}
