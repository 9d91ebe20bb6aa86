package ir

import "math"

// Equal reports whether a and b are structurally equal.  Object key order
// matters.  Numbers are equal when they hold the same integer, the same float
// or, lacking both, the same literal text; so 1 and 1.0 differ.
func Equal(a, b *Node) bool {
	type pair struct{ a, b *Node }
	work := []pair{{a, b}}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		x, y := p.a, p.b
		if x == y {
			continue
		}
		if x == nil || y == nil || x.Type != y.Type {
			return false
		}
		switch x.Type {
		case NumberType:
			if !numberEqual(x, y) {
				return false
			}
		case StringType:
			if x.String != y.String {
				return false
			}
		case BoolType:
			if x.Bool != y.Bool {
				return false
			}
		case ArrayType, ObjectType:
			if len(x.Fields) != len(y.Fields) || len(x.Values) != len(y.Values) {
				return false
			}
			for i := range x.Fields {
				work = append(work, pair{x.Fields[i], y.Fields[i]})
			}
			for i := range x.Values {
				work = append(work, pair{x.Values[i], y.Values[i]})
			}
		}
	}
	return true
}

func numberEqual(a, b *Node) bool {
	switch {
	case a.Int64 != nil || b.Int64 != nil:
		return a.Int64 != nil && b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Float64 != nil || b.Float64 != nil:
		if a.Float64 == nil || b.Float64 == nil {
			return false
		}
		x, y := *a.Float64, *b.Float64
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}
	return a.Number == b.Number
}
