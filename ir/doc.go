// Package ir provides the in-memory document model shared by every devm codec.
//
// # Overview
//
// A parsed JSON, YAML or INI file is represented as a tree of *Node. The
// codecs in parse and encode only ever read into and write out of this form,
// which keeps the merge engine format-agnostic.
//
// The IR works as a recursive tagged union structure, where values are placed
// in fields depending on the node type.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean, in Bool
//   - NumberType: numeric value, see Numbers below
//   - StringType: string value, in String
//   - ArrayType: ordered list of nodes in Values (a Sequence)
//   - ObjectType: key-value pairs in Fields and Values (a Mapping)
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the StringType key for the value at
// Values[i], so there are always the same number of fields as values. Keys are
// unique within an object. Set replaces the value of an existing key in place,
// so the first position of a key is kept and the last value wins.
//
// # Numbers
//
// Number values are placed under:
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: the literal text, when the source format supplied one
//
// Encoders prefer Number when present so that numbers round-trip exactly.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromString("a")})},
//	})
//	obj.Set("age", ir.FromInt(30))
//
// # Paths
//
// Use GetKPath to navigate with kinded paths (see package kpath):
//
//	child, err := node.GetKPath(`a.b[0]."dotted.key"`)
//
// # Thread Safety
//
// Node structures are not thread-safe. Clone a node for each goroutine that
// needs to modify it.
//
// # Related Packages
//
//   - github.com/monodev/devm/parse - Parses text into IR nodes
//   - github.com/monodev/devm/encode - Encodes IR nodes to text
//   - github.com/monodev/devm/mergeop - Deep merge of IR nodes
package ir
