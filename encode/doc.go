// Package encode encodes IR nodes to JSON, YAML or INI text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
//	// compact JSON on one line
//	err = encode.Encode(node, w, encode.EncodeWire(true))
//
// JSON and YAML output is indented by two spaces and ends in a newline. INI
// output places top-level objects in sections and everything else in the
// default section; nested objects and arrays inside a section are written as
// compact JSON, since INI has no nesting.
//
// # Related Packages
//
//   - github.com/monodev/devm/ir - IR representation
//   - github.com/monodev/devm/parse - Parse text to IR
package encode
