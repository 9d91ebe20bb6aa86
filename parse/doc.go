// Package parse reads JSON, YAML and INI text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseFormat(format.YAMLFormat),
//	    parse.ParseSource("base.yaml"))
//
// Syntax errors are returned as *ParseError, which matches ErrParse with
// errors.Is and carries the format, the source name and, where the decoder
// reports one, the line and column.
//
// INI values beginning with '{' or '[' are speculatively decoded as JSON. When
// that fails the raw string is kept and a Warning is logged to the logger given
// with ParseLogger and passed to the ParseWarn callback.
//
// # Related Packages
//
//   - github.com/monodev/devm/ir - IR representation
//   - github.com/monodev/devm/encode - Encode IR to text
package parse
