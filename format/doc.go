// Package format names the document formats devm reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, err = format.FromPath("config/base.ini")
//	suffix := f.Suffix() // ".ini"
//
// # Related Packages
//
//   - github.com/monodev/devm/parse - Parse text to IR
//   - github.com/monodev/devm/encode - Encode IR to text
package format
