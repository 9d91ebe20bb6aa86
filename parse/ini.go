package parse

import (
	"strings"

	"gopkg.in/ini.v1"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/ir/kpath"
)

// parseINI maps each section to a top-level object key.  Keys of the default
// section, which precede any section header, become top-level string values
// and are never decoded as JSON: a top-level object is written back as a
// section.
func parseINI(d []byte, o *parseOpts) (*ir.Node, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
	}, d)
	if err != nil {
		return nil, &ParseError{Format: o.format, Source: o.source, Err: err}
	}
	res := ir.Object()
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			for _, k := range sec.Keys() {
				res.Set(k.Name(), ir.FromString(k.Value()))
			}
			continue
		}
		secNode := ir.Object()
		for _, k := range sec.Keys() {
			p := kpath.Join(kpath.Field(sec.Name()), kpath.Field(k.Name()))
			secNode.Set(k.Name(), o.iniValue(p, k.Value()))
		}
		res.Set(sec.Name(), secNode)
	}
	return res, nil
}

// iniValue decodes v as JSON when it looks like a JSON object or array,
// falling back to the raw string with a warning.
func (o *parseOpts) iniValue(p *kpath.KPath, v string) *ir.Node {
	t := strings.TrimSpace(v)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return ir.FromString(v)
	}
	sub := &parseOpts{format: format.JSONFormat, source: o.source, log: o.log}
	n, err := parseJSON([]byte(t), sub)
	if err != nil {
		o.warning(&Warning{
			Source:  o.source,
			Path:    p.String(),
			Message: "value looks like JSON but does not parse, keeping raw string",
			Err:     err,
		})
		return ir.FromString(v)
	}
	return n
}
