package parse

import (
	"fmt"
	"log/slog"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.log == nil {
		pOpts.log = slog.New(slog.DiscardHandler)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d, pOpts)
	case format.YAMLFormat:
		return parseYAML(d, pOpts)
	case format.INIFormat:
		return parseINI(d, pOpts)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
}

func (o *parseOpts) errAt(err error, d []byte, off int64) *ParseError {
	pe := &ParseError{Format: o.format, Source: o.source, Err: err}
	if off >= 0 && off <= int64(len(d)) {
		pe.Line, pe.Column = position(d, off)
	}
	return pe
}

// position converts a byte offset into a 1-based line and column.
func position(d []byte, off int64) (int, int) {
	line, col := 1, 1
	for _, c := range d[:off] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
