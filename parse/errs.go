package parse

import (
	"errors"
	"fmt"

	"github.com/monodev/devm/format"
)

var ErrParse = errors.New("parse error")

type ParseError struct {
	Format format.Format
	Source string
	// Line and Column are 1-based; 0 when the decoder gives no position.
	Line, Column int
	Err          error
}

func (e *ParseError) Error() string {
	src := e.Source
	if src == "" {
		src = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: error parsing %s %s at %d:%d: %v", ErrParse, e.Format, src, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: error parsing %s %s: %v", ErrParse, e.Format, src, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Warning reports a non-fatal problem found while parsing.
type Warning struct {
	Source  string
	Path    string
	Message string
	Err     error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s: %s: %s: %v", w.Source, w.Path, w.Message, w.Err)
}
