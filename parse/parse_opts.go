package parse

import (
	"log/slog"

	"github.com/monodev/devm/format"
)

type parseOpts struct {
	format format.Format
	source string
	log    *slog.Logger
	warn   func(*Warning)
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseINI() ParseOption {
	return ParseFormat(format.INIFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseSource names the input in errors and warnings.
func ParseSource(name string) ParseOption {
	return func(o *parseOpts) { o.source = name }
}

// ParseLogger sets the logger that receives warnings.  The default discards.
func ParseLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.log = l }
}

// ParseWarn registers a callback invoked for every warning.
func ParseWarn(f func(*Warning)) ParseOption {
	return func(o *parseOpts) { o.warn = f }
}

func (o *parseOpts) warning(w *Warning) {
	o.log.Warn(w.Message, "source", w.Source, "path", w.Path, "error", w.Err)
	if o.warn != nil {
		o.warn(w)
	}
}
