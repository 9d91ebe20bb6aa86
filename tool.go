package devm

import (
	"io"
	"log/slog"
	"os"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/eval"
	"github.com/monodev/devm/mergeop"
)

type Tool struct {
	Log    *slog.Logger
	Policy mergeop.Policy
	// Env is the environment for $[...] expansion, used when Expand is set.
	Env    eval.Env
	Expand bool
	// Colors are used for output to Stdout only.
	Colors *encode.Colors
	Stdout io.Writer
}

func DefaultTool() *Tool {
	return &Tool{
		Log:    slog.New(slog.DiscardHandler),
		Env:    eval.Env{},
		Stdout: os.Stdout,
	}
}

func (t *Tool) log() *slog.Logger {
	if t.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return t.Log
}

func (t *Tool) stdout() io.Writer {
	if t.Stdout == nil {
		return os.Stdout
	}
	return t.Stdout
}

func (t *Tool) mergeOpts() []mergeop.Option {
	return []mergeop.Option{
		mergeop.WithPolicy(t.Policy),
		mergeop.WithLogger(t.log()),
	}
}
