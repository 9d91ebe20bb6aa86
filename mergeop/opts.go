package mergeop

import (
	"fmt"
	"log/slog"
)

// Policy decides how nested values of different kinds are merged.
type Policy int

const (
	// Overwrite lets the later value win.
	Overwrite Policy = iota
	// Strict reports a *TypeConflictError.
	Strict
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

type Option func(*merger)

func WithPolicy(p Policy) Option {
	return func(m *merger) { m.policy = p }
}

// WithLogger sets a logger for debug traces of the merge.
func WithLogger(l *slog.Logger) Option {
	return func(m *merger) { m.log = l }
}
