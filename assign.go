package devm

import (
	"fmt"
	"strings"

	"github.com/monodev/devm/eval"
	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/ir/kpath"
	"github.com/monodev/devm/parse"
)

// Assignment is a parsed "path=value" argument.  The value is read as YAML,
// so "3" is a number, "[a, b]" an array and "x" a string.
type Assignment struct {
	Path  *kpath.KPath
	Value *ir.Node
}

func ParseAssignment(a string) (Assignment, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return Assignment{}, fmt.Errorf("%w: argument %q expected path=value", ErrValidation, a)
	}
	p, err := kpath.Parse(strings.TrimSpace(key))
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if p == nil {
		return Assignment{}, fmt.Errorf("%w: argument %q has an empty path", ErrValidation, a)
	}
	v, err := parse.Parse([]byte(val), parse.ParseFormat(format.YAMLFormat), parse.ParseSource(key))
	if err != nil {
		return Assignment{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return Assignment{Path: p, Value: v}, nil
}

func (a Assignment) String() string {
	return a.Path.String() + "=" + strings.TrimSpace(mustYAML(a.Value))
}

// Apply sets the assignment on doc, which is replaced by an object when it
// is not a container.
func (a Assignment) Apply(doc *ir.Node) (*ir.Node, error) {
	if doc.Type != ir.ObjectType && doc.Type != ir.ArrayType {
		doc = ir.Object()
	}
	if err := doc.SetKPath(a.Path, a.Value.Clone()); err != nil {
		return nil, fmt.Errorf("setting %s: %w", a.Path, err)
	}
	return doc, nil
}

// SetEnv records the assignment in env, creating nested maps for the fields
// of its path.
func (a Assignment) SetEnv(env eval.Env) error {
	segs := a.Path.Segments()
	cur := map[string]any(env)
	for i, seg := range segs {
		if seg.Field == nil {
			return fmt.Errorf("%w: index in environment path %s", ErrValidation, a.Path)
		}
		if i == len(segs)-1 {
			cur[*seg.Field] = a.Value.ToAny()
			return nil
		}
		next, ok := cur[*seg.Field].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[*seg.Field] = next
		}
		cur = next
	}
	return nil
}
