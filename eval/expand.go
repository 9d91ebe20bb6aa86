package eval

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
)

type Env map[string]any

func exprOpts(env Env) []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any(env)),
		expr.Function("getenv", func(params ...any) (any, error) {
			name, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("getenv: expected string, got %T", params[0])
			}
			return os.Getenv(name), nil
		}, new(func(string) string)),
	}
}

// Eval evaluates a single expression.
func Eval(code string, env Env) (any, error) {
	if env == nil {
		env = Env{}
	}
	program, err := expr.Compile(code, exprOpts(env)...)
	if err != nil {
		return nil, err
	}
	return expr.Run(program, map[string]any(env))
}

// ExpandString replaces each $[...] in v with the text of its value.
func ExpandString(v string, env Env) (string, error) {
	var out strings.Builder
	for {
		start := strings.Index(v, "$[")
		if start == -1 {
			out.WriteString(v)
			return out.String(), nil
		}
		code, rest, ok := scanExpr(v[start+2:])
		if !ok {
			out.WriteString(v)
			return out.String(), nil
		}
		out.WriteString(v[:start])
		x, err := Eval(code, env)
		if err != nil {
			return "", fmt.Errorf("error evaluating %q: %w", code, err)
		}
		s, err := toText(x)
		if err != nil {
			return "", fmt.Errorf("could not render result of %q: %w", code, err)
		}
		out.WriteString(s)
		v = rest
	}
}

// ExpandIR returns a copy of node with its strings expanded.  node is not
// modified.
func ExpandIR(node *ir.Node, env Env) (*ir.Node, error) {
	switch node.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, f := range node.Fields {
			v, err := ExpandIR(node.Values[i], env)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.String, err)
			}
			res.Set(f.String, v)
		}
		return res, nil
	case ir.ArrayType:
		vals := make([]*ir.Node, len(node.Values))
		for i, elt := range node.Values {
			v, err := ExpandIR(elt, env)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case ir.StringType:
		if code, ok := rawRef(node.String); ok {
			x, err := Eval(code, env)
			if err != nil {
				return nil, fmt.Errorf("error evaluating %q: %w", code, err)
			}
			res, err := ir.FromAny(x)
			if err != nil {
				return nil, fmt.Errorf("could not translate result of %q: %w", code, err)
			}
			return res, nil
		}
		s, err := ExpandString(node.String, env)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	}
	return node.Clone(), nil
}

// rawRef reports whether v consists of exactly one expression.
func rawRef(v string) (string, bool) {
	if !strings.HasPrefix(v, "$[") {
		return "", false
	}
	code, rest, ok := scanExpr(v[2:])
	if !ok || rest != "" {
		return "", false
	}
	return code, true
}

// scanExpr reads an expression body up to its closing bracket.
func scanExpr(s string) (code, rest string, ok bool) {
	var buf []byte
	depth := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			if i+1 < len(s) {
				i++
				buf = append(buf, s[i])
				continue
			}
		case '[':
			depth++
		case ']':
			if depth == 0 {
				return strings.TrimSpace(string(buf)), s[i+1:], true
			}
			depth--
		}
		buf = append(buf, c)
	}
	return "", "", false
}

func toText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case *ir.Node:
		return encode.MustString(x), nil
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
