package eval

import (
	"testing"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
)

type envTest struct {
	in, out string
}

func testEnv() Env {
	return Env{
		"x":     "X",
		"stuff": "STUFF",
		"here":  "HERE",
		"n":     3,
		"list":  []any{"a", "b"},
		"cfg":   map[string]any{"port": 8080},
	}
}

func TestExpandString(t *testing.T) {
	tests := []envTest{
		{in: "abc", out: "abc"},
		{in: "$[", out: "$["},
		{in: "$[x]", out: "X"},
		{in: " $[x]", out: " X"},
		{in: "$[x", out: "$[x"},
		{in: "some $[stuff] $[here]", out: "some STUFF HERE"},
		{in: "some $[ stuff ] $[here] trailing", out: "some STUFF HERE trailing"},
		{in: "$abc", out: "$abc"},
		{in: "n=$[n + 1]", out: "n=4"},
		{in: "$[list[1]]", out: "b"},
		{in: "$[list]", out: `["a","b"]`},
		{in: `$["a\]" + x]`, out: "a]X"},
		{in: "port $[cfg.port]", out: "port 8080"},
		{in: "$[n > 2]", out: "true"},
		{in: "[$[x]]", out: "[X]"},
	}
	env := testEnv()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandString(tt.in, env)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.out {
				t.Errorf("got %q want %q", got, tt.out)
			}
		})
	}
}

func TestExpandStringErrors(t *testing.T) {
	for _, in := range []string{"$[undefined]", "$[x +]"} {
		if _, err := ExpandString(in, testEnv()); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestGetenv(t *testing.T) {
	t.Setenv("DEVM_EVAL_TEST", "v1")
	got, err := ExpandString(`tag-$[getenv("DEVM_EVAL_TEST")]`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "tag-v1" {
		t.Errorf("got %q", got)
	}
}

func TestExpandIR(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "$[x]", Val: ir.FromString("$[n]")},
		{Key: "name", Val: ir.FromString("svc-$[x]")},
		{Key: "items", Val: ir.FromSlice([]*ir.Node{ir.FromString("$[list]"), ir.FromInt(1)})},
	})
	orig := node.Clone()
	res, err := ExpandIR(node, testEnv())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"$[x]":3,"name":"svc-X","items":[["a","b"],1]}`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s want %s", got, want)
	}
	if !ir.Equal(node, orig) {
		t.Errorf("input modified: %s", encode.MustString(node))
	}
}
