package patch

import (
	"errors"
	"testing"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestApply(t *testing.T) {
	tests := []struct {
		name, doc, ops, want string
	}{
		{
			name: "replace keeps order",
			doc:  `{"z":1,"a":{"y":2,"b":3}}`,
			ops:  `[{"op":"replace","path":"/a/y","value":"x"}]`,
			want: `{"z":1,"a":{"y":"x","b":3}}`,
		},
		{
			name: "add appends key",
			doc:  `{"z":1,"a":2}`,
			ops:  `[{"op":"add","path":"/m","value":[1]}]`,
			want: `{"z":1,"a":2,"m":[1]}`,
		},
		{
			name: "remove and array insert",
			doc:  `{"l":[{"k":1,"j":2}],"r":true}`,
			ops:  `[{"op":"remove","path":"/r"},{"op":"add","path":"/l/0","value":"first"}]`,
			want: `{"l":["first",{"k":1,"j":2}]}`,
		},
		{
			name: "number text",
			doc:  `{"n":1.50}`,
			ops:  `[{"op":"copy","from":"/n","path":"/m"}]`,
			want: `{"n":1.50,"m":1.50}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.doc)
			orig := doc.Clone()
			res, err := Apply(doc, mustParse(t, tt.ops))
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(res); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
			if !ir.Equal(doc, orig) {
				t.Errorf("input modified")
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{"a":1}`)
	for _, ops := range []string{
		`{"op":"remove","path":"/a"}`,
		`[{"op":"remove","path":"/missing"}]`,
		`[{"op":"test","path":"/a","value":2}]`,
	} {
		_, err := Apply(doc, mustParse(t, ops))
		if !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected ErrPatch, got %v", ops, err)
		}
	}
}
