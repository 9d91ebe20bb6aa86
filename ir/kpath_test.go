package ir

import (
	"errors"
	"testing"

	"github.com/monodev/devm/ir/kpath"
)

func TestGetKPath(t *testing.T) {
	doc := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromKeyVals([]KeyVal{
			{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
			{Key: "c.d", Val: FromBool(true)},
		})},
	})
	tests := []struct {
		path string
		want *Node
		err  error
	}{
		{path: "", want: doc},
		{path: "a.b[1]", want: FromString("y")},
		{path: `a."c.d"`, want: FromBool(true)},
		{path: "a.z", err: ErrNotFound},
		{path: "a.b[2]", err: ErrNotFound},
		{path: "a[0]", err: ErrType},
		{path: "a.b.c", err: ErrType},
		{path: "a..b", err: kpath.ErrKPath},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := doc.GetKPath(tt.path)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("GetKPath(%q) mismatch", tt.path)
			}
		})
	}
}

func TestFromKPath(t *testing.T) {
	p, err := kpath.Parse("a.b")
	if err != nil {
		t.Fatal(err)
	}
	got, err := FromKPath(p, FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals([]KeyVal{{Key: "a", Val: FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}})}})
	if !Equal(got, want) {
		t.Errorf("FromKPath mismatch")
	}
	p, err = kpath.Parse("a[0]")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromKPath(p, FromInt(1)); !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType for index segment, got %v", err)
	}
}

func TestSetKPath(t *testing.T) {
	tests := []struct {
		path string
		val  *Node
		want string
		err  error
	}{
		{path: "a.b[1]", val: FromInt(9), want: `{"a":{"b":["x",9],"n":null}}`},
		{path: "a.b", val: FromBool(true), want: `{"a":{"b":true,"n":null}}`},
		{path: "a.n.m", val: FromInt(1), want: `{"a":{"b":["x","y"],"n":{"m":1}}}`},
		{path: "c.d.e", val: FromString("z"), want: `{"a":{"b":["x","y"],"n":null},"c":{"d":{"e":"z"}}}`},
		{path: "a.b[2]", val: FromInt(1), err: ErrNotFound},
		{path: "a.b.c", val: FromInt(1), err: ErrType},
		{path: "c[0]", val: FromInt(1), err: ErrType},
		{path: "", val: FromInt(1), err: ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc := FromKeyVals([]KeyVal{
				{Key: "a", Val: FromKeyVals([]KeyVal{
					{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
					{Key: "n", Val: Null()},
				})},
			})
			p, err := kpath.Parse(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			err = doc.SetKPath(p, tt.val)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := compactOrdered(doc); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}
