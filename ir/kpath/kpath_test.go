package kpath

import (
	"errors"
	"reflect"
	"testing"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParseKPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *KPath
		wantErr bool
	}{
		{
			name:  "empty path",
			input: "",
			want:  nil,
		},
		{
			name:  "simple object path",
			input: "a",
			want:  &KPath{Field: stringPtr("a")},
		},
		{
			name:  "nested object path",
			input: "a.b.c",
			want: &KPath{
				Field: stringPtr("a"),
				Next: &KPath{
					Field: stringPtr("b"),
					Next:  &KPath{Field: stringPtr("c")},
				},
			},
		},
		{
			name:  "array index",
			input: "a[0]",
			want: &KPath{
				Field: stringPtr("a"),
				Next:  &KPath{Index: intPtr(0)},
			},
		},
		{
			name:  "root index then field",
			input: "[2].x",
			want: &KPath{
				Index: intPtr(2),
				Next:  &KPath{Field: stringPtr("x")},
			},
		},
		{
			name:  "quoted field",
			input: `a."b.c"`,
			want: &KPath{
				Field: stringPtr("a"),
				Next:  &KPath{Field: stringPtr("b.c")},
			},
		},
		{name: "leading dot", input: ".a", wantErr: true},
		{name: "trailing dot", input: "a.", wantErr: true},
		{name: "unclosed index", input: "a[1", wantErr: true},
		{name: "negative index", input: "a[-1]", wantErr: true},
		{name: "missing separator", input: `a[0]b`, wantErr: true},
		{name: "unterminated quote", input: `"abc`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrKPath) {
					t.Fatalf("expected ErrKPath, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{
		"a",
		"a.b[0][1].c",
		"[3]",
		`a."dotted.key"."with space"`,
		`"".x`,
	} {
		p, err := Parse(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got := p.String(); got != in {
			t.Errorf("String() = %q, want %q", got, in)
		}
		if got := Join(p.Segments()...).String(); got != in {
			t.Errorf("Join(Segments()) = %q, want %q", got, in)
		}
	}
}
