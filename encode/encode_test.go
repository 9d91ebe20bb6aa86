package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Object()})},
		{Key: "a", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "c", Val: ir.FromString("x")},
		})},
	})
}

func encodeString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeJSON(t *testing.T) {
	want := `{
  "b": [
    1,
    {}
  ],
  "a": {
    "c": "x"
  }
}
`
	if got := encodeString(t, sample()); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	want = `{"b":[1,{}],"a":{"c":"x"}}` + "\n"
	if got := encodeString(t, sample(), EncodeWire(true)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromBool(true)})
	want := "[\n    true\n]\n"
	if got := encodeString(t, node, EncodeIndent(4)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	want := `b:
  - 1
  - {}
a:
  c: x
`
	if got := encodeString(t, sample(), EncodeFormat(format.YAMLFormat)); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	nested := ir.FromSlice([]*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
		ir.FromSlice([]*ir.Node{ir.FromKeyVals([]ir.KeyVal{
			{Key: "k", Val: ir.FromInt(1)},
			{Key: "j", Val: ir.Null()},
		})}),
	})
	want = `- - 1
  - 2
- - k: 1
    j: null
`
	if got := encodeString(t, nested, EncodeFormat(format.YAMLFormat)); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestYAMLString(t *testing.T) {
	tests := []struct {
		in     string
		quoted bool
	}{
		{"plain", false},
		{"with space", false},
		{"", true},
		{"true", true},
		{"Yes", true},
		{"null", true},
		{"~", true},
		{"12", true},
		{"1.5", true},
		{"-x", true},
		{"a: b", true},
		{"a #b", true},
		{"trailing ", true},
		{"line\nbreak", true},
		{"*alias", true},
	}
	for _, tt := range tests {
		got := yamlString(tt.in)
		if quoted := strings.HasPrefix(got, `"`); quoted != tt.quoted {
			t.Errorf("yamlString(%q) = %s, quoted=%t want %t", tt.in, got, quoted, tt.quoted)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v    float64
		f    format.Format
		want string
		err  bool
	}{
		{v: 1, f: format.JSONFormat, want: "1.0"},
		{v: 2.5, f: format.JSONFormat, want: "2.5"},
		{v: 1e21, f: format.JSONFormat, want: "1e+21"},
		{v: math.Inf(1), f: format.JSONFormat, err: true},
		{v: math.NaN(), f: format.JSONFormat, err: true},
		{v: 1e-7, f: format.JSONFormat, want: "1e-07"},
		{v: 1e21, f: format.YAMLFormat, want: "1.0e+21"},
		{v: 1e-7, f: format.YAMLFormat, want: "1.0e-07"},
		{v: 1.5e-7, f: format.YAMLFormat, want: "1.5e-07"},
		{v: math.Inf(1), f: format.YAMLFormat, want: ".inf"},
		{v: math.Inf(-1), f: format.YAMLFormat, want: "-.inf"},
		{v: math.NaN(), f: format.YAMLFormat, want: ".nan"},
	}
	for _, tt := range tests {
		got, err := formatFloat(tt.v, tt.f)
		if tt.err {
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("formatFloat(%v, %s): expected ErrEncoding, got %v", tt.v, tt.f, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("formatFloat(%v, %s): %v", tt.v, tt.f, err)
			continue
		}
		if got != tt.want {
			t.Errorf("formatFloat(%v, %s) = %s want %s", tt.v, tt.f, got, tt.want)
		}
	}
}

func TestNumberText(t *testing.T) {
	if got := MustString(ir.FromNumber("1.50")); got != "1.50" {
		t.Errorf("got %s", got)
	}
	if got := MustString(ir.FromNumber("18446744073709551615")); got != "18446744073709551615" {
		t.Errorf("got %s", got)
	}
}

func TestNumberTextYAML(t *testing.T) {
	tests := []struct {
		text string
		f    format.Format
		want string
	}{
		{"1e3", format.JSONFormat, "1e3"},
		{"1e3", format.YAMLFormat, "1000.0"},
		{"2E-3", format.YAMLFormat, "0.002"},
		{"1.50", format.YAMLFormat, "1.50"},
		{"1e999", format.YAMLFormat, "1e999"},
	}
	for _, tt := range tests {
		got, err := formatNumber(ir.FromNumber(tt.text), tt.f)
		if err != nil {
			t.Errorf("formatNumber(%s, %s): %v", tt.text, tt.f, err)
			continue
		}
		if got != tt.want {
			t.Errorf("formatNumber(%s, %s) = %s want %s", tt.text, tt.f, got, tt.want)
		}
	}
}

func TestINIString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", ""},
		{`"q"`, `""""q""""`},
		{`'q'`, `"""'q'"""`},
		{`"`, `"`},
		{`a"b"`, `a"b"`},
		{`"""x`, `""""""x"""`},
		{`C:\dir\`, `"""C:\dir\"""`},
		{"a;b # c", "a;b # c"},
		{"a\nb", "a\nb"},
		{"`\"q\"`", "`\"q\"`"},
	}
	for _, tt := range tests {
		if got := iniString(tt.in); got != tt.want {
			t.Errorf("iniString(%q) = %q want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeINI(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "server", Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: "host", Val: ir.FromString("localhost")},
			{Key: "ports", Val: ir.FromSlice([]*ir.Node{ir.FromInt(80), ir.FromInt(443)})},
			{Key: "tls", Val: ir.FromKeyVals([]ir.KeyVal{{Key: "on", Val: ir.FromBool(true)}})},
		})},
		{Key: "name", Val: ir.FromString("top")},
		{Key: "none", Val: ir.Null()},
	})
	got := encodeString(t, node, EncodeFormat(format.INIFormat))
	for _, frag := range []string{"[server]", "localhost", "[80,443]", `{"on":true}`, "null"} {
		if !strings.Contains(got, frag) {
			t.Errorf("missing %q in\n%s", frag, got)
		}
	}
	if strings.Index(got, "name") > strings.Index(got, "[server]") {
		t.Errorf("default section keys must precede sections:\n%s", got)
	}
}

func TestEncodeINIErrors(t *testing.T) {
	for _, node := range []*ir.Node{
		ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
		ir.FromString("x"),
	} {
		err := Encode(node, bytes.NewBuffer(nil), EncodeFormat(format.INIFormat))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("expected ErrEncoding for %s, got %v", MustString(node), err)
		}
	}
	if got := encodeString(t, ir.Null(), EncodeFormat(format.INIFormat)); got != "" {
		t.Errorf("null ini document: got %q", got)
	}
}

func TestEncodeColors(t *testing.T) {
	c := &Colors{Default: func(s string, _ ...any) string { return "<" + s + ">" }}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	want := `<{><"a"><:><1><}>` + "\n"
	if got := encodeString(t, node, EncodeWire(true), EncodeColors(c)); got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := encodeString(t, node, EncodeWire(true), EncodeColors(nil)); got != `{"a":1}`+"\n" {
		t.Errorf("nil colors: got %q", got)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeWire(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
