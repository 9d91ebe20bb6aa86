package format

import (
	"errors"
	"testing"
)

func TestFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", JSONFormat, false},
		{"dir/b.yaml", YAMLFormat, false},
		{"c.yml", YAMLFormat, false},
		{"C.YML", YAMLFormat, false},
		{"setup.ini", INIFormat, false},
		{"setup.toml", 0, true},
		{"Makefile", 0, true},
		{"short.j", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("expected ErrBadFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("FromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
}
