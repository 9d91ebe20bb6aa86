package devcontainer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/monodev/devm/encode"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/mergeop"
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

func TestNormalizeImage(t *testing.T) {
	tests := map[string]string{
		"ubuntu":                             "docker.io/library/ubuntu:latest",
		"ubuntu:22.04":                       "docker.io/library/ubuntu:22.04",
		"ghcr.io/acme/dev:1":                 "ghcr.io/acme/dev:1",
		"mcr.microsoft.com/devcontainers/go": "mcr.microsoft.com/devcontainers/go:latest",
	}
	for in, want := range tests {
		got, err := NormalizeImage(in)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %s want %s", in, got, want)
		}
	}
	if _, err := NormalizeImage("Not A Ref"); !errors.Is(err, ErrImage) {
		t.Errorf("expected ErrImage, got %v", err)
	}
}

func TestParseFeature(t *testing.T) {
	tests := []struct {
		in   string
		want Feature
	}{
		{"ghcr.io/devcontainers/features/go", Feature{ID: "ghcr.io/devcontainers/features/go"}},
		{"node=20", Feature{ID: "node", Version: "20"}},
		{" node = lts ", Feature{ID: "node", Version: "lts"}},
	}
	for _, tt := range tests {
		got, err := ParseFeature(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tt.in, diff)
		}
	}
	if _, err := ParseFeature("=1"); !errors.Is(err, ErrFeature) {
		t.Errorf("expected ErrFeature, got %v", err)
	}
}

func TestCompose(t *testing.T) {
	base := mustParse(t, `{"name":"base","build":{"dockerfile":"Dockerfile"},"features":{"a":{"opt":1}},"mounts":["m1"]}`)
	frag := mustParse(t, `{"features":{"b":{}},"mounts":["m2"]}`)
	res, err := Compose([]mergeop.Source{
		{Name: "base.json", Doc: base},
		{Name: "frag.json", Doc: frag},
	}, Options{
		Name:     "dev",
		Image:    "ubuntu",
		Features: []Feature{{ID: "a", Version: "2"}, {ID: "c"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"dev","features":{"a":{"opt":1,"version":"2"},"b":{},"c":{}},"mounts":["m1","m2"],"image":"docker.io/library/ubuntu:latest"}`
	if got := encode.MustString(res); got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestComposeNormalizesDocumentImage(t *testing.T) {
	res, err := Compose([]mergeop.Source{{Name: "b.json", Doc: mustParse(t, `{"image":"debian:12"}`)}}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := ir.Get(res, "image").String; got != "docker.io/library/debian:12" {
		t.Errorf("got %s", got)
	}
}

func TestComposeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		o    Options
		is   error
	}{
		{name: "image type", doc: `{"image":1}`, is: ErrImage},
		{name: "features type", doc: `{"features":[]}`, o: Options{Features: []Feature{{ID: "x"}}}, is: ErrFeature},
		{name: "feature options type", doc: `{"features":{"x":true}}`, o: Options{Features: []Feature{{ID: "x"}}}, is: ErrFeature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compose([]mergeop.Source{{Name: "d.json", Doc: mustParse(t, tt.doc)}}, tt.o)
			if !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
	_, err := Compose([]mergeop.Source{{Name: "d.json", Doc: mustParse(t, `[]`)}}, Options{})
	if err == nil {
		t.Error("expected error for array document")
	}
}
