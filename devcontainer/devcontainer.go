// Package devcontainer composes devcontainer.json documents.
//
// Compose merges a base document with fragments using mergeop, then applies
// the name, image and feature overrides given in Options.  Image references
// are normalized to their fully qualified form, so "ubuntu" is written as
// "docker.io/library/ubuntu:latest".
package devcontainer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	imageref "github.com/novln/docker-parser"

	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/mergeop"
)

var (
	ErrImage   = errors.New("invalid image reference")
	ErrFeature = errors.New("invalid feature")
)

// Feature selects a devcontainer feature by ID, optionally pinning its
// version.
type Feature struct {
	ID      string
	Version string
}

// ParseFeature parses "ID" or "ID=VERSION".
func ParseFeature(s string) (Feature, error) {
	id, version, _ := strings.Cut(s, "=")
	id = strings.TrimSpace(id)
	if id == "" {
		return Feature{}, fmt.Errorf("%w: %q has no id", ErrFeature, s)
	}
	return Feature{ID: id, Version: strings.TrimSpace(version)}, nil
}

type Options struct {
	Name     string
	Image    string
	Features []Feature
	Log      *slog.Logger
}

// NormalizeImage returns the fully qualified form of an image reference.
func NormalizeImage(ref string) (string, error) {
	r, err := imageref.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrImage, ref, err)
	}
	res := r.Remote()
	if r.Tag() == "" {
		res += ":latest"
	}
	return res, nil
}

// Compose merges srcs and applies o.  Any "image" in the result is
// normalized.  Setting an image drops the build configuration the merged
// documents may carry.
func Compose(srcs []mergeop.Source, o Options, mopts ...mergeop.Option) (*ir.Node, error) {
	log := o.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	res, err := mergeop.Merge(srcs, append([]mergeop.Option{mergeop.WithLogger(log)}, mopts...)...)
	if err != nil {
		return nil, err
	}
	if res.Type == ir.NullType {
		res = ir.Object()
	}
	if res.Type != ir.ObjectType {
		return nil, fmt.Errorf("devcontainer must be an object, got %s", res.Type)
	}
	if o.Name != "" {
		res.Set("name", ir.FromString(o.Name))
	}
	if o.Image != "" {
		for _, k := range []string{"build", "dockerFile", "dockerfile"} {
			if res.Delete(k) {
				log.Debug("image set, dropping build config", "key", k)
			}
		}
		res.Set("image", ir.FromString(o.Image))
	}
	if img := ir.Get(res, "image"); img != nil {
		if img.Type != ir.StringType {
			return nil, fmt.Errorf("%w: image must be a string, got %s", ErrImage, img.Type)
		}
		norm, err := NormalizeImage(img.String)
		if err != nil {
			return nil, err
		}
		if norm != img.String {
			log.Debug("normalized image", "from", img.String, "to", norm)
		}
		res.Set("image", ir.FromString(norm))
	}
	if len(o.Features) != 0 {
		if err := setFeatures(res, o.Features); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func setFeatures(doc *ir.Node, features []Feature) error {
	fs := ir.Get(doc, "features")
	switch {
	case fs == nil || fs.Type == ir.NullType:
		fs = ir.Object()
		doc.Set("features", fs)
	case fs.Type != ir.ObjectType:
		return fmt.Errorf("%w: features must be an object, got %s", ErrFeature, fs.Type)
	}
	for _, f := range features {
		opts := ir.Get(fs, f.ID)
		switch {
		case opts == nil || opts.Type == ir.NullType:
			opts = ir.Object()
			fs.Set(f.ID, opts)
		case opts.Type != ir.ObjectType:
			return fmt.Errorf("%w: options for %s must be an object, got %s", ErrFeature, f.ID, opts.Type)
		}
		if f.Version != "" {
			opts.Set("version", ir.FromString(f.Version))
		}
	}
	return nil
}
