package devm

import (
	"context"
	"fmt"

	"github.com/monodev/devm/devcontainer"
	"github.com/monodev/devm/format"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/libdiff"
	"github.com/monodev/devm/mergeop"
	"github.com/monodev/devm/patch"
)

// Convert re-encodes the file at in.  Nil formats are inferred: the input
// format from in, the output format from out, defaulting to the input format.
func (t *Tool) Convert(in string, inFmt, outFmt *format.Format, out string) error {
	doc, err := t.Load(in, inFmt)
	if err != nil {
		return err
	}
	f, err := t.outFormat(in, inFmt, outFmt, out)
	if err != nil {
		return err
	}
	return t.Write(doc, out, f)
}

func (t *Tool) outFormat(in string, inFmt, outFmt *format.Format, out string) (format.Format, error) {
	switch {
	case outFmt != nil:
		return *outFmt, nil
	case out != "" && out != "-":
		if f, err := format.FromPath(out); err == nil {
			return f, nil
		}
	}
	if inFmt != nil {
		return *inFmt, nil
	}
	return format.FromPath(in)
}

// Get returns the value at the kinded path kp in the file.
func (t *Tool) Get(file, kp string) (*ir.Node, error) {
	doc, err := t.Load(file, nil)
	if err != nil {
		return nil, err
	}
	res, err := doc.GetKPath(kp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return res, nil
}

// Diff compares two files structurally.  The files may be in different
// formats.
func (t *Tool) Diff(a, b string) ([]libdiff.Change, error) {
	from, err := t.Load(a, nil)
	if err != nil {
		return nil, err
	}
	to, err := t.Load(b, nil)
	if err != nil {
		return nil, err
	}
	return libdiff.Diff(from, to), nil
}

// TextDiff compares the files after encoding both in the format of a.
func (t *Tool) TextDiff(a, b string) (string, error) {
	f, err := format.FromPath(a)
	if err != nil {
		return "", err
	}
	from, err := t.Load(a, nil)
	if err != nil {
		return "", err
	}
	to, err := t.Load(b, nil)
	if err != nil {
		return "", err
	}
	fromText, err := encodeString(from, f)
	if err != nil {
		return "", err
	}
	toText, err := encodeString(to, f)
	if err != nil {
		return "", err
	}
	return libdiff.TextDiff(fromText, toText, t.Colors != nil), nil
}

// Patch applies the JSON Patch in patchFile to file.
func (t *Tool) Patch(patchFile, file string) (*ir.Node, error) {
	ops, err := t.Load(patchFile, nil)
	if err != nil {
		return nil, err
	}
	doc, err := t.Load(file, nil)
	if err != nil {
		return nil, err
	}
	return patch.Apply(doc, ops)
}

type ComposeRequest struct {
	Base      string
	Fragments []string
	Options   devcontainer.Options
	Out       string
}

// Compose builds a devcontainer.json from a base file and fragments.  Output
// is always JSON.
func (t *Tool) Compose(ctx context.Context, req *ComposeRequest) error {
	paths := append([]string{req.Base}, req.Fragments...)
	srcs := make([]mergeop.Source, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := t.Load(path, nil)
		if err != nil {
			return err
		}
		srcs = append(srcs, mergeop.Source{Name: path, Doc: doc})
	}
	o := req.Options
	if o.Log == nil {
		o.Log = t.log()
	}
	res, err := devcontainer.Compose(srcs, o, mergeop.WithPolicy(t.Policy))
	if err != nil {
		return err
	}
	return t.Write(res, req.Out, format.JSONFormat)
}
