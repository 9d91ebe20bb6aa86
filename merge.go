package devm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/monodev/devm/eval"
	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/libdiff"
	"github.com/monodev/devm/mergeop"
)

var ErrDrift = errors.New("output is out of date")

// DriftError reports a checked output file that differs from the merge
// result.
type DriftError struct {
	Path string
	// Diff is a line diff from the file to the merge result.
	Diff string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, ErrDrift)
}

func (e *DriftError) Is(target error) bool { return target == ErrDrift }

// MergeFiles loads the sources of plan in order and merges them.
func (t *Tool) MergeFiles(ctx context.Context, plan *Plan) (*ir.Node, error) {
	srcs := make([]mergeop.Source, 0, len(plan.Sources))
	for _, path := range plan.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc, err := t.Load(path, &plan.InFormat)
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, mergeop.Source{Name: path, Doc: doc})
	}
	return mergeop.Merge(srcs, t.mergeOpts()...)
}

// Merge runs a merge request: validate, load, merge, apply assignments,
// expand and write (or check) the output.
func (t *Tool) Merge(ctx context.Context, req *MergeRequest) error {
	plan, err := ValidateMerge(req)
	if err != nil {
		return err
	}
	res, err := t.MergeFiles(ctx, plan)
	if err != nil {
		return err
	}
	for _, a := range req.Sets {
		t.log().Debug("override", "set", a.String())
		if res, err = a.Apply(res); err != nil {
			return err
		}
	}
	if t.Expand {
		if res, err = eval.ExpandIR(res, t.Env); err != nil {
			return err
		}
	}
	if plan.Check {
		return t.check(res, plan)
	}
	if plan.Out == "" {
		return t.Write(res, "", plan.OutFormat)
	}
	t.log().Info("writing merged output", "path", plan.Out, "format", plan.OutFormat, "sources", len(plan.Sources))
	return t.Write(res, plan.Out, plan.OutFormat)
}

func (t *Tool) check(res *ir.Node, plan *Plan) error {
	want, err := encodeString(res, plan.OutFormat)
	if err != nil {
		return err
	}
	have, err := os.ReadFile(plan.Out)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", plan.Out, err)
	}
	if string(have) == want {
		t.log().Info("output is up to date", "path", plan.Out)
		return nil
	}
	return &DriftError{
		Path: plan.Out,
		Diff: libdiff.TextDiff(string(have), want, t.Colors != nil),
	}
}
