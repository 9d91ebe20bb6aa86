package devm

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/monodev/devm/format"
)

var ErrValidation = errors.New("invalid arguments")

// ValidationError lists every problem found in a request.
type ValidationError struct {
	Problems *multierror.Error
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ":\n" + e.Problems.Error()
}

func (e *ValidationError) Unwrap() error { return e.Problems }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func listProblems(es []error) string {
	lines := lo.Map(es, func(err error, _ int) string { return "  - " + err.Error() })
	return strings.Join(lines, "\n")
}

type problems struct {
	errs *multierror.Error
}

func (p *problems) add(format string, args ...any) {
	p.errs = multierror.Append(p.errs, fmt.Errorf(format, args...))
}

func (p *problems) err() error {
	if p.errs == nil {
		return nil
	}
	p.errs.ErrorFormat = listProblems
	return &ValidationError{Problems: p.errs}
}

type MergeRequest struct {
	Sources []string
	// Format overrides the format inferred from source extensions.
	Format *format.Format
	// Out is the output path.  Exactly one of Out and StdOut must be set.
	Out    string
	StdOut bool
	// Check compares the result with the existing Out instead of writing it.
	Check bool
	Sets  []Assignment
}

// Plan is a validated MergeRequest.
type Plan struct {
	Sources   []string
	InFormat  format.Format
	OutFormat format.Format
	Out       string
	Check     bool
}

// ValidateMerge checks req without reading any file content.
func ValidateMerge(req *MergeRequest) (*Plan, error) {
	p := &problems{}
	plan := &Plan{Sources: req.Sources, Out: req.Out, Check: req.Check}

	if n := len(req.Sources); n < 2 {
		p.add("at least 2 sources are required, got %d", n)
	}
	if req.Format != nil {
		plan.InFormat = *req.Format
	} else {
		fmts := map[format.Format]bool{}
		for _, src := range req.Sources {
			f, err := format.FromPath(src)
			if err != nil {
				p.add("%s: unsupported extension", src)
				continue
			}
			fmts[f] = true
			plan.InFormat = f
		}
		if len(fmts) > 1 {
			exts := lo.Uniq(lo.Map(req.Sources, func(s string, _ int) string { return extOf(s) }))
			p.add("sources have mismatched extensions: %s", strings.Join(exts, ", "))
		}
	}
	for _, src := range lo.Uniq(req.Sources) {
		fi, err := os.Stat(src)
		switch {
		case errors.Is(err, os.ErrNotExist):
			p.add("%s: no such file", src)
		case err != nil:
			p.add("%s: %v", src, err)
		case fi.IsDir():
			p.add("%s: is a directory", src)
		}
	}

	plan.OutFormat = plan.InFormat
	switch {
	case req.Out != "" && req.StdOut:
		p.add("only one of an output path and standard output may be given")
	case req.Out == "" && !req.StdOut:
		p.add("an output path or standard output is required")
	case req.StdOut && req.Check:
		p.add("check requires an output path")
	case req.Out != "":
		if f, err := format.FromPath(req.Out); err == nil {
			plan.OutFormat = f
		} else if req.Format == nil {
			p.add("%s: unsupported output extension", req.Out)
		}
		_, err := os.Stat(req.Out)
		switch {
		case req.Check && errors.Is(err, os.ErrNotExist):
			p.add("%s: no such file to check", req.Out)
		case !req.Check && err == nil:
			p.add("%s: output file already exists", req.Out)
		}
	}
	if err := p.err(); err != nil {
		return nil, err
	}
	return plan, nil
}

func extOf(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i == -1 || strings.ContainsRune(path[i:], os.PathSeparator) {
		return "(none)"
	}
	return path[i:]
}
