package mergeop

import (
	"errors"
	"fmt"

	"github.com/monodev/devm/ir"
	"github.com/monodev/devm/ir/kpath"
)

var ErrTypeConflict = errors.New("type conflict")

// TypeConflictError reports values of different kinds that cannot be merged.
type TypeConflictError struct {
	// Path is the location of the conflict, nil at the document root.
	Path *kpath.KPath

	Target, Source ir.Type
	// TargetName names the source(s) the target value was merged from.
	TargetName, SourceName string
}

func (e *TypeConflictError) Error() string {
	where := "document root"
	if e.Path != nil {
		where = e.Path.String()
	}
	return fmt.Sprintf("%s at %s: cannot merge %s from %s into %s from %s",
		ErrTypeConflict, where, e.Source, e.SourceName, e.Target, e.TargetName)
}

func (e *TypeConflictError) Is(target error) bool { return target == ErrTypeConflict }
