// Package mergeop merges structured documents.
//
// # Overview
//
// Merge combines an ordered list of sources into a single document.  Later
// sources take precedence over earlier ones:
//
//   - Object with Object: keys are merged recursively.  Keys new to the
//     result are appended in the order they are first seen.
//   - Array with Array: the source's items are appended to the target's.
//     Items are not de-duplicated.
//   - Anything else: the source value replaces the target value.
//
// The inputs are never modified; Merge clones into a private accumulator and
// returns it.  The merge walks a work list of (target, source) object pairs
// rather than recursing, so document depth is bounded only by memory.
//
// Merging is a left fold:
//
//	Merge([A, B, C]) == Merge([Merge([A, B]), C])
//
// # Roots
//
// Zero sources merge to an empty object.  Two scalar roots merge to the last
// one.  Roots of different container kinds, or a container and a scalar,
// cannot be merged and yield a *TypeConflictError naming both sources.
//
// A null root is the exception: it is the identity of the merge, not a
// scalar.  A source whose document is null (an empty YAML file, a JSON file
// holding null) is skipped and never conflicts with an object or array root.
// When every source is null the result is null.
//
// # Policy
//
// With the default Overwrite policy a nested kind mismatch is resolved by the
// source value.  The Strict policy reports it as a *TypeConflictError with the
// kinded path of the conflict instead.  Null values never conflict.
//
// # Example
//
//	res, err := mergeop.Merge([]mergeop.Source{
//	    {Name: "base.json", Doc: base},
//	    {Name: "local.json", Doc: local},
//	}, mergeop.WithPolicy(mergeop.Strict))
package mergeop
