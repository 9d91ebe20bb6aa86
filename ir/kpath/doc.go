// Package kpath implements kinded paths into documents.
//
// A kinded path names the kind of each container it passes through:
//
//   - "a.b" → field b of the object at field a
//   - "a[0]" → element 0 of the array at field a
//   - `a."x.y"` → a field whose name needs quoting
//   - "" → the root
//
// Field names containing '.', '[', ']', '"', whitespace or nothing at all are
// written double-quoted with Go string escapes.
package kpath
