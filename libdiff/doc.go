// Package libdiff computes differences between documents.
//
// # Usage
//
//	// structural changes, keyed by kinded path
//	changes := libdiff.Diff(oldNode, newNode)
//	libdiff.WriteChanges(os.Stdout, changes)
//
//	// line diff of two encoded documents
//	fmt.Print(libdiff.TextDiff(oldText, newText, false))
//
// Object keys are aligned with a sequence diff over the key lists, so
// inserted and deleted keys are reported without disturbing the comparison of
// the keys both sides share.
//
// # Related Packages
//
//   - github.com/monodev/devm/ir - IR representation
//   - github.com/monodev/devm/encode - Rendering values in reports
package libdiff
