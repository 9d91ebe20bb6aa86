// Package devm implements the devm tools on top of the document packages.
//
// A Tool carries the settings shared by every command: the logger, the merge
// policy, the expression environment and output colors.  Its methods read
// files, run the operation and write the result, leaving argument parsing to
// the command layer in cmd/devm.
//
// Merge validates its request before touching any file content and reports
// every problem at once as a *ValidationError.  Output files are created
// exclusively: an existing file is never overwritten.
package devm
