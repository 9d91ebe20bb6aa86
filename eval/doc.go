// Package eval expands $[...] expressions in document strings.
//
// Expressions are evaluated with expr-lang (github.com/expr-lang/expr)
// against an Env.  A string that is exactly one expression is replaced by the
// typed result, so "$[replicas]" can become the number 3.  Expressions
// embedded in longer strings are replaced by their text.  Object keys are not
// expanded.
//
// Within an expression, brackets nest and a backslash escapes the next
// character.  An expression without a closing bracket is kept literally.
//
// Expressions may call getenv(name) to read the process environment.
package eval
