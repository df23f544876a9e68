// Package diag defines the diagnostic model shared by the lexer, parser and
// formatter.
//
// Diagnostic is the central record: a severity, a stable numeric code, a
// message and the primary source span. Every pipeline error is positional
// and fatal to the invocation that produced it, so Diagnostic implements
// error and flows up through ordinary error returns.
//
// Package diag performs no formatting or IO; rendering lives in
// internal/diagfmt.
package diag
