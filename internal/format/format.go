// Package format normalizes a parsed YANG tree and prints it back out.
//
// Formatting is two phases over an exclusively owned tree: a set of rewrite
// passes that mutate the tree in place (quote normalization, string
// stripping and dedenting, comment relocation, blank-line cleanup, optional
// canonical ordering), then a printer that handles indentation and line
// wrapping. Nothing here keeps state between invocations, so independent
// calls are safe to run concurrently.
package format

import (
	"bytes"
	"io"

	"yangfmt/internal/parser"
	"yangfmt/internal/source"
)

// Options configures formatting.
type Options struct {
	// IndentWidth is the number of spaces per nesting level.
	IndentWidth int
	// MaxWidth is the column the printer tries to wrap values at.
	MaxWidth int
	// CanonicalOrder enables reordering statements into the canonical
	// sequence inside the few block types where that is unambiguous.
	CanonicalOrder bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = 79
	}
	return o
}

// FormatFile formats the file's content into out.
func FormatFile(out io.Writer, file *source.File, opt Options) error {
	opt = opt.withDefaults()

	tree, err := parser.Parse(file)
	if err != nil {
		return err
	}

	Transform(tree, opt)
	return printTree(out, tree, opt)
}

// Format formats an in-memory buffer into out. This is the main entry
// point; parse and print errors come back as-is, positional against src.
func Format(out io.Writer, src []byte, opt Options) error {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", src)
	return FormatFile(out, fs.Get(id), opt)
}

// Bytes formats an in-memory buffer and returns the result.
func Bytes(src []byte, opt Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src))
	if err := Format(&buf, src, opt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
