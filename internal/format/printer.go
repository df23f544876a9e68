package format

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"yangfmt/internal/ast"
	"yangfmt/internal/diag"
	"yangfmt/internal/source"
)

// printTree writes the (already transformed) tree to out. The printer only
// handles indentation, spacing and wrapping; node order and blank lines are
// the transform's business. Every statement ends with exactly one line
// break, so a non-empty document always ends with one too.
func printTree(out io.Writer, root *ast.Root, opt Options) error {
	p := printer{
		w:   newWriter(opt.IndentWidth, 4096),
		opt: opt,
	}
	for _, n := range root.Nodes {
		p.printNode(n, 0)
	}
	if _, err := out.Write(p.w.buf); err != nil {
		// Write errors carry no source position.
		return diag.Newf(diag.IOWriteError, source.Span{}, "failed to write output: %v", err)
	}
	return nil
}

type printer struct {
	w   *writer
	opt Options
}

func (p *printer) printNode(n ast.Node, depth int) {
	switch n := n.(type) {
	case *ast.EmptyLine:
		p.w.newline()

	case *ast.Comment:
		p.w.indent(depth)
		p.w.string(n.Text)
		p.w.newline()

	case *ast.Statement:
		p.printStatement(n, depth)
	}
}

func (p *printer) printStatement(st *ast.Statement, depth int) {
	p.w.indent(depth)
	p.w.string(st.Keyword.Text)

	for _, comment := range st.KeywordComments {
		p.w.byte(' ')
		p.w.string(comment)
	}

	if st.Value != nil {
		p.printValue(st, depth)
	}

	if st.Body != nil {
		p.w.string(" {")
		for _, comment := range st.PostComments {
			p.w.byte(' ')
			p.w.string(comment)
		}
		p.w.newline()

		for _, child := range st.Body.Nodes {
			p.printNode(child, depth+1)
		}

		p.w.indent(depth)
		p.w.byte('}')
	} else {
		p.w.byte(';')
		for _, comment := range st.PostComments {
			p.w.byte(' ')
			p.w.string(comment)
		}
	}

	p.w.newline()
}

func (p *printer) printValue(st *ast.Statement, depth int) {
	// Column right after the keyword, before any value.
	linePos := depth*p.opt.IndentWidth + runewidth.StringWidth(st.Keyword.Text)

	switch v := st.Value.(type) {
	case *ast.Number:
		p.printSimpleValue(linePos, depth, v.Text)
	case *ast.Date:
		p.printSimpleValue(linePos, depth, v.Text)
	case *ast.Other:
		p.printSimpleValue(linePos, depth, v.Text)
	case *ast.String:
		if strings.Contains(v.Text, "\n") {
			p.printMultilineString(depth, v.Text)
		} else {
			p.printSimpleValue(linePos, depth, v.Text)
		}
	case *ast.Concat:
		p.printConcat(st, depth, v)
	}

	for _, comment := range st.ValueComments {
		p.w.byte(' ')
		p.w.string(comment)
	}
}

// printSimpleValue puts the value on the same line when it fits, counting
// the separating space and the trailing terminator, and on its own line one
// level deeper otherwise.
func (p *printer) printSimpleValue(linePos, depth int, text string) {
	if linePos+runewidth.StringWidth(text)+2 > p.opt.MaxWidth {
		p.w.newline()
		p.w.indent(depth + 1)
	} else {
		p.w.byte(' ')
	}
	p.w.string(text)
}

// printMultilineString always starts the string on its own line one level
// deeper. Continuation lines line up one column past the opening quote;
// empty lines stay empty.
func (p *printer) printMultilineString(depth int, text string) {
	p.w.newline()
	p.w.indent(depth + 1)

	lines := strings.Split(text, "\n")
	p.w.string(lines[0])

	for _, line := range lines[1:] {
		p.w.newline()
		if line != "" {
			p.w.indent(depth)
			p.w.pad(p.opt.IndentWidth + 1)
			p.w.string(line)
		}
	}
}

// printConcat writes the first fragment inline after the keyword and every
// following fragment on its own line, "+ "-prefixed and padded so the
// fragments align under the first one.
func (p *printer) printConcat(st *ast.Statement, depth int, concat *ast.Concat) {
	pad := max(runewidth.StringWidth(st.Keyword.Text)-2, 0)

	first := concat.Fragments[0]
	p.w.byte(' ')
	p.w.string(first.Text)
	for _, comment := range first.Comments {
		p.w.byte(' ')
		p.w.string(comment)
	}

	for _, frag := range concat.Fragments[1:] {
		p.w.newline()
		p.w.indent(depth)
		p.w.pad(pad)
		p.w.string(" + ")
		p.w.string(frag.Text)
		for _, comment := range frag.Comments {
			p.w.byte(' ')
			p.w.string(comment)
		}
	}
}
