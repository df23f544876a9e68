// Package parser assembles the token stream into a concrete syntax tree.
//
// The parser does not enforce the official grammar: a document with several
// module blocks, or no module at all, parses fine, and unknown keywords are
// kept as-is. It only rejects input it cannot represent, such as unbalanced
// braces or unterminated strings.
package parser

import (
	"yangfmt/internal/ast"
	"yangfmt/internal/diag"
	"yangfmt/internal/lexer"
	"yangfmt/internal/source"
	"yangfmt/internal/token"
)

// Parse reads the whole file into a syntax tree.
//
// Block nesting is handled with an explicit stack of sibling lists instead
// of recursion, so nesting depth is bounded by memory, not the call stack.
func Parse(file *source.File) (*ast.Root, error) {
	lx := lexer.New(file)

	stack := make([][]ast.Node, 1)
	prevWasLineBreak := false
	var prevTokenSpan source.Span

	for {
		tok, err := lx.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}

		top := len(stack) - 1

		switch tok.Kind {
		case token.Space:
			if _, err := lx.Next(); err != nil {
				return nil, err
			}

		case token.Newline:
			// A blank line is two line breaks in a row; a single break
			// between statements produces no node.
			if prevWasLineBreak {
				stack[top] = append(stack[top], &ast.EmptyLine{})
			}
			if _, err := lx.Next(); err != nil {
				return nil, err
			}

		case token.Comment:
			stack[top] = append(stack[top], &ast.Comment{Text: tok.Text})
			if _, err := lx.Next(); err != nil {
				return nil, err
			}

		case token.CloseBrace:
			if len(stack) < 2 {
				return nil, diag.New(diag.SynUnexpectedClosingBrace, tok.Span,
					"unexpected closing curly brace")
			}
			children := stack[top]
			stack = stack[:top]

			parent := stack[len(stack)-1]
			st := ast.AsStatement(parent[len(parent)-1])
			if st == nil {
				// A list is only pushed right after its statement, so the
				// parent's last node is always that statement.
				return nil, diag.New(diag.SynUnexpectedClosingBrace, tok.Span,
					"closing curly brace does not close a statement block")
			}
			st.Body = &ast.Block{Nodes: children}

			if _, err := lx.Next(); err != nil {
				return nil, err
			}

		default:
			st, opensBlock, err := parseStatement(lx)
			if err != nil {
				return nil, err
			}
			stack[top] = append(stack[top], st)
			if opensBlock {
				stack = append(stack, nil)
			}
		}

		if tok.Kind == token.Newline {
			prevWasLineBreak = true
		} else if tok.Kind != token.Space {
			prevWasLineBreak = false
		}
		prevTokenSpan = tok.Span
	}

	if len(stack) > 1 {
		return nil, diag.New(diag.SynUnclosedBlock, prevTokenSpan,
			"unclosed block at end of file")
	}

	return &ast.Root{Nodes: stack[0]}, nil
}

// ParseBytes parses an in-memory buffer, e.g. stdin or test input.
func ParseBytes(src []byte) (*ast.Root, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", src)
	return Parse(fs.Get(id))
}
