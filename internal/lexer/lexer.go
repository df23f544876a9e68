// Package lexer breaks a YANG source buffer into a flat token stream.
//
// Every byte of the input is covered by exactly one token; whitespace and
// line breaks are tokens of their own so the parser can track blank-line
// grouping. Lexer errors are positional and fatal: once Next returns an
// error, it keeps returning the same error.
package lexer

import (
	"yangfmt/internal/diag"
	"yangfmt/internal/source"
	"yangfmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // one-token lookahead buffer
	err    error        // sticky scan error
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next token. After EOF it always returns an EOF token;
// after an error it always returns the same error.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{}, lx.err
	}
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok, nil
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}, nil
	}

	tok, err := lx.scanToken()
	if err != nil {
		lx.err = err
		return token.Token{}, err
	}
	return tok, nil
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look != nil {
		return *lx.look, nil
	}
	tok, err := lx.Next()
	if err != nil {
		return tok, err
	}
	lx.look = &tok
	return tok, nil
}

// scanToken dispatches on the current byte. The checks run in a fixed
// priority order: structural single-byte tokens, whitespace runs, line
// breaks, strings, comments, then undelimited runs.
func (lx *Lexer) scanToken() (token.Token, error) {
	ch := lx.cursor.Peek()

	switch {
	case ch == ';':
		return lx.scanSingle(token.Semicolon), nil
	case ch == '+':
		return lx.scanSingle(token.Plus), nil
	case ch == '{':
		return lx.scanSingle(token.OpenBrace), nil
	case ch == '}':
		return lx.scanSingle(token.CloseBrace), nil

	case ch == ' ' || ch == '\t':
		return lx.scanWhitespace(), nil

	case ch == '\n':
		return lx.scanSingle(token.Newline), nil

	case ch == '\r':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.makeToken(token.Newline, start), nil
		}
		// A lone carriage return delimits tokens but starts none.
		return token.Token{}, lx.unexpectedChar(ch)

	case ch == '"' || ch == '\'':
		return lx.scanString()

	case ch == '/':
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case '/':
				return lx.scanLineComment(), nil
			case '*':
				return lx.scanBlockComment()
			}
		}
		return lx.scanOther()

	default:
		return lx.scanOther()
	}
}

func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.makeToken(kind, start)
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.makeToken(token.Space, start)
}

func (lx *Lexer) makeToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) unexpectedChar(ch byte) error {
	sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 1}
	return diag.Newf(diag.LexUnexpectedChar, sp, "unexpected character %q", ch)
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Scan collects every token in the file, EOF token included. It stops at the
// first lexer error.
func Scan(file *source.File) ([]token.Token, error) {
	lx := New(file)
	var tokens []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
