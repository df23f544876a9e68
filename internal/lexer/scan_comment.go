package lexer

import (
	"yangfmt/internal/diag"
	"yangfmt/internal/token"
)

// scanLineComment scans a "//" comment up to, but not including, the next
// line break or EOF.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\r' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				break
			}
		}
		lx.cursor.Bump()
	}
	return lx.makeToken(token.Comment, start)
}

// scanBlockComment scans a "/* ... */" comment. EOF before the closing
// marker is a fatal lexer error.
func (lx *Lexer) scanBlockComment() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for {
		b0, b1, ok := lx.cursor.Peek2()
		if !ok {
			break
		}
		if b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.makeToken(token.Comment, start), nil
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	sp.End = sp.Start + 2
	return token.Token{}, diag.New(diag.LexUnterminatedComment, sp,
		"block comment was never terminated")
}
