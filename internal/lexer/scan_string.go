package lexer

import (
	"yangfmt/internal/diag"
	"yangfmt/internal/token"
)

// scanString scans a single- or double-quoted string, quotes included. The
// only escape the lexer cares about is a backslash immediately before the
// closing quote character, which suppresses termination; everything else is
// kept verbatim. Strings may span multiple lines.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var prev byte
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == quote && prev != '\\' {
			return lx.makeToken(token.String, start), nil
		}
		prev = b
	}

	sp := lx.cursor.SpanFrom(start)
	sp.End = sp.Start + 1
	return token.Token{}, diag.New(diag.LexUnterminatedString, sp,
		"string was never terminated")
}
