package lexer

import (
	"regexp"

	"yangfmt/internal/token"
)

var (
	// "integer-value" / "decimal-value" from the RFC 7950 ABNF.
	numberPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*(\.[0-9]+)?)$`)

	// "revision-date" shape: NNNN-NN-NN.
	datePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// isDelimiter reports whether the byte ends an undelimited run.
func isDelimiter(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', ';', '{', '}':
		return true
	default:
		return false
	}
}

// scanOther scans an undelimited run of bytes up to the next delimiter and
// classifies it post-hoc as a number, date or plain "other" lexeme.
func (lx *Lexer) scanOther() (token.Token, error) {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && !isDelimiter(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if lx.cursor.Mark() == start {
		// Delimiters are consumed by earlier scanners, so an empty run
		// means the dispatch table has a hole.
		return token.Token{}, lx.unexpectedChar(lx.cursor.Peek())
	}

	tok := lx.makeToken(token.Other, start)
	switch {
	case numberPattern.MatchString(tok.Text):
		tok.Kind = token.Number
	case datePattern.MatchString(tok.Text):
		tok.Kind = token.Date
	}
	return tok, nil
}
