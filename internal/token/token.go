package token

import (
	"yangfmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsWhitespace reports whether the token is a run of spaces or tabs.
func (t Token) IsWhitespace() bool { return t.Kind == Space }

// IsLineBreak reports whether the token is a line break.
func (t Token) IsLineBreak() bool { return t.Kind == Newline }

// IsComment reports whether the token is a line or block comment.
func (t Token) IsComment() bool { return t.Kind == Comment }

// IsTrivia reports whether the token carries no semantic content of its own.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case Space, Newline, Comment:
		return true
	default:
		return false
	}
}

// IsValue reports whether the token can act as a statement value.
func (t Token) IsValue() bool {
	switch t.Kind {
	case String, Number, Date, Other:
		return true
	default:
		return false
	}
}
