package ast

import (
	"regexp"
)

// KeywordKind classifies a statement keyword.
type KeywordKind uint8

const (
	// KeywordStatement is a keyword from the fixed RFC 7950 statement set.
	KeywordStatement KeywordKind = iota
	// KeywordExtension is an "identifier:identifier" extension keyword.
	KeywordExtension
	// KeywordInvalid is anything else. Invalid keywords are kept, not
	// rejected, so the formatter never refuses recoverable input.
	KeywordInvalid
)

func (k KeywordKind) String() string {
	switch k {
	case KeywordStatement:
		return "Keyword"
	case KeywordExtension:
		return "ExtensionKeyword"
	case KeywordInvalid:
		return "INVALID"
	}
	return "Unknown"
}

// Keyword is a classified statement keyword.
type Keyword struct {
	Kind KeywordKind
	Text string
}

// identifier ":" identifier, see "unknown-statement" from the RFC 7950 ABNF.
var extKeywordPattern = regexp.MustCompile(
	`^[a-zA-Z_][a-zA-Z0-9\-_.]*:[a-zA-Z_][a-zA-Z0-9\-_.]*$`)

// KeywordFromText classifies raw keyword text.
func KeywordFromText(text string) Keyword {
	switch {
	case IsStatementKeyword(text):
		return Keyword{Kind: KeywordStatement, Text: text}
	case extKeywordPattern.MatchString(text):
		return Keyword{Kind: KeywordExtension, Text: text}
	default:
		return Keyword{Kind: KeywordInvalid, Text: text}
	}
}
