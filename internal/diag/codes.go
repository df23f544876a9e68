package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnexpectedChar      Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003

	// Syntactic
	SynInfo                   Code = 2000
	SynUnexpectedToken        Code = 2001
	SynUnexpectedEOF          Code = 2002
	SynUnexpectedClosingBrace Code = 2003
	SynUnclosedBlock          Code = 2004
	SynInvalidConcatenation   Code = 2005

	// IO / driver
	IOInfo       Code = 4000
	IOWriteError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	LexInfo:                "Lexer info",
	LexUnexpectedChar:      "Unexpected character",
	LexUnterminatedString:  "Unterminated string",
	LexUnterminatedComment: "Unterminated block comment",

	SynInfo:                   "Parser info",
	SynUnexpectedToken:        "Unexpected token",
	SynUnexpectedEOF:          "Unexpected end of input",
	SynUnexpectedClosingBrace: "Unexpected closing curly brace",
	SynUnclosedBlock:          "Unclosed block at end of file",
	SynInvalidConcatenation:   "Invalid string concatenation",

	IOInfo:       "IO info",
	IOWriteError: "Failed to write output",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
