package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// String is a single- or double-quoted string, quotes included.
	String
	// Number matches the YANG integer-value / decimal-value shape.
	Number
	// Date is a NNNN-NN-NN revision date.
	Date
	// Comment is a line comment or a block comment, markers included.
	Comment
	// OpenBrace is '{'.
	OpenBrace // {
	// CloseBrace is '}'.
	CloseBrace // }
	// Plus is the string concatenation operator '+'.
	Plus // +
	// Semicolon is ';'.
	Semicolon // ;
	// Space is a run of spaces and tabs.
	Space
	// Newline is a single '\n' or '\r\n'.
	Newline
	// Other is any undelimited run that is not a number or date: keywords,
	// identifiers, booleans, unquoted strings, xpaths and so on.
	Other
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case String:
		return "String"
	case Number:
		return "Number"
	case Date:
		return "Date"
	case Comment:
		return "Comment"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case Plus:
		return "Plus"
	case Semicolon:
		return "Semicolon"
	case Space:
		return "Space"
	case Newline:
		return "Newline"
	case Other:
		return "Other"
	}
	return "Unknown"
}
