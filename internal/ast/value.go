package ast

import (
	"yangfmt/internal/token"
)

// Value is the value part of a statement.
type Value interface {
	value()
}

// String is a quoted string value. Text includes the quote characters; the
// formatter rewrites them in place during quote normalization.
type String struct {
	Text string
}

// Number is an integer or decimal value, kept as written.
type Number struct {
	Text string
}

// Date is a NNNN-NN-NN revision date.
type Date struct {
	Text string
}

// Other is any value not obviously identifiable as a quoted string, number
// or date: identifiers, booleans, xpaths, keypaths and so on. This can be
// split into finer kinds if a use-case appears.
type Other struct {
	Text string
}

// Concat is a "+"-joined multi-part string value. It always has at least
// two fragments; a single quoted value is a plain String.
type Concat struct {
	Fragments []Fragment
}

// Fragment is one quoted segment of a concatenation, with the comments that
// followed it before the next "+" or the terminator.
type Fragment struct {
	Text     string
	Comments []string
}

func (*String) value() {}
func (*Number) value() {}
func (*Date) value()   {}
func (*Other) value()  {}
func (*Concat) value() {}

// ValueFromToken classifies a token into a statement value.
func ValueFromToken(tok token.Token) Value {
	switch tok.Kind {
	case token.String:
		return &String{Text: tok.Text}
	case token.Number:
		return &Number{Text: tok.Text}
	case token.Date:
		return &Date{Text: tok.Text}
	default:
		return &Other{Text: tok.Text}
	}
}

// ValueText returns the raw text of a non-concatenation value, and whether
// the value was one. Concatenations have no single text.
func ValueText(v Value) (string, bool) {
	switch val := v.(type) {
	case *String:
		return val.Text, true
	case *Number:
		return val.Text, true
	case *Date:
		return val.Text, true
	case *Other:
		return val.Text, true
	default:
		return "", false
	}
}
