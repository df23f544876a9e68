package parser

import (
	"yangfmt/internal/ast"
	"yangfmt/internal/diag"
	"yangfmt/internal/lexer"
	"yangfmt/internal/source"
	"yangfmt/internal/token"
)

// parseState tracks where in a statement the parser currently is. The value
// and trivia grammar of a statement is a small deterministic automaton, so
// it is written as one, instead of a set of mutually recursive functions:
// which comment list a comment lands in depends only on the current state.
type parseState uint8

const (
	// stClean expects the statement keyword.
	stClean parseState = iota
	// stGotKeyword has seen the keyword and waits for a value or terminator.
	//
	//	module foo {
	//	      ^
	stGotKeyword
	// stGotValue has seen the value and waits for a terminator or "+".
	//
	//	module foo {
	//	          ^
	stGotValue
	// stGotConcat is inside a string concatenation chain.
	//
	//	pattern "foo" + "bar";
	//	               ^
	stGotConcat
	// stGotStatement has consumed the ";" or "{".
	stGotStatement
)

// plusState tracks whether a concatenation expects a "+" or a string next.
type plusState uint8

const (
	beforePlus plusState = iota
	afterPlus
)

// parseStatement consumes exactly one statement from the token stream and
// reports whether it opens a child block.
//
// A statement includes everything up to and including its closing ";" or
// opening "{", plus any comments on the same line after the terminator
// (stored in PostComments, so sorting statements never loses them). The
// token that ends the post-comment scan is peeked, not consumed.
//
// The function never recurses into children; the caller handles nesting.
func parseStatement(lx *lexer.Lexer) (*ast.Statement, bool, error) {
	var (
		state           = stClean
		plus            plusState
		keyword         string
		keywordComments []string
		value           ast.Value
		valueComments   []string
		fragments       []ast.Fragment
		opensBlock      bool
		lastSpan        source.Span
	)

	for state != stGotStatement {
		tok, err := lx.Next()
		if err != nil {
			return nil, false, err
		}
		if tok.Kind == token.EOF {
			return nil, false, diag.New(diag.SynUnexpectedEOF, lastSpan,
				"unexpected end of input while parsing a statement")
		}
		lastSpan = tok.Span

		switch state {
		case stClean:
			if tok.Kind != token.Other {
				return nil, false, unexpectedToken(tok)
			}
			keyword = tok.Text
			state = stGotKeyword

		case stGotKeyword:
			switch tok.Kind {
			case token.Space, token.Newline:
				// ignored
			case token.Comment:
				keywordComments = append(keywordComments, tok.Text)
			case token.Semicolon:
				state = stGotStatement
			case token.OpenBrace:
				opensBlock = true
				state = stGotStatement
			default:
				// Anything that isn't trivia or a terminator becomes the
				// statement value.
				value = ast.ValueFromToken(tok)
				state = stGotValue
			}

		case stGotValue:
			switch tok.Kind {
			case token.Space, token.Newline:
				// ignored
			case token.Comment:
				valueComments = append(valueComments, tok.Text)
			case token.Semicolon:
				state = stGotStatement
			case token.OpenBrace:
				opensBlock = true
				state = stGotStatement
			case token.Plus:
				str, ok := value.(*ast.String)
				if !ok {
					return nil, false, diag.New(diag.SynInvalidConcatenation,
						tok.Span, "cannot concatenate a non-string value")
				}
				// The first fragment inherits the comments seen so far;
				// statements with concatenation values carry no value
				// comments of their own.
				fragments = []ast.Fragment{{Text: str.Text, Comments: valueComments}}
				valueComments = nil
				value = nil
				plus = afterPlus
				state = stGotConcat
			default:
				return nil, false, unexpectedToken(tok)
			}

		case stGotConcat:
			switch tok.Kind {
			case token.Space, token.Newline:
				// ignored
			case token.Comment:
				// A comment in the middle of a concatenation belongs to the
				// previous string.
				last := &fragments[len(fragments)-1]
				last.Comments = append(last.Comments, tok.Text)
			case token.String:
				if plus != afterPlus {
					return nil, false, unexpectedToken(tok)
				}
				fragments = append(fragments, ast.Fragment{Text: tok.Text})
				plus = beforePlus
			case token.Plus:
				if plus != beforePlus {
					return nil, false, unexpectedToken(tok)
				}
				plus = afterPlus
			case token.Semicolon, token.OpenBrace:
				if plus != beforePlus {
					return nil, false, diag.New(diag.SynInvalidConcatenation,
						tok.Span, "expected a string after \"+\"")
				}
				value = &ast.Concat{Fragments: fragments}
				opensBlock = tok.Kind == token.OpenBrace
				state = stGotStatement
			default:
				if plus == afterPlus {
					return nil, false, diag.New(diag.SynInvalidConcatenation,
						tok.Span, "can only concatenate strings")
				}
				return nil, false, unexpectedToken(tok)
			}
		}
	}

	// Consume any same-line whitespace and comments after the terminator;
	// the first token that is neither stays in the stream for the caller.
	var postComments []string
	for {
		tok, err := lx.Peek()
		if err != nil {
			return nil, false, err
		}
		switch tok.Kind {
		case token.Space:
			if _, err := lx.Next(); err != nil {
				return nil, false, err
			}
		case token.Comment:
			postComments = append(postComments, tok.Text)
			if _, err := lx.Next(); err != nil {
				return nil, false, err
			}
		default:
			return &ast.Statement{
				Keyword:         ast.KeywordFromText(keyword),
				KeywordComments: keywordComments,
				Value:           value,
				ValueComments:   valueComments,
				PostComments:    postComments,
			}, opensBlock, nil
		}
	}
}

func unexpectedToken(tok token.Token) *diag.Diagnostic {
	return diag.Newf(diag.SynUnexpectedToken, tok.Span,
		"unexpected token %q (%s)", tok.Text, tok.Kind)
}
