// Package token defines the lexical token kinds of the YANG surface syntax.
// Invariants:
//   - Token.Span matches Text exactly (Start..End, end exclusive).
//   - Whitespace and line breaks are tokens, not skipped trivia; the token
//     stream covers every byte of the input with no gaps.
//   - Number and Date are recognized by pattern-matching an undelimited run
//     after scanning; the lexer never validates statement keywords.
package token
