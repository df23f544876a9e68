// Package ast models the concrete YANG syntax tree produced by the parser.
//
// The tree keeps everything the formatter needs to reproduce the source:
// comments are attached to the statement position they were found in, blank
// lines are nodes of their own, and quote characters stay inside string
// values until the formatter normalizes them. Ownership is strictly
// tree-shaped; nothing in here refers back to the token stream.
package ast

// Node is one element of a sibling sequence: a statement, a standalone
// comment, or a blank line. Order within a sequence is source order.
type Node interface {
	node()
}

// Root owns the top-level sibling sequence. Conceptually it is a block
// statement without a keyword.
type Root struct {
	Nodes []Node
}

// Comment is a standalone line or block comment, markers included.
type Comment struct {
	Text string
}

// EmptyLine marks a blank line between siblings. Consecutive source blank
// lines parse into consecutive EmptyLine nodes; the formatter squashes them.
type EmptyLine struct{}

// Block holds the children of a block statement. A present Block with zero
// nodes is an empty "{}" body, which is distinct from a leaf statement.
type Block struct {
	Nodes []Node
}

// Statement is the basic unit of the language: a keyword, an optional
// value, and either a ";" terminator (nil Body) or a child block.
type Statement struct {
	Keyword Keyword

	// KeywordComments are comments between the keyword and the value (or
	// terminator, for statements without a value).
	KeywordComments []string

	// Value is nil for statements without a value.
	Value Value

	// ValueComments are comments between the value and the terminator.
	ValueComments []string

	Body *Block

	// PostComments are comments on the same source line as the statement's
	// ";" or "{". Keeping them on the statement (rather than letting them
	// attach to whatever node comes next) means reordering statements never
	// separates them from their comment.
	PostComments []string
}

func (*Statement) node() {}
func (*Comment) node()   {}
func (*EmptyLine) node() {}

// IsEmptyLine reports whether the node is a blank line.
func IsEmptyLine(n Node) bool {
	_, ok := n.(*EmptyLine)
	return ok
}

// IsComment reports whether the node is a standalone comment.
func IsComment(n Node) bool {
	_, ok := n.(*Comment)
	return ok
}

// AsStatement returns the node as a statement, or nil.
func AsStatement(n Node) *Statement {
	st, _ := n.(*Statement)
	return st
}
