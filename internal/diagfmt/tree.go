package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"yangfmt/internal/ast"
)

// FormatTreePretty writes a compact s-expression view of the syntax tree,
// showing node kinds and comment attachment rather than full text.
func FormatTreePretty(w io.Writer, root *ast.Root) error {
	var sb strings.Builder
	sb.WriteString("(root")
	for _, n := range root.Nodes {
		writeTreeNode(&sb, n, 1)
	}
	sb.WriteString(")\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTreeNode(sb *strings.Builder, n ast.Node, depth int) {
	sb.WriteByte('\n')
	for range depth {
		sb.WriteString("  ")
	}

	switch n := n.(type) {
	case *ast.Statement:
		fmt.Fprintf(sb, "(%s %q", n.Keyword.Kind, n.Keyword.Text)

		for range n.KeywordComments {
			sb.WriteString(" <comment>")
		}
		if n.Value != nil {
			sb.WriteByte(' ')
			sb.WriteString(valueKind(n.Value))
		}
		for range n.ValueComments {
			sb.WriteString(" <comment>")
		}
		for range n.PostComments {
			sb.WriteString(" <post-comment>")
		}

		if n.Body != nil {
			for _, child := range n.Body.Nodes {
				writeTreeNode(sb, child, depth+1)
			}
		}
		sb.WriteByte(')')

	case *ast.Comment:
		sb.WriteString("(comment)")

	case *ast.EmptyLine:
		sb.WriteString("[EmptyLine]")
	}
}

func valueKind(v ast.Value) string {
	switch v.(type) {
	case *ast.String:
		return "String"
	case *ast.Concat:
		return "StringConcatenation"
	case *ast.Number:
		return "Number"
	case *ast.Date:
		return "Date"
	default:
		return "Other"
	}
}

// treeNodeOutput is the JSON shape of a tree node.
type treeNodeOutput struct {
	Kind            string           `json:"kind"`
	Keyword         string           `json:"keyword,omitempty"`
	KeywordKind     string           `json:"keywordKind,omitempty"`
	Value           string           `json:"value,omitempty"`
	ValueKind       string           `json:"valueKind,omitempty"`
	Text            string           `json:"text,omitempty"`
	KeywordComments []string         `json:"keywordComments,omitempty"`
	ValueComments   []string         `json:"valueComments,omitempty"`
	PostComments    []string         `json:"postComments,omitempty"`
	Children        []treeNodeOutput `json:"children,omitempty"`
	HasBlock        bool             `json:"hasBlock,omitempty"`
}

// FormatTreeJSON writes the syntax tree as JSON, full text included.
func FormatTreeJSON(w io.Writer, root *ast.Root) error {
	out := make([]treeNodeOutput, 0, len(root.Nodes))
	for _, n := range root.Nodes {
		out = append(out, treeNode(n))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func treeNode(n ast.Node) treeNodeOutput {
	switch n := n.(type) {
	case *ast.Statement:
		out := treeNodeOutput{
			Kind:            "statement",
			Keyword:         n.Keyword.Text,
			KeywordKind:     n.Keyword.Kind.String(),
			KeywordComments: n.KeywordComments,
			ValueComments:   n.ValueComments,
			PostComments:    n.PostComments,
		}
		if n.Value != nil {
			out.ValueKind = valueKind(n.Value)
			if text, ok := ast.ValueText(n.Value); ok {
				out.Value = text
			}
		}
		if n.Body != nil {
			out.HasBlock = true
			out.Children = make([]treeNodeOutput, 0, len(n.Body.Nodes))
			for _, child := range n.Body.Nodes {
				out.Children = append(out.Children, treeNode(child))
			}
		}
		return out

	case *ast.Comment:
		return treeNodeOutput{Kind: "comment", Text: n.Text}

	default:
		return treeNodeOutput{Kind: "emptyLine"}
	}
}
