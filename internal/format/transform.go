package format

import (
	"strings"

	"yangfmt/internal/ast"
)

// Transform applies the formatting rewrite passes to the tree in place,
// children before parents.
func Transform(root *ast.Root, opt Options) {
	opt = opt.withDefaults()
	processNodes("", &root.Nodes, opt)
}

// processNodes runs the per-node passes bottom-up, then the sibling-list
// passes, in a fixed order.
func processNodes(parentKeyword string, nodes *[]ast.Node, opt Options) {
	for _, n := range *nodes {
		if st := ast.AsStatement(n); st != nil && st.Body != nil {
			processNodes(st.Keyword.Text, &st.Body.Nodes, opt)
		}

		convertToDoubleQuotes(n)
		stripString(n)
		dedentMultilineString(n)
	}

	trimEmptyLines(nodes)
	squashEmptyLines(nodes)
	relocatePreBlockComments(*nodes)

	if opt.CanonicalOrder {
		sortStatements(parentKeyword, *nodes)
	}
}

// nodeValue returns the statement value of the node, if any.
func nodeValue(n ast.Node) ast.Value {
	if st := ast.AsStatement(n); st != nil {
		return st.Value
	}
	return nil
}

// convertToDoubleQuotes rewrites single-quoted strings to double-quoted
// ones. The only exception is a string whose content contains a double
// quote: single-quoted content is never escaped, so rewriting it would
// change its meaning.
func convertToDoubleQuotes(n ast.Node) {
	switch v := nodeValue(n).(type) {
	case *ast.String:
		rewriteQuotes(&v.Text)
	case *ast.Concat:
		for i := range v.Fragments {
			rewriteQuotes(&v.Fragments[i].Text)
		}
	}
}

func rewriteQuotes(text *string) {
	s := *text
	if len(s) < 2 || s[0] != '\'' {
		return
	}
	inner := s[1 : len(s)-1]
	if strings.Contains(inner, `"`) {
		return
	}
	*text = `"` + inner + `"`
}

// stripString removes leading and trailing whitespace from the content of a
// non-concatenated string value. A whitespace-only string becomes "".
func stripString(n ast.Node) {
	v, ok := nodeValue(n).(*ast.String)
	if !ok || len(v.Text) < 2 {
		return
	}

	quote := v.Text[0]
	inner := strings.TrimSpace(v.Text[1 : len(v.Text)-1])
	if inner == "" {
		v.Text = `""`
		return
	}
	v.Text = string(quote) + inner + string(quote)
}

// dedentMultilineString removes the common leading whitespace from the
// continuation lines of a multi-line string. The first line stays attached
// to the opening quote. Source indentation of continued lines is an
// artifact of the original formatting; the printer recomputes it.
func dedentMultilineString(n ast.Node) {
	v, ok := nodeValue(n).(*ast.String)
	if !ok || len(v.Text) < 2 {
		return
	}

	quote := v.Text[0]
	inner := v.Text[1 : len(v.Text)-1]
	lines := strings.Split(inner, "\n")
	if len(lines) < 2 {
		return
	}

	rest := dedent(strings.Join(lines[1:], "\n"))
	v.Text = string(quote) + lines[0] + "\n" + rest + string(quote)
}

// dedent strips the longest common leading whitespace from every line.
// Whitespace-only lines are ignored for the margin and come out empty.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := len(line) - len(trimmed)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	if margin <= 0 {
		return text
	}

	for i, line := range lines {
		if strings.TrimLeft(line, " \t") == "" {
			lines[i] = ""
			continue
		}
		lines[i] = line[margin:]
	}
	return strings.Join(lines, "\n")
}

// trimEmptyLines drops leading and trailing blank lines from a sibling
// list, so blocks never open or close onto an empty line.
func trimEmptyLines(nodes *[]ast.Node) {
	list := *nodes
	for len(list) > 0 && ast.IsEmptyLine(list[0]) {
		list = list[1:]
	}
	for len(list) > 0 && ast.IsEmptyLine(list[len(list)-1]) {
		list = list[:len(list)-1]
	}
	*nodes = list
}

// squashEmptyLines collapses every run of consecutive blank lines to one.
func squashEmptyLines(nodes *[]ast.Node) {
	list := *nodes
	out := list[:0]
	for _, n := range list {
		if ast.IsEmptyLine(n) && len(out) > 0 && ast.IsEmptyLine(out[len(out)-1]) {
			continue
		}
		out = append(out, n)
	}
	*nodes = out
}

// relocatePreBlockComments moves keyword- and value-side comments into the
// statement's post comments. Mid-statement comment placement is visually
// unstable under reformatting, so the formatter picks one stable location
// instead of trying to preserve the original spot.
func relocatePreBlockComments(nodes []ast.Node) {
	for _, n := range nodes {
		st := ast.AsStatement(n)
		if st == nil {
			continue
		}
		st.PostComments = append(st.PostComments, st.KeywordComments...)
		st.PostComments = append(st.PostComments, st.ValueComments...)
		st.KeywordComments = nil
		st.ValueComments = nil
	}
}
