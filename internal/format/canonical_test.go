package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yangfmt/internal/ast"
	"yangfmt/internal/format"
)

func keywordOrder(t *testing.T, nodes []ast.Node) []string {
	t.Helper()
	var out []string
	for _, n := range nodes {
		st := ast.AsStatement(n)
		require.NotNil(t, st)
		out = append(out, st.Keyword.Text)
	}
	return out
}

func TestCanonicalOrderSortsLeafBody(t *testing.T) {
	src := `leaf l {
  description "d";
  type string;
  mandatory true;
  if-feature f;
}
`
	tree := transform(t, src, format.Options{CanonicalOrder: true})
	leaf := ast.AsStatement(tree.Nodes[0])
	require.Equal(t,
		[]string{"if-feature", "type", "mandatory", "description"},
		keywordOrder(t, leaf.Body.Nodes))
}

func TestCanonicalOrderIsStableForUnknownKeywords(t *testing.T) {
	src := `leaf l {
  tailf:info "b";
  type string;
  tailf:hidden all;
}
`
	tree := transform(t, src, format.Options{CanonicalOrder: true})
	leaf := ast.AsStatement(tree.Nodes[0])
	require.Equal(t,
		[]string{"type", "tailf:info", "tailf:hidden"},
		keywordOrder(t, leaf.Body.Nodes))
}

func TestCanonicalOrderSkipsNonLeafParents(t *testing.T) {
	src := `container c {
  description "d";
  presence "p";
}
`
	tree := transform(t, src, format.Options{CanonicalOrder: true})
	cont := ast.AsStatement(tree.Nodes[0])
	require.Equal(t,
		[]string{"description", "presence"},
		keywordOrder(t, cont.Body.Nodes))
}

func TestCanonicalOrderSkipsListsWithComments(t *testing.T) {
	src := `leaf l {
  description "d";
  // pinned here
  type string;
}
`
	tree := transform(t, src, format.Options{CanonicalOrder: true})
	leaf := ast.AsStatement(tree.Nodes[0])

	first := ast.AsStatement(leaf.Body.Nodes[0])
	require.Equal(t, "description", first.Keyword.Text)
	require.True(t, ast.IsComment(leaf.Body.Nodes[1]))
}

func TestCanonicalOrderSkipsListsWithBlankLines(t *testing.T) {
	src := `leaf l {
  description "d";

  type string;
}
`
	tree := transform(t, src, format.Options{CanonicalOrder: true})
	leaf := ast.AsStatement(tree.Nodes[0])

	first := ast.AsStatement(leaf.Body.Nodes[0])
	require.Equal(t, "description", first.Keyword.Text)
}

func TestCanonicalOrderOffByDefault(t *testing.T) {
	src := `leaf l {
  description "d";
  type string;
}
`
	tree := transform(t, src, format.Options{})
	leaf := ast.AsStatement(tree.Nodes[0])
	require.Equal(t,
		[]string{"description", "type"},
		keywordOrder(t, leaf.Body.Nodes))
}
