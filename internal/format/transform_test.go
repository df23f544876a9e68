package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yangfmt/internal/ast"
	"yangfmt/internal/format"
	"yangfmt/internal/parser"
)

func transform(t *testing.T, src string, opt format.Options) *ast.Root {
	t.Helper()
	tree, err := parser.ParseBytes([]byte(src))
	require.NoError(t, err)
	format.Transform(tree, opt)
	return tree
}

func stringValue(t *testing.T, n ast.Node) string {
	t.Helper()
	st := ast.AsStatement(n)
	require.NotNil(t, st)
	v, ok := st.Value.(*ast.String)
	require.True(t, ok)
	return v.Text
}

func TestTransformQuoteConversion(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"single to double", `description 'plain';`, `"plain"`},
		{"already double", `description "plain";`, `"plain"`},
		{"inner double quote kept single", `pattern 'say "hi"';`, `'say "hi"'`},
		{"inner single quote fine", `pattern "don't";`, `"don't"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tree := transform(t, tc.src, format.Options{})
			require.Equal(t, tc.want, stringValue(t, tree.Nodes[0]))
		})
	}
}

func TestTransformQuoteConversionInConcat(t *testing.T) {
	tree := transform(t, `pattern 'a' + "b" + 'c"d';`, format.Options{})
	st := ast.AsStatement(tree.Nodes[0])
	concat := st.Value.(*ast.Concat)
	require.Equal(t, `"a"`, concat.Fragments[0].Text)
	require.Equal(t, `"b"`, concat.Fragments[1].Text)
	require.Equal(t, `'c"d'`, concat.Fragments[2].Text)
}

func TestTransformStripString(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`description "  padded  ";`, `"padded"`},
		{`description "   ";`, `""`},
		{`description '   ';`, `""`},
		{`description "tight";`, `"tight"`},
	}

	for _, tc := range cases {
		tree := transform(t, tc.src, format.Options{})
		require.Equal(t, tc.want, stringValue(t, tree.Nodes[0]), "input %q", tc.src)
	}
}

func TestTransformDedentMultilineString(t *testing.T) {
	src := "description \"first\n      second\n        third\";"
	tree := transform(t, src, format.Options{})
	require.Equal(t, "\"first\nsecond\n  third\"", stringValue(t, tree.Nodes[0]))
}

func TestTransformDedentKeepsEmptyLinesBare(t *testing.T) {
	src := "description \"first\n   \n   second\";"
	tree := transform(t, src, format.Options{})
	require.Equal(t, "\"first\n\nsecond\"", stringValue(t, tree.Nodes[0]))
}

func TestTransformTrimAndSquashEmptyLines(t *testing.T) {
	src := "module m {\n\n\n  a;\n\n\n\n  b;\n\n}\n"
	tree := transform(t, src, format.Options{})

	mod := ast.AsStatement(tree.Nodes[0])
	var got []string
	for _, n := range mod.Body.Nodes {
		switch n := n.(type) {
		case *ast.Statement:
			got = append(got, n.Keyword.Text)
		case *ast.EmptyLine:
			got = append(got, "")
		}
	}
	require.Equal(t, []string{"a", "", "b"}, got)
}

func TestTransformRelocatesMidStatementComments(t *testing.T) {
	src := "container c /* one */ {\n}\nleaf l /* two */;\n"
	tree := transform(t, src, format.Options{})

	c := ast.AsStatement(tree.Nodes[0])
	require.Empty(t, c.KeywordComments)
	require.Equal(t, []string{"/* one */"}, c.PostComments)

	l := ast.AsStatement(tree.Nodes[1])
	require.Empty(t, l.KeywordComments)
	require.Equal(t, []string{"/* two */"}, l.PostComments)
}

func TestTransformCommentCountIsConserved(t *testing.T) {
	src := `// top
module m { // post
  /* standalone */
  leaf l /* mid */ {
    type string; // trail
  }
}
`
	tree, err := parser.ParseBytes([]byte(src))
	require.NoError(t, err)
	before := countComments(tree.Nodes)

	format.Transform(tree, format.Options{CanonicalOrder: true})
	after := countComments(tree.Nodes)
	require.Equal(t, before, after)
	require.Equal(t, 5, after)
}

func countComments(nodes []ast.Node) int {
	count := 0
	for _, n := range nodes {
		if ast.IsComment(n) {
			count++
			continue
		}
		st := ast.AsStatement(n)
		if st == nil {
			continue
		}
		count += len(st.KeywordComments) + len(st.ValueComments) + len(st.PostComments)
		if concat, ok := st.Value.(*ast.Concat); ok {
			for _, frag := range concat.Fragments {
				count += len(frag.Comments)
			}
		}
		if st.Body != nil {
			count += countComments(st.Body.Nodes)
		}
	}
	return count
}
