package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"yangfmt/internal/ast"
	"yangfmt/internal/diag"
	"yangfmt/internal/parser"
)

func TestStatementKeywordOnly(t *testing.T) {
	tree := parse(t, "input;")
	st := onlyStatement(t, tree)
	require.Equal(t, "input", st.Keyword.Text)
	require.Equal(t, ast.KeywordStatement, st.Keyword.Kind)
	require.Nil(t, st.Value)
	require.Nil(t, st.Body)
}

func TestStatementValueKinds(t *testing.T) {
	cases := []struct {
		src   string
		value ast.Value
	}{
		{`description "text";`, &ast.String{Text: `"text"`}},
		{`description 'text';`, &ast.String{Text: `'text'`}},
		{`min-elements 10;`, &ast.Number{Text: "10"}},
		{`fraction-digits 2.5;`, &ast.Number{Text: "2.5"}},
		{`revision 2024-02-29;`, &ast.Date{Text: "2024-02-29"}},
		{`type string;`, &ast.Other{Text: "string"}},
		{`path "/if:interfaces/if:interface/if:name";`, &ast.String{Text: `"/if:interfaces/if:interface/if:name"`}},
	}

	for _, tc := range cases {
		tree := parse(t, tc.src)
		st := onlyStatement(t, tree)
		require.Equal(t, tc.value, st.Value, "input %q", tc.src)
	}
}

func TestStatementExtensionKeyword(t *testing.T) {
	tree := parse(t, "tailf:annotate foo;")
	st := onlyStatement(t, tree)
	require.Equal(t, ast.KeywordExtension, st.Keyword.Kind)
	require.Equal(t, "tailf:annotate", st.Keyword.Text)
}

func TestStatementUnknownKeywordIsInvalid(t *testing.T) {
	tree := parse(t, "frobnicate x;")
	st := onlyStatement(t, tree)
	require.Equal(t, ast.KeywordInvalid, st.Keyword.Kind)
}

func TestStatementConcat(t *testing.T) {
	tree := parse(t, `pattern "a" + "b" + 'c';`)
	st := onlyStatement(t, tree)

	concat, ok := st.Value.(*ast.Concat)
	require.True(t, ok)
	require.Equal(t, []ast.Fragment{
		{Text: `"a"`},
		{Text: `"b"`},
		{Text: `'c'`},
	}, concat.Fragments)
}

func TestStatementConcatAcrossLines(t *testing.T) {
	tree := parse(t, "pattern \"a\"\n  + \"b\";")
	st := onlyStatement(t, tree)

	concat, ok := st.Value.(*ast.Concat)
	require.True(t, ok)
	require.Len(t, concat.Fragments, 2)
}

func TestStatementConcatComments(t *testing.T) {
	tree := parse(t, `pattern "a" // one
  + "b" /* two */ + "c";`)
	st := onlyStatement(t, tree)

	concat, ok := st.Value.(*ast.Concat)
	require.True(t, ok)
	require.Equal(t, []string{"// one"}, concat.Fragments[0].Comments)
	require.Equal(t, []string{"/* two */"}, concat.Fragments[1].Comments)
	require.Empty(t, concat.Fragments[2].Comments)
}

func TestStatementKeywordComments(t *testing.T) {
	tree := parse(t, `description /* here */ "text";`)
	st := onlyStatement(t, tree)
	require.Equal(t, []string{"/* here */"}, st.KeywordComments)
	require.Empty(t, st.ValueComments)
}

func TestStatementValueComments(t *testing.T) {
	tree := parse(t, `description "text" /* there */;`)
	st := onlyStatement(t, tree)
	require.Empty(t, st.KeywordComments)
	require.Equal(t, []string{"/* there */"}, st.ValueComments)
}

func TestStatementPostComments(t *testing.T) {
	tree := parse(t, "leaf x; // trailing\nleaf y {  /* a */ // b\n}\n")

	require.Len(t, tree.Nodes, 2)
	x := ast.AsStatement(tree.Nodes[0])
	require.Equal(t, []string{"// trailing"}, x.PostComments)

	y := ast.AsStatement(tree.Nodes[1])
	require.Equal(t, []string{"/* a */", "// b"}, y.PostComments)
}

func TestStatementPostCommentStopsAtNewline(t *testing.T) {
	// A comment on the next line is a standalone sibling, not a
	// post-comment of the previous statement.
	tree := parse(t, "leaf x;\n// next line\n")
	require.Len(t, tree.Nodes, 2)
	require.Empty(t, ast.AsStatement(tree.Nodes[0]).PostComments)
	require.True(t, ast.IsComment(tree.Nodes[1]))
}

func TestStatementConcatNonString(t *testing.T) {
	_, err := parser.ParseBytes([]byte("max-elements 5 + 3;"))
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.SynInvalidConcatenation, d.Code)
}

func TestStatementConcatTrailingPlus(t *testing.T) {
	_, err := parser.ParseBytes([]byte(`pattern "a" + ;`))
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.SynInvalidConcatenation, d.Code)
}

func TestStatementUnexpectedEOF(t *testing.T) {
	_, err := parser.ParseBytes([]byte("description"))
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.SynUnexpectedEOF, d.Code)
}
