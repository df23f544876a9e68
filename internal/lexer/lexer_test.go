package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"yangfmt/internal/diag"
	"yangfmt/internal/lexer"
	"yangfmt/internal/source"
	"yangfmt/internal/token"
)

// scanString scans src and drops the trailing EOF token, so tests assert
// on the payload tokens only.
func scanString(t *testing.T, src string) ([]token.Token, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	toks, err := lexer.Scan(fs.Get(id))
	if n := len(toks); err == nil && n > 0 && toks[n-1].Kind == token.EOF {
		toks = toks[:n-1]
	}
	return toks, err
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScanBasicStatement(t *testing.T) {
	toks, err := scanString(t, `contact "Example";`)
	require.NoError(t, err)

	want := []token.Kind{token.Other, token.Space, token.String, token.Semicolon}
	require.Equal(t, want, kinds(toks))
	require.Equal(t, "contact", toks[0].Text)
	require.Equal(t, `"Example"`, toks[2].Text)
}

func TestScanCoversEveryByte(t *testing.T) {
	src := "module foo {\n  // c\n  leaf x;\n}\n"
	toks, err := scanString(t, src)
	require.NoError(t, err)

	var off uint32
	for _, tok := range toks {
		require.Equal(t, off, tok.Span.Start, "token %s starts at wrong offset", tok.Kind)
		off = tok.Span.End
	}
	require.Equal(t, uint32(len(src)), off)
}

func TestScanClassification(t *testing.T) {
	cases := []struct {
		text string
		kind token.Kind
	}{
		{"0", token.Number},
		{"-1", token.Number},
		{"42", token.Number},
		{"3.14", token.Number},
		{"-10.5", token.Number},
		{"007", token.Other},
		{"1.", token.Other},
		{"2024-01-31", token.Date},
		{"2024-1-31", token.Other},
		{"identifier", token.Other},
		{"ietf-yang-types", token.Other},
		{"tailf:action", token.Other},
	}

	for _, tc := range cases {
		toks, err := scanString(t, tc.text)
		require.NoError(t, err, "input %q", tc.text)
		require.Len(t, toks, 1, "input %q", tc.text)
		require.Equal(t, tc.kind, toks[0].Kind, "input %q", tc.text)
	}
}

func TestScanStrings(t *testing.T) {
	cases := []struct {
		name string
		src  string
		text string
	}{
		{"double", `"hello world"`, `"hello world"`},
		{"single", `'hello'`, `'hello'`},
		{"escaped quote", `"a \" b"`, `"a \" b"`},
		{"multiline", "\"line one\nline two\"", "\"line one\nline two\""},
		{"empty", `""`, `""`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := scanString(t, tc.src)
			require.NoError(t, err)
			require.Len(t, toks, 1)
			require.Equal(t, token.String, toks[0].Kind)
			require.Equal(t, tc.text, toks[0].Text)
		})
	}
}

func TestScanDoubleBackslashEndsString(t *testing.T) {
	// Only the byte immediately before the quote is inspected, so a
	// doubled backslash still suppresses termination and the string
	// runs on to the next quote.
	toks, err := scanString(t, `"a\\" "b"`)
	require.NoError(t, err)
	require.Equal(t, token.String, toks[0].Kind)
	require.Equal(t, `"a\\" "`, toks[0].Text)
}

func TestScanComments(t *testing.T) {
	toks, err := scanString(t, "// line\n/* block\nstill */")
	require.NoError(t, err)

	want := []token.Kind{token.Comment, token.Newline, token.Comment}
	require.Equal(t, want, kinds(toks))
	require.Equal(t, "// line", toks[0].Text)
	require.Equal(t, "/* block\nstill */", toks[2].Text)
}

func TestScanLineBreaks(t *testing.T) {
	toks, err := scanString(t, "a\nb\r\nc")
	require.NoError(t, err)

	want := []token.Kind{
		token.Other, token.Newline,
		token.Other, token.Newline,
		token.Other,
	}
	require.Equal(t, want, kinds(toks))
	require.Equal(t, "\r\n", toks[3].Text)
}

func TestScanWhitespaceRun(t *testing.T) {
	toks, err := scanString(t, "a \t  b")
	require.NoError(t, err)

	want := []token.Kind{token.Other, token.Space, token.Other}
	require.Equal(t, want, kinds(toks))
	require.Equal(t, " \t  ", toks[1].Text)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := scanString(t, `foo "bar`)
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.LexUnterminatedString, d.Code)
	require.Equal(t, uint32(4), d.Primary.Start)
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, err := scanString(t, "/* never closed")
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.LexUnterminatedComment, d.Code)
}

func TestScanLoneCarriageReturn(t *testing.T) {
	_, err := scanString(t, "foo\rbar")
	require.Error(t, err)

	d, ok := diag.FromError(err)
	require.True(t, ok)
	require.Equal(t, diag.LexUnexpectedChar, d.Code)
}

func TestLexerErrorIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(`"open`))
	lx := lexer.New(fs.Get(id))

	_, err1 := lx.Next()
	require.Error(t, err1)
	_, err2 := lx.Next()
	require.Equal(t, err1, err2)
}

func TestLexerPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte("foo;"))
	lx := lexer.New(fs.Get(id))

	peeked, err := lx.Peek()
	require.NoError(t, err)
	next, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, peeked, next)

	semi, err := lx.Next()
	require.NoError(t, err)
	require.Equal(t, token.Semicolon, semi.Kind)
}

func TestLexerEOFIsRepeatable(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(";"))
	lx := lexer.New(fs.Get(id))

	_, err := lx.Next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		require.NoError(t, err)
		require.Equal(t, token.EOF, tok.Kind)
	}
}

func TestScanLongInput(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("leaf x;\n")
	}
	toks, err := scanString(t, sb.String())
	require.NoError(t, err)
	require.Len(t, toks, 500*5)
}
