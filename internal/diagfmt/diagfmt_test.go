package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"yangfmt/internal/diag"
	"yangfmt/internal/diagfmt"
	"yangfmt/internal/lexer"
	"yangfmt/internal/parser"
	"yangfmt/internal/source"
)

func TestPrettyDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.yang", []byte("module m {\n  bad \"oops\n}\n"))
	file := fs.Get(id)

	d := diag.New(diag.LexUnterminatedString,
		source.Span{File: id, Start: 17, End: 18},
		"unterminated string")

	var buf bytes.Buffer
	diagfmt.PrettyDiagnostic(&buf, d, file, diagfmt.PrettyOpts{})

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "m.yang:2:7: ERROR LEX1002: unterminated string", lines[0])
	require.Equal(t, "    bad \"oops", lines[1])
	require.Equal(t, "        ^", lines[2])
}

func TestPrettyDiagnosticTabsInSourceLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.yang", []byte("\tbad \"oops\n"))
	file := fs.Get(id)

	d := diag.New(diag.LexUnterminatedString,
		source.Span{File: id, Start: 5, End: 6}, "unterminated string")

	var buf bytes.Buffer
	diagfmt.PrettyDiagnostic(&buf, d, file, diagfmt.PrettyOpts{})

	lines := strings.Split(buf.String(), "\n")
	require.Equal(t, "  \tbad \"oops", lines[1])
	require.Equal(t, "  \t    ^", lines[2])
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.yang", []byte("leaf x;"))
	tokens, err := lexer.Scan(fs.Get(id))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensPretty(&buf, tokens, fs))

	out := buf.String()
	require.Contains(t, out, `"leaf"`)
	require.Contains(t, out, "Semicolon")
	require.Contains(t, out, "at 1:1-1:5")
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("m.yang", []byte("x;"))
	tokens, err := lexer.Scan(fs.Get(id))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTokensJSON(&buf, tokens))

	var decoded []diagfmt.TokenOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	require.Equal(t, "Other", decoded[0].Kind)
	require.Equal(t, "x", decoded[0].Text)
	require.Equal(t, "EOF", decoded[2].Kind)
}

func TestFormatTreePretty(t *testing.T) {
	tree, err := parser.ParseBytes([]byte(`module m { // post
  description 'd' /* v */;

  ext:stmt "a" + "b";
}
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, diagfmt.FormatTreePretty(&buf, tree))

	want := `(root
  (Keyword "module" Other <post-comment>
    (Keyword "description" String <comment>
    [EmptyLine]
    (ExtensionKeyword "ext:stmt" StringConcatenation)))
`
	require.Equal(t, want, buf.String())
}
