package driver

import (
	"yangfmt/internal/lexer"
	"yangfmt/internal/source"
	"yangfmt/internal/token"
)

// TokenizeResult holds everything the token dump needs.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize scans a file into its full token list. Tokens scanned before a
// lexer error are returned alongside the error, so the dump can show how
// far the scan got.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	tokens, err := lexer.Scan(file)
	result := &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
	}
	if err != nil {
		return result, err
	}
	return result, nil
}
