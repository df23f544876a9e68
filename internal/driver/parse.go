package driver

import (
	"yangfmt/internal/ast"
	"yangfmt/internal/parser"
	"yangfmt/internal/source"
)

// ParseResult holds a parsed file and the set it was loaded into.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Root
}

// ParseFile loads and parses a single file into a syntax tree.
func ParseFile(path string) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	result := &ParseResult{FileSet: fs, File: file}
	tree, err := parser.Parse(file)
	if err != nil {
		return result, err
	}
	result.Tree = tree
	return result, nil
}
