package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM indicates a UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF indicates CRLF line endings were normalized on load.
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Pos resolves a byte offset within the file to a line/column pair.
func (f *File) Pos(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// LineText returns the text of the given 1-based line without its trailing
// newline. Out-of-range lines yield an empty string.
func (f *File) LineText(line uint32) string {
	if line == 0 {
		return ""
	}
	var start uint32
	if line > 1 {
		if int(line-2) >= len(f.LineIdx) {
			return ""
		}
		start = f.LineIdx[line-2] + 1
	}
	end := uint32(len(f.Content))
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}
