package source

import "slices"

// FileID indexes a file inside its FileSet.
type FileID uint32

// FileFlags records how a file entered the set and what loading changed.
type FileFlags uint8

const (
	// FileVirtual: содержимое пришло из памяти (stdin, тесты).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is one translation input after normalisation.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the offset of every '\n' in Content.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

// LineCount is the number of lines, counting a trailing partial one.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// Line returns the text of line n (1-based) without its newline, or ""
// when n is out of range.
func (f *File) Line(n int) string {
	if n < 1 || n > f.LineCount() {
		return ""
	}
	start := 0
	if n > 1 {
		start = int(f.LineIdx[n-2]) + 1
	}
	end := len(f.Content)
	if n <= len(f.LineIdx) {
		end = int(f.LineIdx[n-1])
	}
	return string(f.Content[start:end])
}

// Position converts a byte offset into a line and column.
func (f *File) Position(off uint32) LineCol {
	// число переводов строки строго до off и есть номер строки
	line, _ := slices.BinarySearch(f.LineIdx, off)
	var lineStart uint32
	if line > 0 {
		lineStart = f.LineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1}
}
