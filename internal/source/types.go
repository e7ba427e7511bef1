package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, REPL input).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single Io source file.
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

// NumLines returns the number of lines in the file. A trailing newline does
// not open a new line.
func (f *File) NumLines() int {
	if len(f.Content) == 0 {
		return 0
	}
	n := len(f.LineIdx) + 1
	if f.Content[len(f.Content)-1] == '\n' {
		n--
	}
	return n
}

// Line returns the text of the 1-based line without its terminator.
// Out-of-range line numbers yield "".
func (f *File) Line(lineNum int) string {
	if lineNum < 1 {
		return ""
	}
	lenContent := uint32(len(f.Content))

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < len(f.LineIdx):
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if lineNum-1 < len(f.LineIdx) {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}

// Lines returns every line of the file without terminators.
func (f *File) Lines() []string {
	n := f.NumLines()
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, f.Line(i))
	}
	return out
}
