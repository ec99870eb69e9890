package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileStrippedCR
)

// File captures metadata and content for a single source file.
// Content is immutable once the file is added to a FileSet.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags
}

// LineContext is the diagnostic view of one source line together with its
// neighbours. It is materialised lazily, only when a diagnostic is rendered.
type LineContext struct {
	Line    uint32 // 1-based
	Column  uint32 // 0-based, a tab counts as two columns
	Text    string
	Prev    string
	Next    string
	HasPrev bool
	HasNext bool
}
