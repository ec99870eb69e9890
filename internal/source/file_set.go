package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files.
// It is safe for concurrent use.
type FileSet struct {
	mu      sync.RWMutex
	files   []File
	index   map[string]FileID // path -> id
	baseDir string            // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase создаёт FileSet с заданной базовой директорией.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir возвращает текущую базовую директорию.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Add stores a file, strips every '\r' byte and returns a new FileID.
// It always creates a new FileID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	content, stripped := stripCR(content)
	if stripped {
		flags |= FileStrippedCR
	}
	normalizedPath := normalizePath(path)

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	// Всегда обновляем индекс на последнюю версию файла
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, removes a BOM and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.AddBytes(path, content), nil
}

// AddBytes adds content that was read from storage by the caller.
func (fileSet *FileSet) AddBytes(path string, content []byte) FileID {
	content, hadBOM := removeBOM(content)
	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	return fileSet.Add(path, content, flags)
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file metadata for the given ID.
// Get returns nil for unknown IDs.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	f := fileSet.files[id]
	return &f
}

// Len returns the number of files ever added.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Context reconstructs the diagnostic line context for loc.
func (fileSet *FileSet) Context(loc Location) LineContext {
	f := fileSet.Get(loc.File)
	if f == nil {
		return LineContext{Line: loc.Line}
	}
	return f.Context(loc)
}

// Context re-scans one line backward and one line forward from loc.Off and
// returns the surrounding text. A zero loc.Line is recomputed from the content.
func (f *File) Context(loc Location) LineContext {
	content := f.Content
	off := min(int(loc.Off), len(content))

	lineStart := off
	for lineStart > 0 && content[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := off
	for lineEnd < len(content) && content[lineEnd] != '\n' {
		lineEnd++
	}

	ctx := LineContext{
		Line: loc.Line,
		Text: string(content[lineStart:lineEnd]),
	}
	if ctx.Line == 0 {
		ctx.Line = countLines(content[:off])
	}
	for _, b := range content[lineStart:off] {
		if b == '\t' {
			ctx.Column += 2
		} else {
			ctx.Column++
		}
	}

	if lineStart > 0 {
		prevEnd := lineStart - 1
		prevStart := prevEnd
		for prevStart > 0 && content[prevStart-1] != '\n' {
			prevStart--
		}
		ctx.Prev = string(content[prevStart:prevEnd])
		ctx.HasPrev = true
	}
	if lineEnd < len(content) {
		nextStart := lineEnd + 1
		nextEnd := nextStart
		for nextEnd < len(content) && content[nextEnd] != '\n' {
			nextEnd++
		}
		ctx.Next = string(content[nextStart:nextEnd])
		ctx.HasNext = true
	}
	return ctx
}

// FormatPath форматирует путь к файлу в зависимости от режима.
// mode: "absolute", "relative", "basename", "auto"
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
