package driver

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
)

// Host reads source files. The compiler core never touches storage itself.
type Host interface {
	Open(path string) ([]byte, error)
}

// OSHost reads from the local file system.
type OSHost struct{}

func (OSHost) Open(p string) ([]byte, error) {
	// #nosec G304 -- path comes from the user or an import
	return os.ReadFile(p)
}

// MemHost serves files from memory.
type MemHost struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemHost(files map[string]string) *MemHost {
	h := &MemHost{files: make(map[string][]byte, len(files))}
	for p, content := range files {
		h.Put(p, content)
	}
	return h
}

func (h *MemHost) Put(p, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[normalizePath(p)] = []byte(content)
}

func (h *MemHost) Open(p string) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	data, ok := h.files[normalizePath(p)]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", p, fs.ErrNotExist)
	}
	return data, nil
}

// normalizePath is the dedup key for the import queue.
func normalizePath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return p
	}
	return path.Clean(p)
}
