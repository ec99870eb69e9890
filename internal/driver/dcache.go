package driver

import (
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"talpa/internal/diag"
	"talpa/internal/project"
	"talpa/internal/source"
	"talpa/internal/version"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки файлов по хешу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedNote is a diag.Note without its FileID.
type CachedNote struct {
	Off  uint32
	Line uint32
	Msg  string
}

// CachedDiagnostic is a diag.Diagnostic without its FileID; locations are
// re-attached to the file that hit the cache.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Off      uint32
	Line     uint32
	Notes    []CachedNote
}

// DiskPayload is everything `check` needs from a file without re-parsing it.
type DiskPayload struct {
	Schema      uint16
	Path        string
	ContentHash project.Digest
	Imports     []string // resolved, in scheduling order
	Items       int      // analyzed top level items
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/<app> (or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	// подкаталог "files", чтобы DropAll не трогал ничего лишнего
	return filepath.Join(c.dir, "files", key.Hex()+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после успешного Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A missing entry or a payload of another schema is a
// miss, not an error.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey: H(content || H(version || path)). Путь входит в ключ, потому что
// от него зависят разрешённые импорты.
func cacheKey(f *source.File) project.Digest {
	salt := sha256.Sum256([]byte(version.Version + "\x00" + f.Path))
	return project.Combine(project.Digest(f.Hash), project.Digest(salt))
}

func payloadFromResult(r *FileResult, content project.Digest) *DiskPayload {
	p := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        r.Path,
		ContentHash: content,
		Imports:     append([]string(nil), r.Imports...),
		Items:       r.Program.Len(),
	}
	for _, d := range r.Bag.Items() {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Off:      d.Primary.Off,
			Line:     d.Primary.Line,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Off: n.Loc.Off, Line: n.Loc.Line, Msg: n.Msg})
		}
		p.Diagnostics = append(p.Diagnostics, cd)
	}
	return p
}

func (p *DiskPayload) restore(file source.FileID, bag *diag.Bag) {
	for _, cd := range p.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Location{File: file, Off: cd.Off, Line: cd.Line}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Location{File: file, Off: n.Off, Line: n.Line}, n.Msg)
		}
		bag.Add(d)
	}
}
