package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is the decoded talpa.toml.
type Manifest struct {
	Path string `toml:"-"`
	Root string `toml:"-"`

	Package     PackageSection     `toml:"package"`
	Build       BuildSection       `toml:"build"`
	Diagnostics DiagnosticsSection `toml:"diagnostics"`
}

type PackageSection struct {
	Name string `toml:"name"`
}

type BuildSection struct {
	Main string `toml:"main"`
}

type DiagnosticsSection struct {
	WarningsAsErrors bool `toml:"warnings_as_errors"`
	Max              int  `toml:"max"`
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in the manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is empty.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// DefaultMain is the entry file used when [build].main is not set.
const DefaultMain = "main.tp"

// LoadManifest parses talpa.toml at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	m.Package.Name = strings.TrimSpace(m.Package.Name)
	if !meta.IsDefined("package", "name") || m.Package.Name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if !meta.IsDefined("build", "main") || strings.TrimSpace(m.Build.Main) == "" {
		m.Build.Main = DefaultMain
	}
	if m.Diagnostics.Max < 0 {
		return nil, fmt.Errorf("%s: [diagnostics].max must not be negative", path)
	}
	m.Path = path
	m.Root = filepath.Dir(path)
	return &m, nil
}

// MainPath returns the entry file joined against the project root.
func (m *Manifest) MainPath() string {
	if filepath.IsAbs(m.Build.Main) {
		return m.Build.Main
	}
	return filepath.Join(m.Root, filepath.FromSlash(m.Build.Main))
}

// WriteManifest creates talpa.toml in dir. It refuses to overwrite an
// existing manifest.
func WriteManifest(dir string, m *Manifest) (string, error) {
	path := filepath.Join(dir, ManifestName)
	// #nosec G304 -- path is built from the user supplied project directory
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(m); err != nil {
		return "", fmt.Errorf("%s: failed to write TOML: %w", path, err)
	}
	return path, nil
}
