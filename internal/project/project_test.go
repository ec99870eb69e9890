package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveImport(t *testing.T) {
	cases := []struct {
		from, rel, want string
	}{
		{"src/main.tp", "util", "src/util.tp"},
		{"src/main.tp", "./lib/io.tp", "src/lib/io.tp"},
		{"src/main.tp", "../shared/a", "shared/a.tp"},
		{"main.tp", "../up", "../up.tp"},
		{"/main.tp", "../../x", "/x.tp"},
		{"/a/b/main.tp", "../c/../d", "/a/d.tp"},
		{"a/main.tp", "/abs/x.tp", "/abs/x.tp"},
	}
	for _, tc := range cases {
		if got := ResolveImport(tc.from, tc.rel); got != tc.want {
			t.Errorf("ResolveImport(%q, %q) = %q, want %q", tc.from, tc.rel, got, tc.want)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	content := "[package]\nname = \"hello\"\n\n[diagnostics]\nwarnings_as_errors = true\nmax = 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Package.Name != "hello" || m.Build.Main != DefaultMain {
		t.Fatalf("unexpected manifest %+v", m)
	}
	if !m.Diagnostics.WarningsAsErrors || m.Diagnostics.Max != 10 {
		t.Fatalf("diagnostics section lost: %+v", m.Diagnostics)
	}
	if m.MainPath() != filepath.Join(dir, "main.tp") {
		t.Fatalf("unexpected main path %q", m.MainPath())
	}
}

func TestLoadManifestWithoutPackage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte("[build]\nmain = \"x.tp\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Fatalf("expected ErrPackageSectionMissing, got %v", err)
	}
}

func TestWriteAndFindManifest(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{Package: PackageSection{Name: "demo"}, Build: BuildSection{Main: DefaultMain}}
	if _, err := WriteManifest(dir, m); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := WriteManifest(dir, m); err == nil {
		t.Fatalf("second write must not overwrite")
	}
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	root, ok, err := FindProjectRoot(nested)
	if err != nil || !ok {
		t.Fatalf("manifest not found: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if root != want {
		t.Fatalf("root = %q, want %q", root, want)
	}
	loaded, err := LoadManifest(filepath.Join(root, ManifestName))
	if err != nil || loaded.Package.Name != "demo" {
		t.Fatalf("round trip failed: %+v, %v", loaded, err)
	}
}
