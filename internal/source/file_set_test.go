package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	// Добавляем файл первый раз
	id1 := fs.Add("test.tp", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.tp")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// Добавляем тот же файл с новым содержимым
	id2 := fs.Add("test.tp", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}
	latestID, _ = fs.GetLatest("test.tp")
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	if string(fs.Get(id1).Content) != "hello world" {
		t.Errorf("first version was overwritten: %q", fs.Get(id1).Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddStripsCarriageReturns(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.tp", []byte("fn a() {}\r\nfn b() {\r}\r\n"))
	file := fs.Get(id)

	if got, want := string(file.Content), "fn a() {}\nfn b() {}\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if file.Flags&FileStrippedCR == 0 {
		t.Error("Expected FileStrippedCR flag to be set")
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestLoadRemovesBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tp")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFfn main() {}"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "fn main() {}" {
		t.Fatalf("content = %q", file.Content)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.tp")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileContext(t *testing.T) {
	src := "fn test() {\n\tbreak\n}\n"
	fs := NewFileSet()
	id := fs.AddVirtual("main.tp", []byte(src))

	// offset of 'b' in "\tbreak"
	ctx := fs.Context(Location{File: id, Off: 13, Line: 2})

	if ctx.Line != 2 {
		t.Errorf("Line = %d, want 2", ctx.Line)
	}
	if ctx.Column != 2 {
		t.Errorf("Column = %d, want 2 (tab counts as two)", ctx.Column)
	}
	if ctx.Text != "\tbreak" {
		t.Errorf("Text = %q", ctx.Text)
	}
	if !ctx.HasPrev || ctx.Prev != "fn test() {" {
		t.Errorf("Prev = %q (has=%v)", ctx.Prev, ctx.HasPrev)
	}
	if !ctx.HasNext || ctx.Next != "}" {
		t.Errorf("Next = %q (has=%v)", ctx.Next, ctx.HasNext)
	}
}

func TestFileContextFirstAndLastLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.tp", []byte("enum Foo {}"))

	ctx := fs.Context(Location{File: id, Off: 5})
	if ctx.Line != 1 {
		t.Errorf("recomputed Line = %d, want 1", ctx.Line)
	}
	if ctx.Column != 5 {
		t.Errorf("Column = %d, want 5", ctx.Column)
	}
	if ctx.HasPrev || ctx.HasNext {
		t.Errorf("single line file must not have neighbours: %+v", ctx)
	}

	// offsets past the end are clamped
	ctx = fs.Context(Location{File: id, Off: 1000, Line: 1})
	if ctx.Text != "enum Foo {}" || ctx.Column != 11 {
		t.Errorf("clamped context = %+v", ctx)
	}
}

func TestLocationBefore(t *testing.T) {
	a := Location{File: 0, Off: 10, Line: 2}
	b := Location{File: 0, Off: 4, Line: 1}
	c := Location{File: 1, Off: 0, Line: 1}
	if !b.Before(a) || a.Before(b) {
		t.Errorf("offset order broken: %v vs %v", a, b)
	}
	if !a.Before(c) || c.Before(a) {
		t.Errorf("file order must win over offsets: %v vs %v", a, c)
	}
	if a.Before(a) {
		t.Errorf("location precedes itself")
	}
}
