package lexer

import (
	"testing"

	"talpa/internal/diag"
	"talpa/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tp", []byte(content))
	return fs.Get(id)
}

func readAll(c *Cursor) string {
	var out []byte
	for {
		b, ok := c.Next()
		if !ok {
			return string(out)
		}
		out = append(out, b)
	}
}

func TestSequentialReading(t *testing.T) {
	c := NewCursor(createFile("a\nb"))
	if got := readAll(&c); got != "a\nb" {
		t.Fatalf("got %q", got)
	}
	if c.Line != 2 {
		t.Fatalf("expected line 2, got %d", c.Line)
	}
	if _, ok := c.Next(); ok {
		t.Fatalf("expected end of input")
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"a//comment\nb", "ab"},
		{"a/* x\ny */b", "ab"},
		{"a/b", "a/b"},
		{"a/", "a/"},
		{"//", ""},
		{"/*", ""},
		{"a/* never closed", "a"},
		{"a// no newline", "a"},
		{"/**/x", "x"},
	}
	for _, tc := range cases {
		c := NewCursor(createFile(tc.in))
		if got := readAll(&c); got != tc.want {
			t.Errorf("%q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCommentKeepsLineCount(t *testing.T) {
	c := NewCursor(createFile("/* a\nb\n*/x"))
	b, ok := c.Next()
	if !ok || b != 'x' {
		t.Fatalf("expected x, got %q", b)
	}
	if loc := c.LastLoc(); loc.Line != 3 || loc.Off != 9 {
		t.Fatalf("unexpected location %+v", loc)
	}
}

func TestMarkResetRestoresLine(t *testing.T) {
	c := NewCursor(createFile("a\n\nb"))
	c.Next()
	m := c.Mark()
	readAll(&c)
	if c.Line != 3 {
		t.Fatalf("expected line 3, got %d", c.Line)
	}
	c.Reset(m)
	if c.Off != 1 || c.Line != 1 {
		t.Fatalf("reset gave off=%d line=%d", c.Off, c.Line)
	}
}

func TestSkipWhileAndSkipSpace(t *testing.T) {
	c := NewCursor(createFile("  \n\tx y"))
	b, ok := c.SkipWhile(Whitespace)
	if !ok || b != 'x' {
		t.Fatalf("SkipWhile got %q", b)
	}
	c.SkipSpace()
	if b, _ := c.Peek(); b != 'y' {
		t.Fatalf("SkipSpace left %q", b)
	}
	c.Next()
	if _, err := c.MustSkipWhile(Whitespace); err == nil {
		t.Fatalf("expected UnexpectedEOF")
	} else if d, ok := diag.AsDiagnostic(err); !ok || d.Code != diag.LexUnexpectedEOF {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestExpect(t *testing.T) {
	c := NewCursor(createFile("in\tx"))
	if err := c.Expect("in"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	c = NewCursor(createFile("i\n"))
	err := c.Expect("in")
	d, ok := diag.AsDiagnostic(err)
	if !ok || d.Code != diag.LexUnexpectedChar || d.Message != `Unexpected char: \n` {
		t.Fatalf("unexpected error %v", err)
	}
}
