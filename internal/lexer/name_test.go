package lexer

import (
	"testing"

	"talpa/internal/diag"
)

func TestNameRejectsLeadingDigit(t *testing.T) {
	c := NewCursor(createFile("1abc"))
	_, err := c.ScanName()
	d, ok := diag.AsDiagnostic(err)
	if !ok || d.Message != "name cannot start with a number" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestScanNameStopsAtDelimiter(t *testing.T) {
	c := NewCursor(createFile("  foo_bar(x)"))
	name, err := c.ScanName()
	if err != nil || name != "foo_bar" {
		t.Fatalf("got %q, %v", name, err)
	}
	if b, _ := c.Peek(); b != '(' {
		t.Fatalf("delimiter consumed, next is %q", b)
	}
}

func TestNumberLiterals(t *testing.T) {
	c := NewCursor(createFile(""))
	cases := []struct {
		in    string
		float bool
		i     int64
		f     float64
		fails bool
	}{
		{in: "42", i: 42},
		{in: "3.5", float: true, f: 3.5},
		{in: "1.2.3", fails: true},
	}
	for _, tc := range cases {
		nb := NewNameBuilder()
		for i := 0; i < len(tc.in); i++ {
			nb.Push(tc.in[i])
		}
		if !nb.IsNumber() {
			t.Fatalf("%q should pass the number pre-filter", tc.in)
		}
		n, err := nb.Number(&c)
		if tc.fails {
			if d, ok := diag.AsDiagnostic(err); !ok || d.Code != diag.LexInvalidNumber {
				t.Errorf("%q: expected InvalidNumber, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || n.Float != tc.float || n.Int != tc.i || n.F64 != tc.f {
			t.Errorf("%q: got %+v, %v", tc.in, n, err)
		}
	}
}

func TestBoolLiteral(t *testing.T) {
	nb := NewNameBuilder()
	for _, b := range []byte("true") {
		nb.Push(b)
	}
	if v, ok := nb.Bool(); !ok || !v {
		t.Fatalf("expected true literal")
	}
	nb.Push('x')
	if _, ok := nb.Bool(); ok {
		t.Fatalf("truex is not a literal")
	}
}

func TestScanString(t *testing.T) {
	c := NewCursor(createFile(`a\"b // c"rest`))
	s, err := c.ScanString()
	if err != nil || s != `a"b // c` {
		t.Fatalf("got %q, %v", s, err)
	}
	c = NewCursor(createFile(`never closed`))
	if _, err := c.ScanString(); err == nil {
		t.Fatalf("expected UnexpectedEOF")
	}
}
