package diag

import (
	"errors"
	"fmt"
	"testing"

	"talpa/internal/source"
)

func TestCodeIDPrefixes(t *testing.T) {
	cases := map[Code]string{
		LexUnexpectedEOF:      "LEX1001",
		SynUnexpectedResult:   "SYN2001",
		SemaNameAlreadyExists: "SEM3105",
		IOLoadFileError:       "IO4001",
		UnknownCode:           "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("%d: got %s, want %s", code, got, want)
		}
	}
}

func TestDefaultSeverity(t *testing.T) {
	if SemaUnreachableCode.DefaultSeverity() != SevWarning {
		t.Fatalf("unreachable code must be a warning")
	}
	if SemaInmutable.DefaultSeverity() != SevError {
		t.Fatalf("immutable assignment must be an error")
	}
}

func TestAsDiagnostic(t *testing.T) {
	err := fmt.Errorf("parse: %w", NewError(LexUnexpectedEOF, source.Location{Off: 3, Line: 1}, ""))
	d, ok := AsDiagnostic(err)
	if !ok {
		t.Fatalf("expected diagnostic inside wrapped error")
	}
	if d.Code != LexUnexpectedEOF || d.Message != "Unexpected EOF" || d.Severity != SevError {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if _, ok := AsDiagnostic(errors.New("plain")); ok {
		t.Fatalf("plain error must not convert")
	}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.tp", []byte("fn main() {\n\tbreak\n}\n"))
	diags := []Diagnostic{
		New(SevError, SemaBreakNotAllowed, source.Location{File: id, Off: 13, Line: 2}, ""),
	}
	got := FormatShortDiagnostics(diags, fs, false)
	want := "error SEM3102 main.tp:2:3 Break not allowed here\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
