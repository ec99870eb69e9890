package parser

import (
	"testing"

	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/source"
)

func parseSource(src string, opts Options) (*ast.Program, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("src/main.tp", []byte(src))
	return ParseFile(fs.Get(id), opts)
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parseSource(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", src, err)
	}
	return prog
}

func mustFail(t *testing.T, src string) diag.Diagnostic {
	t.Helper()
	_, err := parseSource(src, Options{})
	if err == nil {
		t.Fatalf("expected failure for %q", src)
	}
	d, ok := diag.AsDiagnostic(err)
	if !ok {
		t.Fatalf("expected *diag.Error, got %T: %v", err, err)
	}
	return d
}

func onlyBody(t *testing.T, prog *ast.Program) ast.Block {
	t.Helper()
	if len(prog.Functions) != 1 {
		t.Fatalf("expected one function, got %d", len(prog.Functions))
	}
	return prog.Functions[0].Body
}
