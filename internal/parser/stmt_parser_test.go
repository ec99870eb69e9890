package parser

import (
	"testing"

	"talpa/internal/ast"
	"talpa/internal/diag"
)

func TestParseActions(t *testing.T) {
	body := onlyBody(t, mustParse(t, `fn main() {
	let a: string = "x"
	const b = 1.5
	a = foo(b, "y", bar(1))
	print(true)
	return a
}`))
	kinds := []ast.ActionKind{ast.ActVariable, ast.ActVariable, ast.ActAssignment, ast.ActCall, ast.ActReturn}
	if len(body) != len(kinds) {
		t.Fatalf("expected %d actions, got %d", len(kinds), len(body))
	}
	for i, k := range kinds {
		if body[i].Kind() != k {
			t.Fatalf("action %d: got %v, want %v", i, body[i].Kind(), k)
		}
	}

	if v := body[1].(*ast.Variable); v.Decl != ast.VarConst || !v.Value.(*ast.NumberLit).Float {
		t.Fatalf("const b: %+v", v)
	}
	call := body[2].(*ast.Assignment).Value.(*ast.Call)
	if call.Name != "foo" || len(call.Args) != 3 {
		t.Fatalf("unexpected call %+v", call)
	}
	if inner, ok := call.Args[2].(*ast.Call); !ok || inner.Name != "bar" {
		t.Fatalf("nested call lost: %#v", call.Args[2])
	}
	if b := body[3].(*ast.Call).Args[0].(*ast.BoolLit); !b.Value {
		t.Fatalf("expected true literal")
	}
	if ref, ok := body[4].(*ast.Return).Value.(*ast.VarRef); !ok || ref.Name != "a" {
		t.Fatalf("return value: %#v", body[4].(*ast.Return).Value)
	}
}

func TestBareReturnAndBreak(t *testing.T) {
	body := onlyBody(t, mustParse(t, "fn test() { loop { break\n test() }\n return }"))
	loop := body[0].(*ast.Loop)
	if len(loop.Body) != 2 || loop.Body[0].Kind() != ast.ActBreak || loop.Body[1].Kind() != ast.ActCall {
		t.Fatalf("unexpected loop body %#v", loop.Body)
	}
	if ret := body[1].(*ast.Return); ret.Value != nil {
		t.Fatalf("expected bare return")
	}
}

func TestParseLoops(t *testing.T) {
	body := onlyBody(t, mustParse(t, "fn f() {\n for item in items {\n continue\n }\n while running {}\n loop{}\n}"))
	fr := body[0].(*ast.For)
	if fr.Var != "item" || fr.Iter.(*ast.VarRef).Name != "items" || len(fr.Body) != 1 {
		t.Fatalf("unexpected for %+v", fr)
	}
	if w := body[1].(*ast.While); w.Cond.(*ast.VarRef).Name != "running" {
		t.Fatalf("unexpected while %+v", w)
	}
	if body[2].Kind() != ast.ActLoop {
		t.Fatalf("expected loop")
	}
	if d := mustFail(t, "fn f() { for x of y {} }"); d.Code != diag.SynForMissingIn {
		t.Fatalf("got %s", d.Code.Name())
	}
}

func TestParseIfChains(t *testing.T) {
	ok := []struct {
		src      string
		branches int
		hasElse  bool
	}{
		{"fn t() { if true {} }", 1, false},
		{"fn t() {\n if\n true{    }\n }", 1, false},
		{"fn t() { if true {} else {} }", 2, true},
		{"fn t() {\n if\n true{ }\n else\n {\n\n }\n }", 2, true},
		{"fn t() { if true {} else if true {} }", 2, false},
		{"fn t() { if true {} else if true {} else {} }", 3, true},
		{"fn t() {\n if\n true{ }\n else\n if true{\n\n }else{}\n }", 3, true},
	}
	for _, tc := range ok {
		body := onlyBody(t, mustParse(t, tc.src))
		node := body[0].(*ast.If)
		if len(node.Branches) != tc.branches || node.HasElse() != tc.hasElse {
			t.Errorf("%q: got %d branches, else=%v", tc.src, len(node.Branches), node.HasElse())
		}
	}

	bad := []string{
		"fn t() { if {} }",
		"fn t() { if true {} else\n }",
		"fn t() { if true {} else if {} }",
		"fn t() { if true {} else if true {} else\n }",
	}
	for _, src := range bad {
		if d := mustFail(t, src); d.Code != diag.LexUnexpectedChar {
			t.Errorf("%q: expected UnexpectedChar, got %s", src, d.Code.Name())
		}
	}
}

func TestIfBranchKeepsFollowingStatement(t *testing.T) {
	body := onlyBody(t, mustParse(t, "fn t() { if a {}\n elsewhere = 1 }"))
	if len(body) != 2 || body[1].Kind() != ast.ActAssignment {
		t.Fatalf("expected if followed by assignment, got %d actions", len(body))
	}
}

func TestStatementErrors(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"fn f() { fn g() {} }", diag.SynUnexpectedResult},
		{"fn f() { x = }", diag.SynMissingAssignment},
		{"fn f() { x = 1.2.3 }", diag.LexInvalidNumber},
		{"fn f() { 1abc }", diag.LexInvalidName},
		{"fn f() { a; }", diag.LexUnexpectedChar},
		{"fn f() { s = \"open }", diag.LexUnexpectedEOF},
	}
	for _, tc := range cases {
		if d := mustFail(t, tc.src); d.Code != tc.code {
			t.Errorf("%q: got %s, want %s", tc.src, d.Code.Name(), tc.code.Name())
		}
	}
}
