package parser

import (
	"testing"

	"talpa/internal/ast"
	"talpa/internal/diag"
)

func TestEmptyInputs(t *testing.T) {
	for _, src := range []string{"", "   \n\t", "//", "/*", "// just a comment", "/* a */ /* b */"} {
		prog := mustParse(t, src)
		if len(prog.Functions)+len(prog.Structs)+len(prog.Enums)+len(prog.Vars) != 0 {
			t.Errorf("%q: expected empty program", src)
		}
	}
}

func TestCommentTransparency(t *testing.T) {
	plain := "fn main(a int) {\n\tlet x = a\n\tx = 2\n}\n"
	commented := "/* head */fn main(a int) { // trailing\n\tlet x = a/* inline */\n\t// whole line\n\tx = 2\n}\n//"
	p1 := mustParse(t, plain)
	p2 := mustParse(t, commented)
	b1, b2 := onlyBody(t, p1), onlyBody(t, p2)
	if len(b1) != len(b2) {
		t.Fatalf("bodies differ: %d vs %d actions", len(b1), len(b2))
	}
	for i := range b1 {
		if b1[i].Kind() != b2[i].Kind() {
			t.Fatalf("action %d: %v vs %v", i, b1[i].Kind(), b2[i].Kind())
		}
	}
}

func TestParseFunction(t *testing.T) {
	prog := mustParse(t, "fn add(a int, b []u8) string {\n}\n")
	fn := prog.Functions[0]
	if fn.Name != "add" || len(fn.Args) != 2 {
		t.Fatalf("unexpected function %+v", fn)
	}
	if fn.Args[0].Name != "a" || fn.Args[0].Type.Kind != ast.TypeInt {
		t.Fatalf("unexpected first arg %+v", fn.Args[0])
	}
	if fn.Args[1].Type.Kind != ast.TypeArray || fn.Args[1].Type.Elem.Kind != ast.TypeU8 {
		t.Fatalf("unexpected second arg type %s", fn.Args[1].Type)
	}
	if fn.Result == nil || fn.Result.Kind != ast.TypeString {
		t.Fatalf("expected string result, got %s", fn.Result)
	}
}

func TestParseFunctionErrors(t *testing.T) {
	if d := mustFail(t, "fn () {}"); d.Code != diag.SynMissingName {
		t.Errorf("anonymous top level fn: got %s", d.Code.Name())
	}
	if d := mustFail(t, "fn f(a) {}"); d.Code != diag.SynIncompleteArgument {
		t.Errorf("argument without type: got %s", d.Code.Name())
	}
	if d := mustFail(t, "fn f() {"); d.Code != diag.LexUnexpectedEOF {
		t.Errorf("unterminated body: got %s", d.Code.Name())
	}
}

func TestTypeKeywordPrefixIsName(t *testing.T) {
	prog := mustParse(t, "fn f(a intx, b structure, c string) {}")
	args := prog.Functions[0].Args
	if args[0].Type.Kind != ast.TypeRef || args[0].Type.Name != "intx" {
		t.Fatalf("intx: got %s", args[0].Type)
	}
	if args[1].Type.Kind != ast.TypeRef || args[1].Type.Name != "structure" {
		t.Fatalf("structure: got %s", args[1].Type)
	}
	if args[2].Type.Kind != ast.TypeString {
		t.Fatalf("string: got %s", args[2].Type)
	}
}

func TestParseStructAndInlineTypes(t *testing.T) {
	prog := mustParse(t, "struct Foo {\n\tbar int\n\tbaz struct {\n\t\tinner []string\n\t}\n\tqux enum { a, b }\n}\n")
	st := prog.Structs[0]
	if st.Name != "Foo" || len(st.Fields) != 3 {
		t.Fatalf("unexpected struct %+v", st)
	}
	if st.Fields[1].Type.Kind != ast.TypeStruct || st.Fields[1].Type.Struct.Name != "" {
		t.Fatalf("expected anonymous inline struct, got %s", st.Fields[1].Type)
	}
	if en := st.Fields[2].Type.Enum; en == nil || len(en.Fields) != 2 {
		t.Fatalf("expected inline enum with two fields, got %s", st.Fields[2].Type)
	}
}

func TestStructNaming(t *testing.T) {
	if d := mustFail(t, "struct {}"); d.Code != diag.SynMissingName {
		t.Errorf("named struct without name: got %s", d.Code.Name())
	}
	if d := mustFail(t, "struct Foo { a struct Bar {} }"); d.Code != diag.SynNamingNotAllowed {
		t.Errorf("inline struct with name: got %s", d.Code.Name())
	}
}

func TestParseEnum(t *testing.T) {
	prog := mustParse(t, "enum Color {\n\tred = 1\n\tgreen\n\tblue = \"b\"\n}\nenum Empty {}")
	en := prog.Enums[0]
	if len(en.Fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(en.Fields))
	}
	if n, ok := en.Fields[0].Value.(*ast.NumberLit); !ok || n.Int != 1 {
		t.Fatalf("red value: %#v", en.Fields[0].Value)
	}
	if en.Fields[1].Value != nil {
		t.Fatalf("green has no value")
	}
	if s, ok := en.Fields[2].Value.(*ast.StringLit); !ok || s.Value != "b" {
		t.Fatalf("blue value: %#v", en.Fields[2].Value)
	}
	if len(prog.Enums[1].Fields) != 0 {
		t.Fatalf("expected empty enum")
	}
}

func TestParseTypeAliasAndConst(t *testing.T) {
	prog := mustParse(t, "type Bytes = []u8\nconst limit: int = 10\n")
	if len(prog.Types) != 1 || prog.Types[0].Name != "Bytes" || prog.Types[0].Type.Kind != ast.TypeArray {
		t.Fatalf("unexpected alias %+v", prog.Types)
	}
	v := prog.Vars[0]
	if v.Decl != ast.VarConst || v.Name != "limit" || v.Type.Kind != ast.TypeInt {
		t.Fatalf("unexpected const %+v", v)
	}
}

func TestTopLevelLetIsRejected(t *testing.T) {
	if d := mustFail(t, "let x = 1"); d.Code != diag.SynUnexpectedTopLevel {
		t.Fatalf("got %s", d.Code.Name())
	}
	if d := mustFail(t, "\n  @"); d.Code != diag.LexUnexpectedChar || d.Primary.Line != 2 || d.Primary.Off != 3 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestParseImports(t *testing.T) {
	var seen []string
	prog, err := parseSource("import Util \"util\"\n\tIo \"../io/io.tp\"\nfn main() {}", Options{
		OnImport: func(imp *ast.Import) { seen = append(seen, imp.Resolved) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Imports) != 2 || len(prog.Functions) != 1 {
		t.Fatalf("expected 2 imports and a function, got %d/%d", len(prog.Imports), len(prog.Functions))
	}
	want := []string{"src/util.tp", "io/io.tp"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("import %d resolved to %q, want %q", i, seen[i], want[i])
		}
	}
	if d := mustFail(t, "import fn main() {}"); d.Code != diag.SynExpectImportPath {
		t.Fatalf("got %s", d.Code.Name())
	}
}
