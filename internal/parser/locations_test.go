package parser

import (
	"testing"

	"talpa/internal/source"
	"talpa/internal/testkit"
)

const itemsSource = "// header\nstruct Foo {\n\tbar int\n\tbaz struct {\n\t\tinner []string\n\t}\n\tqux enum { a, b }\n}\n" +
	"enum Color {\n\tred = 1\n\tgreen\n\tblue = \"b\"\n}\n" +
	"type Bytes = []u8\nconst limit: int = 10\n"

const actionsSource = "fn main(a int, b []u8) string {\n\tlet x: string = \"x\"\n\t/* block\n comment */ x = foo(a, \"y\", bar(1))\n" +
	"\tfor item in items {\n\t\tcontinue\n\t}\n\twhile running {}\n\tloop {\n\t\tbreak\n\t}\n" +
	"\tif a {\n\t} else if b {\n\t} else {\n\t}\n\treturn x\n}\nfn second() {}\n"

func TestLocationInvariants(t *testing.T) {
	sources := map[string]string{
		"empty":   "",
		"imports": "import Util \"util\"\n\tIo \"../io/io.tp\"\nfn main() {}",
		"items":   itemsSource,
		"actions": actionsSource,
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			fs := source.NewFileSet()
			f := fs.Get(fs.AddVirtual("src/main.tp", []byte(src)))
			prog, err := ParseFile(f, Options{})
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if err := testkit.CheckLocationInvariants(prog, f); err != nil {
				t.Fatal(err)
			}
		})
	}
}
