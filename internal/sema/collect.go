package sema

import (
	"fmt"

	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/source"
	"talpa/internal/token"
)

// usedNames is shared by every category: a struct and a function cannot
// share a name.
type usedNames map[string]struct{}

type named interface {
	comparable
	Loc() source.Location
}

type category[T named] struct {
	what string
	name func(T) string
	want casing
}

// collect drains the raw lists into keyed maps. Order matters: an earlier
// category wins a name clash with a later one.
func (c *checker) collect() *Program {
	out := newProgram(c.raw)
	used := make(usedNames)

	dedup(c, used, c.raw.Imports, out.Imports, category[*ast.Import]{
		what: "import", want: pascalCase,
		name: func(i *ast.Import) string { return i.Name },
	})
	dedup(c, used, c.raw.Functions, out.Functions, category[*ast.Function]{
		what: "function", want: snakeCase,
		name: func(f *ast.Function) string { return f.Name },
	})
	dedup(c, used, c.raw.Vars, out.Vars, category[*ast.Variable]{
		what: "variable", want: snakeCase,
		name: func(v *ast.Variable) string { return v.Name },
	})
	dedup(c, used, c.raw.Structs, out.Structs, category[*ast.Struct]{
		what: "struct", want: pascalCase,
		name: func(s *ast.Struct) string { return s.Name },
	})
	dedup(c, used, c.raw.Enums, out.Enums, category[*ast.Enum]{
		what: "enum", want: pascalCase,
		name: func(e *ast.Enum) string { return e.Name },
	})
	dedup(c, used, c.raw.Types, out.Types, category[*ast.TypeAlias]{
		what: "type", want: pascalCase,
		name: func(t *ast.TypeAlias) string { return t.Name },
	})
	return out
}

func dedup[T named](c *checker, used usedNames, items []T, dst map[string]T, cat category[T]) {
	var zero T
	for _, item := range items {
		if item == zero {
			continue
		}
		name := cat.name(item)
		loc := item.Loc()
		switch {
		case name == "":
			c.errorf(diag.SemaNoName, loc, fmt.Sprintf("Missing %s name", cat.what))
			continue
		case hasName(used, name):
			c.errorf(diag.SemaNameAlreadyExists, loc, fmt.Sprintf("Name already exists: %s", name))
			continue
		case token.IsReserved(name):
			c.errorf(diag.SemaKeywordAsName, loc, fmt.Sprintf("Keyword %q cannot be used as a name", name))
			continue
		}
		c.checkCasing(name, loc, cat.want)
		used[name] = struct{}{}
		dst[name] = item
	}
}

func hasName(used usedNames, name string) bool {
	_, ok := used[name]
	return ok
}

// checkCasing reports a warning with a suggested spelling. It never rejects.
func (c *checker) checkCasing(name string, loc source.Location, want casing) {
	if c.names.follows(name, want) {
		return
	}
	code, style := diag.SemaNameShouldBeSnakeCase, "snake_case"
	if want == pascalCase {
		code, style = diag.SemaNameShouldBePascalCase, "PascalCase"
	}
	c.warn(code, loc, fmt.Sprintf("Name %q should be %s", name, style)).
		WithNote(loc, fmt.Sprintf("consider renaming to `%s`", c.names.suggest(name, want))).
		Emit()
}
