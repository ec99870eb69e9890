package sema

import (
	"fmt"

	"talpa/internal/ast"
	"talpa/internal/diag"
)

// checkDecls validates signatures and type shapes of the surviving items.
// Raw lists are walked so diagnostics come out in source order.
func (c *checker) checkDecls() {
	p := c.result
	for _, fn := range c.raw.Functions {
		if p.Functions[fn.Name] == fn {
			c.checkSignature(fn)
		}
	}
	for _, v := range c.raw.Vars {
		if p.Vars[v.Name] == v {
			c.checkType(v.Type)
		}
	}
	for _, st := range c.raw.Structs {
		if p.Structs[st.Name] == st {
			c.checkStruct(st, false)
		}
	}
	for _, en := range c.raw.Enums {
		if p.Enums[en.Name] == en {
			c.checkEnum(en, false)
		}
	}
	for _, alias := range c.raw.Types {
		if p.Types[alias.Name] == alias {
			c.checkType(alias.Type)
		}
	}
}

func (c *checker) checkSignature(fn *ast.Function) {
	seen := make(map[string]struct{}, len(fn.Args))
	for _, arg := range fn.Args {
		if _, dup := seen[arg.Name]; dup {
			c.errorf(diag.SemaAlreadyDefined, arg.Loc(), fmt.Sprintf("Argument %q is already defined", arg.Name))
			continue
		}
		seen[arg.Name] = struct{}{}
		c.checkCasing(arg.Name, arg.Loc(), snakeCase)
		c.checkType(arg.Type)
	}
	c.checkType(fn.Result)
}

// checkType descends into array elements and inline structs/enums.
func (c *checker) checkType(t *ast.Type) {
	for t != nil {
		switch t.Kind {
		case ast.TypeStruct:
			c.checkStruct(t.Struct, true)
			return
		case ast.TypeEnum:
			c.checkEnum(t.Enum, true)
			return
		case ast.TypeArray:
			t = t.Elem
		default:
			return
		}
	}
}

func (c *checker) checkStruct(st *ast.Struct, inline bool) {
	if st == nil {
		return
	}
	if inline && st.Name != "" {
		c.errorf(diag.SemaNamingNotAllowed, st.Loc(), "Inline struct cannot be named")
	}
	seen := make(map[string]struct{}, len(st.Fields))
	for _, f := range st.Fields {
		if _, dup := seen[f.Name]; dup {
			c.errorf(diag.SemaNameAlreadyExists, f.Loc(), fmt.Sprintf("Field %q already exists", f.Name))
			continue
		}
		seen[f.Name] = struct{}{}
		c.checkCasing(f.Name, f.Loc(), snakeCase)
		c.checkType(f.Type)
	}
}

func (c *checker) checkEnum(en *ast.Enum, inline bool) {
	if en == nil {
		return
	}
	if inline && en.Name != "" {
		c.errorf(diag.SemaNamingNotAllowed, en.Loc(), "Inline enum cannot be named")
	}
	if len(en.Fields) == 0 {
		c.warn(diag.SemaEmptyEnum, en.Loc(), "Empty enum").Emit()
		return
	}
	seen := make(map[string]struct{}, len(en.Fields))
	for _, f := range en.Fields {
		if _, dup := seen[f.Name]; dup {
			c.errorf(diag.SemaAlreadyDefined, f.Loc(), fmt.Sprintf("Enum field %q is already defined", f.Name))
			continue
		}
		seen[f.Name] = struct{}{}
		c.checkCasing(f.Name, f.Loc(), snakeCase)
	}
}

// checkGlobalValues resolves names used by const initializers and enum
// field values. Only globals are visible there.
func (c *checker) checkGlobalValues() {
	p := c.result
	globals := globalScope(p)
	for _, v := range c.raw.Vars {
		if p.Vars[v.Name] != v || v.Value == nil {
			continue
		}
		st := walkState{vars: globals}
		c.checkAction(v.Value, &st)
	}
	for _, en := range c.raw.Enums {
		if p.Enums[en.Name] != en {
			continue
		}
		for _, f := range en.Fields {
			if f.Value == nil {
				continue
			}
			st := walkState{vars: globals}
			c.checkAction(f.Value, &st)
		}
	}
}
