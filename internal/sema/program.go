package sema

import (
	"talpa/internal/ast"
	"talpa/internal/source"
)

// Program is the analyzed form of one file: every top level item keyed by
// its name. A name appears in at most one map.
type Program struct {
	File      source.FileID             `json:"-" msgpack:"-"`
	Path      string                    `json:"path"`
	Functions map[string]*ast.Function  `json:"functions"`
	Vars      map[string]*ast.Variable  `json:"vars"`
	Structs   map[string]*ast.Struct    `json:"structs"`
	Enums     map[string]*ast.Enum      `json:"enums"`
	Types     map[string]*ast.TypeAlias `json:"types"`
	Imports   map[string]*ast.Import    `json:"imports"`
}

func newProgram(raw *ast.Program) *Program {
	return &Program{
		File:      raw.File,
		Path:      raw.Path,
		Functions: make(map[string]*ast.Function, len(raw.Functions)),
		Vars:      make(map[string]*ast.Variable, len(raw.Vars)),
		Structs:   make(map[string]*ast.Struct, len(raw.Structs)),
		Enums:     make(map[string]*ast.Enum, len(raw.Enums)),
		Types:     make(map[string]*ast.TypeAlias, len(raw.Types)),
		Imports:   make(map[string]*ast.Import, len(raw.Imports)),
	}
}

// Len returns the total number of named items.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Functions) + len(p.Vars) + len(p.Structs) + len(p.Enums) + len(p.Types) + len(p.Imports)
}
