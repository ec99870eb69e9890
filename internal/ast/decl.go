package ast

import "talpa/internal/source"

// Program is the raw, unvalidated result of parsing one file. Lists keep
// parse order and may contain duplicates.
type Program struct {
	File      source.FileID `json:"-"`
	Path      string        `json:"path"`
	Functions []*Function   `json:"functions"`
	Vars      []*Variable   `json:"vars"`
	Structs   []*Struct     `json:"structs"`
	Enums     []*Enum       `json:"enums"`
	Types     []*TypeAlias  `json:"types"`
	Imports   []*Import     `json:"imports"`
}

type Arg struct {
	Node
	Name string `json:"name"`
	Type *Type  `json:"type"`
}

// Function: Name is empty for anonymous functions.
type Function struct {
	Node
	Name   string `json:"name"`
	Args   []Arg  `json:"args"`
	Result *Type  `json:"result,omitempty"`
	Body   Block  `json:"body"`
}

type Field struct {
	Node
	Name string `json:"name"`
	Type *Type  `json:"type"`
}

// Struct: Name is empty for inline structs.
type Struct struct {
	Node
	Name   string  `json:"name,omitempty"`
	Fields []Field `json:"fields"`
}

type EnumField struct {
	Node
	Name  string `json:"name"`
	Value Action `json:"value,omitempty"`
}

// Enum: Name is empty for inline enums.
type Enum struct {
	Node
	Name   string      `json:"name,omitempty"`
	Fields []EnumField `json:"fields"`
}

// TypeAlias is a top level `type Name = <type>`.
type TypeAlias struct {
	Node
	Name string `json:"name"`
	Type *Type  `json:"type"`
}

// Import is one `Name "path"` pair. Resolved is the path joined against the
// importing file's directory.
type Import struct {
	Node
	Name     string `json:"name"`
	Path     string `json:"path"`
	Resolved string `json:"resolved"`
}

type VarKind uint8

const (
	VarLet VarKind = iota
	VarConst
)

func (k VarKind) String() string {
	if k == VarConst {
		return "const"
	}
	return "let"
}

// Mutable reports whether values declared with k may be reassigned.
func (k VarKind) Mutable() bool {
	return k == VarLet
}

// Variable is both a global const and a `let`/`const` statement.
type Variable struct {
	Node
	Decl  VarKind `json:"decl"`
	Name  string  `json:"name"`
	Type  *Type   `json:"type,omitempty"`
	Value Action  `json:"value"`
}
