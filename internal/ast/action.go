package ast

import "talpa/internal/source"

type ActionKind uint8

const (
	ActVariable ActionKind = iota
	ActAssignment
	ActCall
	ActVarRef
	ActString
	ActNumber
	ActBool
	ActBreak
	ActContinue
	ActFor
	ActWhile
	ActLoop
	ActIf
	ActReturn
)

var actionKindNames = [...]string{
	ActVariable:   "variable",
	ActAssignment: "assignment",
	ActCall:       "call",
	ActVarRef:     "var_ref",
	ActString:     "string",
	ActNumber:     "number",
	ActBool:       "bool",
	ActBreak:      "break",
	ActContinue:   "continue",
	ActFor:        "for",
	ActWhile:      "while",
	ActLoop:       "loop",
	ActIf:         "if",
	ActReturn:     "return",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return "unknown"
}

// Action is one statement or expression node.
type Action interface {
	Loc() source.Location
	Kind() ActionKind
}

// Block is an ordered body of actions.
type Block []Action

type Assignment struct {
	Node
	Name  string `json:"name"`
	Value Action `json:"value"`
}

type Call struct {
	Node
	Name string   `json:"name"`
	Args []Action `json:"args"`
}

type VarRef struct {
	Node
	Name string `json:"name"`
}

type StringLit struct {
	Node
	Value string `json:"value"`
}

// NumberLit keeps the source text; Float selects which value is meaningful.
type NumberLit struct {
	Node
	Text  string  `json:"text"`
	Float bool    `json:"float"`
	Int   int64   `json:"int,omitempty"`
	F64   float64 `json:"f64,omitempty"`
}

type BoolLit struct {
	Node
	Value bool `json:"value"`
}

type Break struct{ Node }

type Continue struct{ Node }

// For is `for Var in Iter { Body }`.
type For struct {
	Node
	Var    string          `json:"var"`
	VarLoc source.Location `json:"var_loc"`
	Iter   Action          `json:"iter"`
	Body   Block           `json:"body"`
}

type While struct {
	Node
	Cond Action `json:"cond"`
	Body Block  `json:"body"`
}

type Loop struct {
	Node
	Body Block `json:"body"`
}

// IfBranch is one arm of an if chain; Cond is nil for the trailing else.
type IfBranch struct {
	Node
	Cond Action `json:"cond,omitempty"`
	Body Block  `json:"body"`
}

// If holds the `if` arm followed by every `else if` arm and at most one
// final `else` arm.
type If struct {
	Node
	Branches []IfBranch `json:"branches"`
}

// HasElse reports whether the chain ends with a plain else.
func (n *If) HasElse() bool {
	return len(n.Branches) > 1 && n.Branches[len(n.Branches)-1].Cond == nil
}

// Return: Value is nil for a bare return.
type Return struct {
	Node
	Value Action `json:"value,omitempty"`
}

func (*Variable) Kind() ActionKind   { return ActVariable }
func (*Assignment) Kind() ActionKind { return ActAssignment }
func (*Call) Kind() ActionKind       { return ActCall }
func (*VarRef) Kind() ActionKind     { return ActVarRef }
func (*StringLit) Kind() ActionKind  { return ActString }
func (*NumberLit) Kind() ActionKind  { return ActNumber }
func (*BoolLit) Kind() ActionKind    { return ActBool }
func (*Break) Kind() ActionKind      { return ActBreak }
func (*Continue) Kind() ActionKind   { return ActContinue }
func (*For) Kind() ActionKind        { return ActFor }
func (*While) Kind() ActionKind      { return ActWhile }
func (*Loop) Kind() ActionKind       { return ActLoop }
func (*If) Kind() ActionKind         { return ActIf }
func (*Return) Kind() ActionKind     { return ActReturn }
