package ast

import "talpa/internal/source"

// Node carries the source location shared by every tree node.
type Node struct {
	Location source.Location `json:"loc"`
}

// At is a shorthand for building a Node.
func At(loc source.Location) Node {
	return Node{Location: loc}
}

func (n Node) Loc() source.Location {
	return n.Location
}
