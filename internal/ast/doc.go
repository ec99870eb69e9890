// Package ast holds the raw program produced by the parser. Nodes are plain
// owned trees; nothing here is validated.
package ast
