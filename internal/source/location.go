package source

import "fmt"

// Location is a compact locator: a byte offset into the file content and the
// 1-based line that offset sits on. Column information is reconstructed on
// demand by File.Context.
type Location struct {
	File FileID
	Off  uint32
	Line uint32
}

// IsZero reports whether the location carries no position.
func (l Location) IsZero() bool {
	return l.Line == 0
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d@%d", l.File, l.Line, l.Off)
}

// Before reports whether l precedes other within the same file.
func (l Location) Before(other Location) bool {
	if l.File != other.File {
		return l.File < other.File
	}
	return l.Off < other.Off
}
