package diag

import (
	"errors"

	"talpa/internal/source"
)

// Error is a fatal diagnostic carried as a Go error. The parser returns it
// to abort the current file.
type Error struct {
	Diagnostic
}

// NewError returns an error-severity diagnostic wrapped as an error.
// An empty msg falls back to the code title.
func NewError(code Code, loc source.Location, msg string) *Error {
	return &Error{Diagnostic: New(SevError, code, loc, msg)}
}

func (e *Error) Error() string {
	return e.Code.ID() + ": " + e.Message
}

// AsDiagnostic extracts the diagnostic from err, if it carries one.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Diagnostic, true
	}
	return Diagnostic{}, false
}
