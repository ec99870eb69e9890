package diag

import (
	"talpa/internal/source"
)

type Note struct {
	Loc source.Location
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Location
	Notes    []Note
}

// New builds a diagnostic; an empty msg falls back to the code title.
func New(sev Severity, code Code, primary source.Location, msg string) Diagnostic {
	if msg == "" {
		msg = code.Title()
	}
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func (d Diagnostic) WithNote(loc source.Location, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Msg: msg})
	return d
}
