package lexer

import (
	"talpa/internal/diag"
)

// Errorf builds a fatal diagnostic pointing at the last consumed character.
// An empty msg falls back to the code title.
func (c *Cursor) Errorf(code diag.Code, msg string) error {
	return diag.NewError(code, c.LastLoc(), msg)
}

func (c *Cursor) ErrUnexpectedEOF() error {
	return c.Errorf(diag.LexUnexpectedEOF, "")
}

// ErrUnexpectedChar reports b, rendering newlines and tabs escaped.
func (c *Cursor) ErrUnexpectedChar(b byte) error {
	return c.Errorf(diag.LexUnexpectedChar, "Unexpected char: "+describeChar(b))
}

func describeChar(b byte) string {
	switch b {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	}
	return string(rune(b))
}
