package lexer

// ScanString reads a string literal body; the opening '"' is already
// consumed. Comment markers inside the literal are data. A backslash makes
// the following character literal and is itself dropped; no escape table is
// applied.
func (c *Cursor) ScanString() (string, error) {
	var buf []byte
	escaped := false
	for {
		off, line := c.Off, c.Line
		b, ok := c.bump()
		if !ok {
			return "", c.ErrUnexpectedEOF()
		}
		c.lastOff, c.lastLine = off, line
		switch {
		case b == '\\' && !escaped:
			escaped = true
		case b == '"' && !escaped:
			return string(buf), nil
		default:
			buf = append(buf, b)
			escaped = false
		}
	}
}
