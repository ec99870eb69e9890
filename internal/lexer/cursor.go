package lexer

import (
	"fmt"
	"strings"

	"talpa/internal/source"

	"fortio.org/safecast"
)

// Cursor представляет собой позицию в файле.
// Off и Line всегда меняются вместе, в том числе при откате через Reset.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32 // 1-based
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32

	// позиция последнего возвращённого символа, для диагностик
	lastOff  uint32
	lastLine uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:     f,
		Line:     1,
		Limit:    limit,
		lastLine: 1,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// bump читает сырой байт без пропуска комментариев
func (c *Cursor) bump() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
	}
	return b, true
}

func (c *Cursor) peekRaw() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.File.Content[c.Off], true
}

// Next returns the next logical character. Line (`//...\n`) and block
// (`/*...*/`) comments are consumed transparently; a '/' that does not open a
// comment is returned as data. Unterminated comments simply end the input.
func (c *Cursor) Next() (byte, bool) {
	for {
		off, line := c.Off, c.Line
		b, ok := c.bump()
		if !ok {
			return 0, false
		}
		if b == '/' {
			switch nb, _ := c.peekRaw(); nb {
			case '/':
				if !c.skipLineComment() {
					return 0, false
				}
				continue
			case '*':
				c.bump()
				if !c.skipBlockComment() {
					return 0, false
				}
				continue
			}
		}
		c.lastOff, c.lastLine = off, line
		return b, true
	}
}

// skipLineComment съедает всё до '\n' включительно
func (c *Cursor) skipLineComment() bool {
	for {
		b, ok := c.bump()
		if !ok {
			return false
		}
		if b == '\n' {
			return true
		}
	}
}

// skipBlockComment съедает всё до "*/" включительно
func (c *Cursor) skipBlockComment() bool {
	for {
		b, ok := c.bump()
		if !ok {
			return false
		}
		if b != '*' {
			continue
		}
		nb, ok := c.peekRaw()
		if !ok {
			return false
		}
		if nb == '/' {
			c.bump()
			return true
		}
	}
}

// Peek returns the next logical character without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	m := c.Mark()
	b, ok := c.Next()
	c.Reset(m)
	return b, ok
}

// Mark это снимок курсора для отката
type Mark struct {
	off, line         uint32
	lastOff, lastLine uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, line: c.Line, lastOff: c.lastOff, lastLine: c.lastLine}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Line = m.off, m.line
	c.lastOff, c.lastLine = m.lastOff, m.lastLine
}

// Loc returns the location of the next unread byte.
func (c *Cursor) Loc() source.Location {
	return source.Location{File: c.File.ID, Off: c.Off, Line: c.Line}
}

// LastLoc returns the location of the most recently returned character.
func (c *Cursor) LastLoc() source.Location {
	return source.Location{File: c.File.ID, Off: c.lastOff, Line: c.lastLine}
}

// SkipWhile advances past every character in set and returns the first
// character outside it, consumed. ok is false at end of input.
func (c *Cursor) SkipWhile(set string) (b byte, ok bool) {
	for {
		b, ok = c.Next()
		if !ok || !strings.ContainsRune(set, rune(b)) {
			return b, ok
		}
	}
}

// SkipSpace advances past spaces, tabs and newlines without consuming the
// character that follows them.
func (c *Cursor) SkipSpace() {
	c.SkipSet(Whitespace)
}

// SkipSet advances past every character in set without consuming the
// first character outside it.
func (c *Cursor) SkipSet(set string) {
	for {
		m := c.Mark()
		b, ok := c.Next()
		if !ok || !strings.ContainsRune(set, rune(b)) {
			c.Reset(m)
			return
		}
	}
}

// MustNext is Next that fails with UnexpectedEOF at end of input.
func (c *Cursor) MustNext() (byte, error) {
	b, ok := c.Next()
	if !ok {
		return 0, c.ErrUnexpectedEOF()
	}
	return b, nil
}

// MustSkipWhile is SkipWhile that fails with UnexpectedEOF at end of input.
func (c *Cursor) MustSkipWhile(set string) (byte, error) {
	b, ok := c.SkipWhile(set)
	if !ok {
		return 0, c.ErrUnexpectedEOF()
	}
	return b, nil
}

// MustPeekNonSpace skips whitespace and returns the following character
// without consuming it.
func (c *Cursor) MustPeekNonSpace() (byte, error) {
	c.SkipSpace()
	b, ok := c.Peek()
	if !ok {
		return 0, c.ErrUnexpectedEOF()
	}
	return b, nil
}

// Expect consumes text exactly.
func (c *Cursor) Expect(text string) error {
	for i := 0; i < len(text); i++ {
		b, err := c.MustNext()
		if err != nil {
			return err
		}
		if b != text[i] {
			return c.ErrUnexpectedChar(b)
		}
	}
	return nil
}
