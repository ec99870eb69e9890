package lexer

import (
	"strconv"
	"unicode/utf8"

	"talpa/internal/diag"
)

// NameBuilder accumulates identifier bytes.
type NameBuilder struct {
	buf []byte
}

func NewNameBuilder() *NameBuilder {
	return &NameBuilder{}
}

// NewNameBuilderWith starts the builder with a first character. The caller
// checks that b is a name character.
func NewNameBuilderWith(b byte) *NameBuilder {
	return &NameBuilder{buf: []byte{b}}
}

func (nb *NameBuilder) Push(b byte) {
	nb.buf = append(nb.buf, b)
}

func (nb *NameBuilder) Len() int {
	return len(nb.buf)
}

func (nb *NameBuilder) Bytes() []byte {
	return nb.buf
}

// Name validates the accumulated bytes as an identifier: it may not start
// with a digit and must be valid UTF-8. An empty builder yields "".
func (nb *NameBuilder) Name(c *Cursor) (string, error) {
	if len(nb.buf) == 0 {
		return "", nil
	}
	if isDigit(nb.buf[0]) {
		return "", c.Errorf(diag.LexInvalidName, "")
	}
	if !utf8.Valid(nb.buf) {
		return "", c.Errorf(diag.LexInvalidUTF8, "")
	}
	return string(nb.buf), nil
}

// Bool returns the boolean literal spelled by the builder, if any.
func (nb *NameBuilder) Bool() (value, ok bool) {
	switch string(nb.buf) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// IsNumber reports whether the builder holds only digits and dots, the
// pre-filter for numeric literals.
func (nb *NameBuilder) IsNumber() bool {
	if len(nb.buf) == 0 {
		return false
	}
	for _, b := range nb.buf {
		if !isDigit(b) && b != '.' {
			return false
		}
	}
	return true
}

// Number is a numeric literal. Float is set when the text contains a dot.
type Number struct {
	Text  string
	Float bool
	Int   int64
	F64   float64
}

// Number interprets the builder as an integer or floating literal. Text that
// passed IsNumber but does not parse, such as "1.2.3", is InvalidNumber.
func (nb *NameBuilder) Number(c *Cursor) (Number, error) {
	text := string(nb.buf)
	n := Number{Text: text}
	for _, b := range nb.buf {
		if b == '.' {
			n.Float = true
			break
		}
	}
	var err error
	if n.Float {
		n.F64, err = strconv.ParseFloat(text, 64)
	} else {
		n.Int, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		return Number{}, c.Errorf(diag.LexInvalidNumber, "")
	}
	return n, nil
}

// ScanName reads an identifier starting at the next character. Leading
// whitespace is skipped. The character that ends the name is left unread.
func (c *Cursor) ScanName() (string, error) {
	c.SkipSpace()
	nb := NewNameBuilder()
	for {
		m := c.Mark()
		b, ok := c.Next()
		if !ok || !IsNameChar(b) {
			c.Reset(m)
			break
		}
		nb.Push(b)
	}
	return nb.Name(c)
}
