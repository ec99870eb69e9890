package lexer

// Whitespace is the set of characters that separate words.
const Whitespace = " \t\n"

// Blank separates words on a single line.
const Blank = " \t"

// IsNameChar reports whether b may appear in an identifier.
func IsNameChar(b byte) bool {
	return isLetter(b) || isDigit(b) || b == '_'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
