// Package lexer holds the character level scanning primitives shared by the
// grammar parsers: a comment-eliding Cursor with exact backtracking, the
// keyword matcher and the name, number, boolean and string literal builders.
package lexer
