// Package token defines the reserved words and built-in type names of the
// Talpa language.
// Invariants:
//   - Kind.Text() is the exact source spelling of the word.
//   - Keywords are case-sensitive when scanned, but IsReserved compares
//     case-insensitively so `Fn` or `STRUCT` cannot be used as names either.
//   - Built-in type names (int, u8, string, ...) are not reserved; they are
//     only recognised in type position.
package token
