package token

import "strings"

var keywords = map[string]Kind{
	"fn":       KwFn,
	"if":       KwIf,
	"let":      KwLet,
	"pub":      KwPub,
	"for":      KwFor,
	"loop":     KwLoop,
	"else":     KwElse,
	"enum":     KwEnum,
	"type":     KwType,
	"true":     KwTrue,
	"false":    KwFalse,
	"const":    KwConst,
	"while":    KwWhile,
	"break":    KwBreak,
	"return":   KwReturn,
	"struct":   KwStruct,
	"import":   KwImport,
	"continue": KwContinue,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые, распознаются только lowercase версии.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsReserved reports whether name may not be used as a declaration name.
// The comparison ignores case.
func IsReserved(name string) bool {
	_, ok := LookupKeyword(strings.ToLower(name))
	return ok
}
