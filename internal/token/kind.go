package token

// Kind represents a reserved word or a built-in type name.
type Kind uint8

const (
	// Invalid indicates an unknown word.
	Invalid Kind = iota

	KwFn       // fn
	KwIf       // if
	KwLet      // let
	KwPub      // pub
	KwFor      // for
	KwLoop     // loop
	KwElse     // else
	KwEnum     // enum
	KwType     // type
	KwTrue     // true
	KwFalse    // false
	KwConst    // const
	KwWhile    // while
	KwBreak    // break
	KwReturn   // return
	KwStruct   // struct
	KwImport   // import
	KwContinue // continue

	TyInt    // int
	TyI8     // i8
	TyI16    // i16
	TyI32    // i32
	TyI64    // i64
	TyUInt   // uint
	TyU8     // u8
	TyU16    // u16
	TyU32    // u32
	TyU64    // u64
	TyChar   // char
	TyString // string
	TyArray  // []
)

var kindText = [...]string{
	Invalid:    "<invalid>",
	KwFn:       "fn",
	KwIf:       "if",
	KwLet:      "let",
	KwPub:      "pub",
	KwFor:      "for",
	KwLoop:     "loop",
	KwElse:     "else",
	KwEnum:     "enum",
	KwType:     "type",
	KwTrue:     "true",
	KwFalse:    "false",
	KwConst:    "const",
	KwWhile:    "while",
	KwBreak:    "break",
	KwReturn:   "return",
	KwStruct:   "struct",
	KwImport:   "import",
	KwContinue: "continue",
	TyInt:      "int",
	TyI8:       "i8",
	TyI16:      "i16",
	TyI32:      "i32",
	TyI64:      "i64",
	TyUInt:     "uint",
	TyU8:       "u8",
	TyU16:      "u16",
	TyU32:      "u32",
	TyU64:      "u64",
	TyChar:     "char",
	TyString:   "string",
	TyArray:    "[]",
}

// Text returns the source spelling of the kind.
func (k Kind) Text() string {
	if int(k) < len(kindText) {
		return kindText[k]
	}
	return kindText[Invalid]
}

func (k Kind) String() string {
	return k.Text()
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwFn && k <= KwContinue
}

// IsBuiltinType reports whether k names a built-in type.
func (k Kind) IsBuiltinType() bool {
	return k >= TyInt && k <= TyArray
}

// Follow returns the set of characters that must directly follow the word
// for a match to count. An empty set means no delimiter is required.
func (k Kind) Follow() string {
	switch k {
	case KwLoop, KwElse:
		return " \t\n{"
	case KwReturn, KwBreak, KwContinue:
		return " \t\n}"
	}
	if k.IsKeyword() {
		return " \t\n"
	}
	return ""
}
