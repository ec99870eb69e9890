package ast

import (
	"strings"

	"talpa/internal/token"
)

type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeInt
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeUInt
	TypeU8
	TypeU16
	TypeU32
	TypeU64
	TypeChar
	TypeString
	TypeRef    // ссылка на именованный тип
	TypeArray  // []Elem
	TypeStruct // inline struct
	TypeEnum   // inline enum
)

var primitiveKinds = map[token.Kind]TypeKind{
	token.TyInt:    TypeInt,
	token.TyI8:     TypeI8,
	token.TyI16:    TypeI16,
	token.TyI32:    TypeI32,
	token.TyI64:    TypeI64,
	token.TyUInt:   TypeUInt,
	token.TyU8:     TypeU8,
	token.TyU16:    TypeU16,
	token.TyU32:    TypeU32,
	token.TyU64:    TypeU64,
	token.TyChar:   TypeChar,
	token.TyString: TypeString,
}

// PrimitiveKind maps a built-in type word to its TypeKind.
func PrimitiveKind(k token.Kind) (TypeKind, bool) {
	tk, ok := primitiveKinds[k]
	return tk, ok
}

var typeKindNames = [...]string{
	TypeInvalid: "invalid",
	TypeInt:     "int",
	TypeI8:      "i8",
	TypeI16:     "i16",
	TypeI32:     "i32",
	TypeI64:     "i64",
	TypeUInt:    "uint",
	TypeU8:      "u8",
	TypeU16:     "u16",
	TypeU32:     "u32",
	TypeU64:     "u64",
	TypeChar:    "char",
	TypeString:  "string",
	TypeRef:     "ref",
	TypeArray:   "array",
	TypeStruct:  "struct",
	TypeEnum:    "enum",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return typeKindNames[TypeInvalid]
}

// Type is a tagged variant. Name is set for TypeRef, Elem for TypeArray,
// Struct and Enum for the inline forms.
type Type struct {
	Node
	Kind   TypeKind `json:"kind"`
	Name   string   `json:"name,omitempty"`
	Elem   *Type    `json:"elem,omitempty"`
	Struct *Struct  `json:"struct,omitempty"`
	Enum   *Enum    `json:"enum,omitempty"`
}

// String renders the type in source form; inline bodies are abbreviated.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Type) write(sb *strings.Builder) {
	switch t.Kind {
	case TypeRef:
		sb.WriteString(t.Name)
	case TypeArray:
		sb.WriteString("[]")
		if t.Elem != nil {
			t.Elem.write(sb)
		}
	case TypeStruct:
		sb.WriteString("struct {...}")
	case TypeEnum:
		sb.WriteString("enum {...}")
	default:
		sb.WriteString(t.Kind.String())
	}
}
