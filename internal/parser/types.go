package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/token"
)

// typeWords: порядок важен, первый полностью совпавший кандидат побеждает
var typeWords = []token.Kind{
	token.TyInt,
	token.TyI8,
	token.TyI16,
	token.TyI32,
	token.TyI64,
	token.TyUInt,
	token.TyU8,
	token.TyU16,
	token.TyU32,
	token.TyU64,
	token.TyString,
	token.TyChar,
	token.KwStruct,
	token.KwEnum,
	token.TyArray,
}

var typeCandidates = func() []lexer.Candidate {
	out := make([]lexer.Candidate, len(typeWords))
	for i, k := range typeWords {
		// разделитель проверяется вручную: struct/enum допускают '{'
		out[i] = lexer.Candidate{Text: k.Text()}
	}
	return out
}()

// parseType разбирает тип: примитивы, []T, inline struct/enum или имя.
// Слово, за которым идёт символ имени (`intx`), читается как имя типа.
func (p *Parser) parseType() (*ast.Type, error) {
	if _, err := p.c.MustPeekNonSpace(); err != nil {
		return nil, err
	}
	loc := p.peekLoc()
	start := p.c.Mark()

	if i := p.c.Match(typeCandidates); i >= 0 {
		kind := typeWords[i]
		next, ok := p.c.Peek()
		switch {
		case kind == token.TyArray:
			elem, err := p.parseType()
			if err != nil {
				return nil, err
			}
			return &ast.Type{Node: ast.At(loc), Kind: ast.TypeArray, Elem: elem}, nil
		case kind == token.KwStruct && ok && (next == '{' || next == ' ' || next == '\t' || next == '\n'):
			st, err := p.parseStruct(loc, true)
			if err != nil {
				return nil, err
			}
			return &ast.Type{Node: ast.At(loc), Kind: ast.TypeStruct, Struct: st}, nil
		case kind == token.KwEnum && ok && (next == '{' || next == ' ' || next == '\t' || next == '\n'):
			en, err := p.parseEnum(loc, true)
			if err != nil {
				return nil, err
			}
			return &ast.Type{Node: ast.At(loc), Kind: ast.TypeEnum, Enum: en}, nil
		case kind != token.KwStruct && kind != token.KwEnum && (!ok || !lexer.IsNameChar(next)):
			tk, _ := ast.PrimitiveKind(kind)
			return &ast.Type{Node: ast.At(loc), Kind: tk}, nil
		}
		// ключевое слово оказалось префиксом имени
		p.c.Reset(start)
	}

	b, err := p.c.MustNext()
	if err != nil {
		return nil, err
	}
	if !lexer.IsNameChar(b) {
		return nil, diag.NewError(diag.SynExpectType, p.c.LastLoc(),
			"Expected a type, found "+quoteChar(b))
	}
	name, err := p.scanNameFrom(b)
	if err != nil {
		return nil, err
	}
	return &ast.Type{Node: ast.At(loc), Kind: ast.TypeRef, Name: name}, nil
}

func quoteChar(b byte) string {
	switch b {
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	}
	return "'" + string(rune(b)) + "'"
}
