package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/source"
)

// parseDeclHead reads the part before '{' of a struct or enum. In inline
// mode a name is not allowed; otherwise it is required.
func (p *Parser) parseDeclHead(what string, inline bool) (string, error) {
	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return "", err
	}
	if inline {
		switch {
		case b == '{':
			return "", nil
		case lexer.IsNameChar(b):
			return "", diag.NewError(diag.SynNamingNotAllowed, p.c.LastLoc(),
				"An inline "+what+" cannot have a name")
		default:
			return "", p.c.ErrUnexpectedChar(b)
		}
	}
	if b == '{' {
		return "", diag.NewError(diag.SynMissingName, p.c.LastLoc(),
			"Name required, for example: \""+what+" Foo {}\"")
	}
	if !lexer.IsNameChar(b) {
		return "", p.c.ErrUnexpectedChar(b)
	}
	name, err := p.scanNameFrom(b)
	if err != nil {
		return "", err
	}
	if err := p.expect('{'); err != nil {
		return "", err
	}
	return name, nil
}

// parseStruct разбирает `struct Name { field Type ... }`; ключевое слово уже съедено.
func (p *Parser) parseStruct(loc source.Location, inline bool) (*ast.Struct, error) {
	name, err := p.parseDeclHead("struct", inline)
	if err != nil {
		return nil, err
	}
	st := &ast.Struct{Node: ast.At(loc), Name: name}

	for {
		b, err := p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		if b == '}' {
			return st, nil
		}
		if !lexer.IsNameChar(b) {
			return nil, p.c.ErrUnexpectedChar(b)
		}
		field := ast.Field{Node: ast.At(p.c.LastLoc())}
		if field.Name, err = p.scanNameFrom(b); err != nil {
			return nil, err
		}
		sep, err := p.c.MustNext()
		if err != nil {
			return nil, err
		}
		if sep != ' ' && sep != '\t' {
			return nil, p.c.ErrUnexpectedChar(sep)
		}
		if field.Type, err = p.parseType(); err != nil {
			return nil, err
		}
		st.Fields = append(st.Fields, field)
	}
}

// parseEnum разбирает `enum Name { field [= value] ... }`; ключевое слово уже съедено.
// Поля разделяются переводом строки или запятой.
func (p *Parser) parseEnum(loc source.Location, inline bool) (*ast.Enum, error) {
	name, err := p.parseDeclHead("enum", inline)
	if err != nil {
		return nil, err
	}
	en := &ast.Enum{Node: ast.At(loc), Name: name}

	for {
		b, err := p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		if b == '}' {
			return en, nil
		}
		if !lexer.IsNameChar(b) {
			return nil, p.c.ErrUnexpectedChar(b)
		}
		field := ast.EnumField{Node: ast.At(p.c.LastLoc())}
		if field.Name, err = p.scanNameFrom(b); err != nil {
			return nil, err
		}

		b, err = p.c.MustSkipWhile(lexer.Blank)
		if err != nil {
			return nil, err
		}
		if b == '=' {
			if field.Value, err = p.parseValue(exprCtx{stop: ",}"}); err != nil {
				return nil, err
			}
			if b, err = p.c.MustSkipWhile(lexer.Blank); err != nil {
				return nil, err
			}
		}
		en.Fields = append(en.Fields, field)

		switch b {
		case '}':
			return en, nil
		case '\n', ',':
		default:
			return nil, p.c.ErrUnexpectedChar(b)
		}
	}
}

// parseTypeAlias разбирает `type Name = <type>`.
func (p *Parser) parseTypeAlias(loc source.Location) (*ast.TypeAlias, error) {
	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if !lexer.IsNameChar(b) {
		return nil, diag.NewError(diag.SynMissingName, p.c.LastLoc(),
			"Name required, for example: \"type Foo = int\"")
	}
	alias := &ast.TypeAlias{Node: ast.At(loc)}
	if alias.Name, err = p.scanNameFrom(b); err != nil {
		return nil, err
	}
	if err := p.expect('='); err != nil {
		return nil, err
	}
	if alias.Type, err = p.parseType(); err != nil {
		return nil, err
	}
	return alias, nil
}
