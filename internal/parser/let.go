package parser

import (
	"talpa/internal/ast"
	"talpa/internal/lexer"
	"talpa/internal/source"
)

// parseVar разбирает `name [: Type] = <action>` после let/const.
func (p *Parser) parseVar(loc source.Location, kind ast.VarKind, ctx exprCtx) (*ast.Variable, error) {
	v := &ast.Variable{Node: ast.At(loc), Decl: kind}

	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if !lexer.IsNameChar(b) {
		return nil, p.c.ErrUnexpectedChar(b)
	}
	if v.Name, err = p.scanNameFrom(b); err != nil {
		return nil, err
	}

	b, err = p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if b == ':' {
		if v.Type, err = p.parseType(); err != nil {
			return nil, err
		}
		if b, err = p.c.MustSkipWhile(lexer.Whitespace); err != nil {
			return nil, err
		}
	}
	if b != '=' {
		return nil, p.c.ErrUnexpectedChar(b)
	}

	if v.Value, err = p.parseValue(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
