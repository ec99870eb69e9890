package parser

import (
	"talpa/internal/ast"
	"talpa/internal/lexer"
	"talpa/internal/source"
)

// parseExpr разбирает конструкцию, начинающуюся с имени или строки.
// Символ, на котором закончилось имя, определяет вид:
// '(' означает вызов, '=' присваивание, иначе ссылка на переменную или литерал.
func (p *Parser) parseExpr(ctx exprCtx, loc source.Location) (ast.Action, error) {
	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if b == '"' {
		s, err := p.c.ScanString()
		if err != nil {
			return nil, err
		}
		return &ast.StringLit{Node: ast.At(loc), Value: s}, nil
	}
	if !isWordChar(b) {
		return nil, p.c.ErrUnexpectedChar(b)
	}

	nb := lexer.NewNameBuilderWith(b)
	for {
		m := p.c.Mark()
		b, ok := p.c.Next()
		if !ok || !isWordChar(b) {
			p.c.Reset(m)
			break
		}
		nb.Push(b)
	}

	// что идёт после имени
	afterName := p.c.Mark()
	next, ok := p.c.Next()
	sawSpace := ok && (next == ' ' || next == '\t' || next == '\n')
	if sawSpace {
		next, ok = p.c.SkipWhile(lexer.Whitespace)
	}

	switch {
	case ok && next == '(':
		name, err := nb.Name(&p.c)
		if err != nil {
			return nil, err
		}
		return p.parseCall(loc, name)
	case ok && next == '=':
		name, err := nb.Name(&p.c)
		if err != nil {
			return nil, err
		}
		value, err := p.parseValue(ctx)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Node: ast.At(loc), Name: name, Value: value}, nil
	case ok && !sawSpace && !containsByte(ctx.stop, next):
		return nil, p.c.ErrUnexpectedChar(next)
	}
	p.c.Reset(afterName)

	if v, isBool := nb.Bool(); isBool {
		return &ast.BoolLit{Node: ast.At(loc), Value: v}, nil
	}
	if nb.IsNumber() {
		n, err := nb.Number(&p.c)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLit{Node: ast.At(loc), Text: n.Text, Float: n.Float, Int: n.Int, F64: n.F64}, nil
	}
	name, err := nb.Name(&p.c)
	if err != nil {
		return nil, err
	}
	return &ast.VarRef{Node: ast.At(loc), Name: name}, nil
}

// isWordChar: символы имени плюс '.', чтобы числа с точкой читались целиком
func isWordChar(b byte) bool {
	return lexer.IsNameChar(b) || b == '.'
}

// parseCall разбирает аргументы вызова; '(' уже съедена.
func (p *Parser) parseCall(loc source.Location, name string) (ast.Action, error) {
	call := &ast.Call{Node: ast.At(loc), Name: name}
	for {
		b, err := p.c.MustPeekNonSpace()
		if err != nil {
			return nil, err
		}
		if b == ')' {
			p.c.Next()
			return call, nil
		}
		arg, err := p.parseAction(exprCtx{stop: ",)"})
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)

		b, err = p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		switch b {
		case ',':
		case ')':
			return call, nil
		default:
			return nil, p.c.ErrUnexpectedChar(b)
		}
	}
}
