package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/source"
)

// parseFunction разбирает `fn name(arg Type, ...) [Result] { body }`.
// Ключевое слово fn уже съедено.
func (p *Parser) parseFunction(loc source.Location) (*ast.Function, error) {
	fn := &ast.Function{Node: ast.At(loc)}

	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if b == '(' {
		return nil, diag.NewError(diag.SynMissingName, p.c.LastLoc(),
			"Function requires a name, for example: \"fn foo() {}\"")
	}
	if !lexer.IsNameChar(b) {
		return nil, p.c.Errorf(diag.LexInvalidNameChar, "")
	}
	if fn.Name, err = p.scanNameFrom(b); err != nil {
		return nil, err
	}

	b, err = p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if b != '(' {
		return nil, p.c.Errorf(diag.LexInvalidNameChar, "")
	}
	if fn.Args, err = p.parseArgs(); err != nil {
		return nil, err
	}

	next, err := p.c.MustPeekNonSpace()
	if err != nil {
		return nil, err
	}
	if next != '{' {
		if fn.Result, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	if err := p.expect('{'); err != nil {
		return nil, err
	}
	if fn.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return fn, nil
}

// parseArgs читает аргументы до закрывающей ')'; '(' уже съедена.
func (p *Parser) parseArgs() ([]ast.Arg, error) {
	var args []ast.Arg
	for {
		b, err := p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		if b == ')' && len(args) == 0 {
			return args, nil
		}
		if !lexer.IsNameChar(b) {
			return nil, p.c.Errorf(diag.LexInvalidNameChar, "")
		}
		arg := ast.Arg{Node: ast.At(p.c.LastLoc())}
		if arg.Name, err = p.scanNameFrom(b); err != nil {
			return nil, err
		}

		// после имени обязателен пробел и тип
		next, err := p.c.MustNext()
		if err != nil {
			return nil, err
		}
		switch next {
		case ' ', '\t', '\n':
		case ')', ',':
			return nil, p.c.Errorf(diag.SynIncompleteArgument, "")
		default:
			return nil, p.c.Errorf(diag.LexInvalidNameChar, "")
		}
		if arg.Type, err = p.parseType(); err != nil {
			return nil, err
		}
		args = append(args, arg)

		b, err = p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		switch b {
		case ',':
		case ')':
			return args, nil
		default:
			return nil, p.c.ErrUnexpectedChar(b)
		}
	}
}
