package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/source"
	"talpa/internal/token"
)

// condStop завершает условие/итерируемое выражение перед телом
const condStop = "{"

// parseReturn: `return` или `return <action>`; '}' сразу после означает пустой return.
func (p *Parser) parseReturn(loc source.Location) (ast.Action, error) {
	b, err := p.c.MustPeekNonSpace()
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Node: ast.At(loc)}
	if b == '}' {
		return ret, nil
	}
	if ret.Value, err = p.parseAction(exprCtx{stop: bodyStop}); err != nil {
		return nil, err
	}
	return ret, nil
}

func (p *Parser) parseLoop(loc source.Location) (ast.Action, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Loop{Node: ast.At(loc), Body: body}, nil
}

func (p *Parser) parseWhile(loc source.Location) (ast.Action, error) {
	cond, body, err := p.parseGuardedBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Node: ast.At(loc), Cond: cond, Body: body}, nil
}

// parseFor разбирает `for name in <action> { body }`.
func (p *Parser) parseFor(loc source.Location) (ast.Action, error) {
	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return nil, err
	}
	if !lexer.IsNameChar(b) {
		return nil, p.c.ErrUnexpectedChar(b)
	}
	node := &ast.For{Node: ast.At(loc), VarLoc: p.c.LastLoc()}
	if node.Var, err = p.scanNameFrom(b); err != nil {
		return nil, err
	}
	sep, err := p.c.MustNext()
	if err != nil {
		return nil, err
	}
	if sep != ' ' && sep != '\t' && sep != '\n' {
		return nil, p.c.ErrUnexpectedChar(sep)
	}

	p.c.SkipSpace()
	if p.c.Match([]lexer.Candidate{{Text: "in", Follow: lexer.Whitespace}}) < 0 {
		if _, err := p.c.MustNext(); err != nil {
			return nil, err
		}
		return nil, p.c.Errorf(diag.SynForMissingIn, "Expected 'in' after the for loop variable")
	}

	if node.Iter, node.Body, err = p.parseGuardedBlock(); err != nil {
		return nil, err
	}
	return node, nil
}

// parseIf разбирает цепочку if / else if / else.
// После else обязательно идёт if или '{', иначе ошибка.
func (p *Parser) parseIf(loc source.Location) (ast.Action, error) {
	cond, body, err := p.parseGuardedBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Node: ast.At(loc)}
	node.Branches = append(node.Branches, ast.IfBranch{Node: ast.At(loc), Cond: cond, Body: body})

	for {
		m := p.c.Mark()
		p.c.SkipSpace()
		elseLoc := p.peekLoc()
		if p.c.MatchKind(token.KwElse) == token.Invalid {
			p.c.Reset(m)
			return node, nil
		}

		p.c.SkipSpace()
		branchLoc := p.peekLoc()
		if p.c.MatchKind(token.KwIf) == token.KwIf {
			cond, body, err := p.parseGuardedBlock()
			if err != nil {
				return nil, err
			}
			node.Branches = append(node.Branches, ast.IfBranch{Node: ast.At(branchLoc), Cond: cond, Body: body})
			continue
		}

		b, err := p.c.MustNext()
		if err != nil {
			return nil, err
		}
		if b != '{' {
			return nil, p.c.ErrUnexpectedChar(b)
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Branches = append(node.Branches, ast.IfBranch{Node: ast.At(elseLoc), Body: body})
		return node, nil
	}
}

// parseGuardedBlock reads `<action> { body }` shared by while, for and if.
func (p *Parser) parseGuardedBlock() (ast.Action, ast.Block, error) {
	b, err := p.c.MustPeekNonSpace()
	if err != nil {
		return nil, nil, err
	}
	if b == '{' {
		p.c.Next()
		return nil, nil, p.c.ErrUnexpectedChar(b)
	}
	cond, err := p.parseAction(exprCtx{stop: condStop})
	if err != nil {
		return nil, nil, err
	}
	if err := p.expect('{'); err != nil {
		return nil, nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, nil, err
	}
	return cond, body, nil
}
