package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/token"
)

// exprCtx describes where an action is parsed. Keywords are recognized only
// for statements in a body. A character in stop ends a nested expression
// cleanly instead of being reported as unexpected.
type exprCtx struct {
	inBody bool
	stop   string
}

// bodyStop: символы, на которых заканчивается выражение внутри тела
const bodyStop = "}"

var statementKeywords = []token.Kind{
	token.KwConst,
	token.KwLet,
	token.KwReturn,
	token.KwLoop,
	token.KwWhile,
	token.KwFor,
	token.KwBreak,
	token.KwContinue,
	token.KwIf,
}

// declKeywords не могут начинать инструкцию
var declKeywords = []token.Kind{
	token.KwFn,
	token.KwStruct,
	token.KwEnum,
	token.KwType,
	token.KwImport,
	token.KwElse,
}

// parseBlock читает инструкции до '}'; открывающая '{' уже съедена.
func (p *Parser) parseBlock() (ast.Block, error) {
	var body ast.Block
	for {
		b, err := p.c.MustPeekNonSpace()
		if err != nil {
			return nil, err
		}
		if b == '}' {
			p.c.Next()
			return body, nil
		}
		if !lexer.IsNameChar(b) {
			p.c.Next()
			return nil, p.c.ErrUnexpectedChar(b)
		}
		act, err := p.parseAction(exprCtx{inBody: true, stop: bodyStop})
		if err != nil {
			return nil, err
		}
		body = append(body, act)
	}
}

// parseAction разбирает одну инструкцию или выражение.
func (p *Parser) parseAction(ctx exprCtx) (ast.Action, error) {
	if _, err := p.c.MustPeekNonSpace(); err != nil {
		return nil, err
	}
	loc := p.peekLoc()

	if ctx.inBody {
		switch kw := p.c.MatchKind(statementKeywords...); kw {
		case token.KwConst:
			return p.parseVar(loc, ast.VarConst, ctx)
		case token.KwLet:
			return p.parseVar(loc, ast.VarLet, ctx)
		case token.KwReturn:
			return p.parseReturn(loc)
		case token.KwBreak:
			return &ast.Break{Node: ast.At(loc)}, nil
		case token.KwContinue:
			return &ast.Continue{Node: ast.At(loc)}, nil
		case token.KwLoop:
			return p.parseLoop(loc)
		case token.KwWhile:
			return p.parseWhile(loc)
		case token.KwFor:
			return p.parseFor(loc)
		case token.KwIf:
			return p.parseIf(loc)
		}
		if kw := p.c.MatchKind(declKeywords...); kw != token.Invalid {
			return nil, diag.NewError(diag.SynUnexpectedResult, loc,
				"Keyword '"+kw.Text()+"' is not allowed here")
		}
	}
	return p.parseExpr(ctx, loc)
}

// parseValue parses the right hand side after '='.
func (p *Parser) parseValue(ctx exprCtx) (ast.Action, error) {
	b, err := p.c.MustPeekNonSpace()
	if err != nil {
		return nil, err
	}
	if b == '}' || (ctx.stop != "" && containsByte(ctx.stop, b)) {
		p.c.Next()
		return nil, p.c.Errorf(diag.SynMissingAssignment, "")
	}
	return p.parseAction(exprCtx{stop: ctx.stop})
}

func containsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}
