package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/source"
	"talpa/internal/token"
)

type Options struct {
	// OnImport is called for every parsed import once its path is resolved.
	// It only schedules work; the parser never reads the imported file.
	OnImport func(imp *ast.Import)
}

// Parser хранит состояние парсера на один файл
type Parser struct {
	c    lexer.Cursor
	file *source.File
	prog *ast.Program
	opts Options
}

// ParseFile: входная точка для разбора одного файла.
// Любая синтаксическая ошибка прерывает разбор и возвращается как *diag.Error.
func ParseFile(f *source.File, opts Options) (*ast.Program, error) {
	p := Parser{
		c:    lexer.NewCursor(f),
		file: f,
		opts: opts,
		prog: &ast.Program{
			File: f.ID,
			Path: f.Path,
		},
	}
	if err := p.parseItems(); err != nil {
		return nil, err
	}
	return p.prog, nil
}

// topLevel: ключевые слова, с которых может начинаться объявление в файле
var topLevel = []token.Kind{
	token.KwFn,
	token.KwConst,
	token.KwStruct,
	token.KwEnum,
	token.KwType,
	token.KwImport,
}

// parseItems: основной цикл верхнего уровня, parseItem до EOF.
func (p *Parser) parseItems() error {
	for {
		p.c.SkipSpace()
		if _, ok := p.c.Peek(); !ok {
			return nil
		}
		if err := p.parseItem(); err != nil {
			return err
		}
	}
}

// parseItem выбирает по ключевому слову нужный распознаватель top-level конструкции.
func (p *Parser) parseItem() error {
	loc := p.peekLoc()
	switch p.c.MatchKind(topLevel...) {
	case token.KwFn:
		fn, err := p.parseFunction(loc)
		if err != nil {
			return err
		}
		p.prog.Functions = append(p.prog.Functions, fn)
	case token.KwConst:
		v, err := p.parseVar(loc, ast.VarConst, exprCtx{})
		if err != nil {
			return err
		}
		p.prog.Vars = append(p.prog.Vars, v)
	case token.KwStruct:
		st, err := p.parseStruct(loc, false)
		if err != nil {
			return err
		}
		p.prog.Structs = append(p.prog.Structs, st)
	case token.KwEnum:
		en, err := p.parseEnum(loc, false)
		if err != nil {
			return err
		}
		p.prog.Enums = append(p.prog.Enums, en)
	case token.KwType:
		alias, err := p.parseTypeAlias(loc)
		if err != nil {
			return err
		}
		p.prog.Types = append(p.prog.Types, alias)
	case token.KwImport:
		imports, err := p.parseImports()
		if err != nil {
			return err
		}
		p.prog.Imports = append(p.prog.Imports, imports...)
	default:
		if p.c.MatchKind(token.KwLet) == token.KwLet {
			return diag.NewError(diag.SynUnexpectedTopLevel, loc,
				"Global variables must be declared with const")
		}
		b, err := p.c.MustNext()
		if err != nil {
			return err
		}
		return p.c.ErrUnexpectedChar(b)
	}
	return nil
}

// peekLoc returns the location of the next logical character without
// consuming it.
func (p *Parser) peekLoc() source.Location {
	m := p.c.Mark()
	defer p.c.Reset(m)
	if _, ok := p.c.Next(); !ok {
		return p.c.Loc()
	}
	return p.c.LastLoc()
}

// scanNameFrom собирает имя, первый символ которого уже прочитан.
// Символ, закончивший имя, остаётся непрочитанным.
func (p *Parser) scanNameFrom(first byte) (string, error) {
	nb := lexer.NewNameBuilderWith(first)
	for {
		m := p.c.Mark()
		b, ok := p.c.Next()
		if !ok || !lexer.IsNameChar(b) {
			p.c.Reset(m)
			break
		}
		nb.Push(b)
	}
	return nb.Name(&p.c)
}

// expect skips whitespace and requires the next character to be want.
func (p *Parser) expect(want byte) error {
	b, err := p.c.MustSkipWhile(lexer.Whitespace)
	if err != nil {
		return err
	}
	if b != want {
		return p.c.ErrUnexpectedChar(b)
	}
	return nil
}
