package parser

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/lexer"
	"talpa/internal/project"
)

// parseImports читает список пар `Name "path"` после import.
// Список заканчивается на первой строке, которая не является такой парой;
// позиция курсора при этом полностью восстанавливается.
func (p *Parser) parseImports() ([]*ast.Import, error) {
	var out []*ast.Import
	for {
		m := p.c.Mark()
		imp, ok, err := p.parseImportLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			p.c.Reset(m)
			break
		}
		out = append(out, imp)
		if p.opts.OnImport != nil {
			p.opts.OnImport(imp)
		}
	}
	if len(out) == 0 {
		b, err := p.c.MustSkipWhile(lexer.Whitespace)
		if err != nil {
			return nil, err
		}
		return nil, diag.NewError(diag.SynExpectImportPath, p.c.LastLoc(),
			"Expected an import like `import Name \"path\"`, found "+quoteChar(b))
	}
	return out, nil
}

func (p *Parser) parseImportLine() (*ast.Import, bool, error) {
	b, ok := p.c.SkipWhile(lexer.Whitespace)
	if !ok || !lexer.IsNameChar(b) {
		return nil, false, nil
	}
	imp := &ast.Import{Node: ast.At(p.c.LastLoc())}
	name, err := p.scanNameFrom(b)
	if err != nil {
		return nil, false, err
	}
	imp.Name = name

	sep, ok := p.c.Next()
	if !ok || (sep != ' ' && sep != '\t' && sep != '\n') {
		return nil, false, nil
	}
	if b, ok = p.c.SkipWhile(lexer.Whitespace); !ok || b != '"' {
		return nil, false, nil
	}
	if imp.Path, err = p.c.ScanString(); err != nil {
		return nil, false, err
	}
	imp.Resolved = project.ResolveImport(p.file.Path, imp.Path)
	return imp, true, nil
}
