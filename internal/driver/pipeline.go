package driver

import (
	"context"
	"time"

	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/parser"
	"talpa/internal/project"
	"talpa/internal/sema"
	"talpa/internal/source"
	"talpa/internal/trace"
)

// pipeline holds what all files of one Compile share.
type pipeline struct {
	host Host
	fs   *source.FileSet
	opts Options
}

// run: load → parse → analyze for one file. Never fails: problems become
// diagnostics in the result's bag.
func (p *pipeline) run(ctx context.Context, path string) *FileResult {
	tracer := trace.FromContext(ctx)
	fileSpan := trace.Begin(tracer, trace.ScopeFile, "file:"+path, trace.CurrentSpan(ctx))
	parent := fileSpan.ID()
	if parent == 0 {
		parent = trace.CurrentSpan(ctx)
	}

	res := &FileResult{Path: path, Bag: diag.NewBag(p.opts.MaxDiagnostics)}
	defer func() {
		fileSpan.End(summary(res))
	}()

	// load
	span := trace.Begin(tracer, trace.ScopePass, "load", parent)
	data, err := p.host.Open(path)
	if err != nil {
		res.FileID = p.fs.Add(path, nil, 0)
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOLoadFileError, source.Location{File: res.FileID}, "").
			WithNote(source.Location{File: res.FileID}, err.Error()).
			Emit()
		p.record("load", span.End("error"))
		return res
	}
	res.FileID = p.fs.AddBytes(path, data)
	file := p.fs.Get(res.FileID)
	p.record("load", span.WithExtra("bytes", itoa(len(file.Content))).End(""))

	key := cacheKey(file)
	if p.opts.Cache != nil {
		var payload DiskPayload
		if ok, err := p.opts.Cache.Get(key, &payload); err == nil && ok && payload.ContentHash == project.Digest(file.Hash) {
			payload.restore(res.FileID, res.Bag)
			res.Imports = payload.Imports
			res.Cached = true
			trace.Point(tracer, trace.ScopeFile, "cache-hit", path, parent)
			return res
		}
	}

	// parse
	span = trace.Begin(tracer, trace.ScopePass, "parse", parent)
	raw, err := parser.ParseFile(file, parser.Options{
		OnImport: func(imp *ast.Import) {
			res.Imports = append(res.Imports, imp.Resolved)
		},
	})
	if err != nil {
		p.record("parse", span.End("error"))
		d, ok := diag.AsDiagnostic(err)
		if !ok {
			d = diag.New(diag.SevError, diag.SynUnexpectedResult, source.Location{File: res.FileID}, err.Error())
		}
		res.Bag.Add(d)
		// файл с синтаксической ошибкой не планирует импорты
		res.Imports = nil
		p.store(key, file, res)
		return res
	}
	res.Raw = raw
	p.record("parse", span.End(""))

	// analyze
	span = trace.Begin(tracer, trace.ScopePass, "analyze", parent)
	res.Program = sema.Check(raw, sema.Options{Reporter: diag.BagReporter{Bag: res.Bag}})
	p.record("analyze", span.WithExtra("items", itoa(res.Program.Len())).End(""))

	p.store(key, file, res)
	return res
}

func (p *pipeline) record(phase string, d time.Duration) {
	if p.opts.Timer != nil {
		p.opts.Timer.Add(phase, d)
	}
}

// store пишет результат в дисковый кеш; ошибки кеша не мешают компиляции
func (p *pipeline) store(key project.Digest, file *source.File, res *FileResult) {
	if p.opts.Cache == nil {
		return
	}
	_ = p.opts.Cache.Put(key, payloadFromResult(res, project.Digest(file.Hash)))
}
