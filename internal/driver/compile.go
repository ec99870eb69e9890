package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/observ"
	"talpa/internal/sema"
	"talpa/internal/source"
	"talpa/internal/trace"
)

// Options configure Compile.
type Options struct {
	MaxDiagnostics int // per file, 0 = bag default
	Jobs           int // 0 = GOMAXPROCS
	NoImports      bool
	Cache          *DiskCache    // nil disables the disk cache
	Timer          *observ.Timer // nil disables timings
}

// FileResult is the outcome of one file's pipeline. Raw and Program are nil
// when the file failed to load or parse, or came from the disk cache.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Raw     *ast.Program
	Program *sema.Program
	Bag     *diag.Bag
	Imports []string // resolved import paths, in source order
	Cached  bool
}

func (r *FileResult) Errors() []diag.Diagnostic   { return r.Bag.Errors() }
func (r *FileResult) Warnings() []diag.Diagnostic { return r.Bag.Warnings() }

// Result aggregates all files reached from the entry.
type Result struct {
	FileSet  *source.FileSet
	Files    []*FileResult // entry first, then wave by wave
	Errors   int
	Warnings int
}

// Diagnostics returns every diagnostic sorted by file and position.
func (r *Result) Diagnostics() []diag.Diagnostic {
	all := diag.NewBag(0)
	for _, f := range r.Files {
		all.Merge(f.Bag)
	}
	all.Sort()
	return all.Items()
}

// Compile runs the pipeline on entry and on every file it imports,
// transitively. Files of one wave are independent and run in parallel; their
// imports form the next wave. Each path is processed once.
// The returned error is reserved for cancellation; everything wrong with the
// sources is reported as diagnostics.
func Compile(ctx context.Context, host Host, entry string, opts Options) (*Result, error) {
	if host == nil {
		host = OSHost{}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "compile", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	res := &Result{FileSet: source.NewFileSet()}
	p := &pipeline{host: host, fs: res.FileSet, opts: opts}

	entry = normalizePath(entry)
	seen := map[string]struct{}{entry: {}}
	wave := []string{entry}
	for n := 0; len(wave) > 0; n++ {
		trace.Point(tracer, trace.ScopeDriver, "wave", strconv.Itoa(n)+": "+strconv.Itoa(len(wave))+" files", span.ID())

		results := make([]*FileResult, len(wave))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(min(jobs, len(wave)))
		for i, path := range wave {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = p.run(gctx, path)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			span.End("cancelled")
			return nil, fmt.Errorf("compile %s: %w", entry, err)
		}

		var next []string
		for _, r := range results {
			res.Files = append(res.Files, r)
			res.Errors += len(r.Errors())
			res.Warnings += len(r.Warnings())
			if opts.NoImports {
				continue
			}
			for _, imp := range r.Imports {
				imp = normalizePath(imp)
				if _, ok := seen[imp]; ok {
					continue
				}
				seen[imp] = struct{}{}
				next = append(next, imp)
			}
		}
		wave = next
	}

	span.WithExtra("files", strconv.Itoa(len(res.Files))).
		End(fmt.Sprintf("%d errors, %d warnings", res.Errors, res.Warnings))
	return res, nil
}
