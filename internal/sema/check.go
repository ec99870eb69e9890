package sema

import (
	"talpa/internal/ast"
	"talpa/internal/diag"
	"talpa/internal/source"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
}

// Check builds the deduplicated symbol tables of prog, runs declaration
// checks and walks every function body. Findings go to opts.Reporter; the
// returned Program is always non-nil for a non-nil prog.
func Check(prog *ast.Program, opts Options) *Program {
	if prog == nil {
		return nil
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}

	c := checker{
		raw:      prog,
		reporter: reporter,
		names:    newNamer(),
	}
	c.run()
	return c.result
}

type checker struct {
	raw      *ast.Program
	reporter diag.Reporter
	names    *namer
	result   *Program
}

func (c *checker) run() {
	c.result = c.collect()
	c.checkDecls()
	c.checkGlobalValues()
	for _, fn := range c.raw.Functions {
		if c.result.Functions[fn.Name] != fn {
			continue
		}
		c.checkFunction(fn)
	}
}

func (c *checker) errorf(code diag.Code, loc source.Location, msg string) {
	diag.ReportError(c.reporter, code, loc, msg).Emit()
}

func (c *checker) warn(code diag.Code, loc source.Location, msg string) *diag.ReportBuilder {
	return diag.ReportWarning(c.reporter, code, loc, msg)
}
