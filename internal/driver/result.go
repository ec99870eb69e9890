package driver

import (
	"fmt"
	"strconv"
)

func itoa(n int) string { return strconv.Itoa(n) }

// summary is the detail of a file span: "2 errors, 1 warnings (cached)".
func summary(r *FileResult) string {
	s := fmt.Sprintf("%d errors, %d warnings", len(r.Errors()), len(r.Warnings()))
	if r.Cached {
		s += " (cached)"
	}
	return s
}

// Entry returns the result of the entry file.
func (r *Result) Entry() *FileResult {
	if r == nil || len(r.Files) == 0 {
		return nil
	}
	return r.Files[0]
}

// File returns the result for path, if it was compiled.
func (r *Result) File(path string) (*FileResult, bool) {
	if r == nil {
		return nil, false
	}
	path = normalizePath(path)
	for _, f := range r.Files {
		if f.Path == path {
			return f, true
		}
	}
	return nil, false
}

// Failed reports whether any file has errors, or warnings when
// warningsAsErrors is set.
func (r *Result) Failed(warningsAsErrors bool) bool {
	if r == nil {
		return true
	}
	return r.Errors > 0 || (warningsAsErrors && r.Warnings > 0)
}
