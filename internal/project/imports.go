package project

import (
	"path"
	"strings"
)

// SourceExt is appended to import paths written without an extension.
const SourceExt = ".tp"

// ResolveImport joins rel against the directory of the importing file.
// The file name is popped, then every segment of rel is pushed; ".."
// removes the preceding regular segment and is a no-op at an absolute root.
// Leading ".." segments of a relative base are kept.
func ResolveImport(fromFile, rel string) string {
	fromFile = strings.ReplaceAll(fromFile, "\\", "/")
	rel = strings.ReplaceAll(rel, "\\", "/")

	var base string
	if strings.HasPrefix(rel, "/") {
		base = ""
	} else {
		base = path.Dir(fromFile)
		if base == "." {
			base = ""
		}
	}
	absolute := strings.HasPrefix(rel, "/") || strings.HasPrefix(base, "/")

	segments := make([]string, 0, 8)
	push := func(seg string) {
		switch seg {
		case "", ".":
			return
		case "..":
			if n := len(segments); n > 0 && segments[n-1] != ".." {
				segments = segments[:n-1]
				return
			}
			if absolute {
				return
			}
		}
		segments = append(segments, seg)
	}
	for _, seg := range strings.Split(base, "/") {
		push(seg)
	}
	for _, seg := range strings.Split(rel, "/") {
		push(seg)
	}

	out := strings.Join(segments, "/")
	if absolute {
		out = "/" + out
	}
	if out == "" {
		out = "."
	}
	if path.Ext(out) == "" {
		out += SourceExt
	}
	return out
}
