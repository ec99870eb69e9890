package diag

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"talpa/internal/source"
)

// FormatShortDiagnostics renders diagnostics in a stable one-line-per-entry
// form: "<severity> <code> <path>:<line>:<col> <message>". Columns are 1-based.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	type entry struct {
		path string
		line uint32
		col  uint32
		d    Diagnostic
	}
	entries := make([]entry, 0, len(diags))
	for _, d := range diags {
		path, line, col := resolveLocation(fs, d.Primary)
		entries = append(entries, entry{path: path, line: line, col: col, d: d})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.path != b.path {
			return a.path < b.path
		}
		if a.line != b.line {
			return a.line < b.line
		}
		if a.col != b.col {
			return a.col < b.col
		}
		if a.d.Severity != b.d.Severity {
			return a.d.Severity > b.d.Severity
		}
		return a.d.Code < b.d.Code
	})

	var sb strings.Builder
	for _, e := range entries {
		writeShortLine(&sb, severityLabel(e.d.Severity), e.d.Code.ID(), e.path, e.line, e.col, e.d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range e.d.Notes {
			path, line, col := resolveLocation(fs, n.Loc)
			writeShortLine(&sb, "note", e.d.Code.ID(), path, line, col, n.Msg)
		}
	}
	return sb.String()
}

func writeShortLine(sb *strings.Builder, sev, code, path string, line, col uint32, msg string) {
	sb.WriteString(sev)
	sb.WriteByte(' ')
	sb.WriteString(code)
	sb.WriteByte(' ')
	sb.WriteString(path)
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(uint64(line), 10))
	sb.WriteByte(':')
	sb.WriteString(strconv.FormatUint(uint64(col), 10))
	sb.WriteByte(' ')
	sb.WriteString(sanitizeMessage(msg))
	sb.WriteByte('\n')
}

func resolveLocation(fs *source.FileSet, loc source.Location) (path string, line, col uint32) {
	if fs == nil {
		return "<unknown>", loc.Line, 0
	}
	f := fs.Get(loc.File)
	if f == nil {
		return "<unknown>", loc.Line, 0
	}
	path = filepath.ToSlash(f.Path)
	if loc.IsZero() && loc.Off == 0 {
		return path, 0, 0
	}
	ctx := f.Context(loc)
	return path, ctx.Line, ctx.Column + 1
}

func severityLabel(s Severity) string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r", " ")
	return strings.ReplaceAll(msg, "\n", " ")
}
