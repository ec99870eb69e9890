package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"talpa/internal/diag"
	"talpa/internal/source"
)

// Pretty печатает диагностики в виде:
//
//	Error in file: <path>
//	<y-1>: <prev line>
//	<y>: <line>
//	<spacing>^-- <message>
//	<y+1>: <next line>
//
// Табы выводятся двумя пробелами; каретка выравнивается по ширине символов.
// Диагностика без позиции печатает только заголовок и сообщение.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i, d := range diags {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, renderOne(d, fs, opts, p)); err != nil {
			return err
		}
	}
	return nil
}

// PrettyString is Pretty into a string.
func PrettyString(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	return renderOne(d, fs, opts, newPalette(opts.Color))
}

type palette struct {
	err, warn, info, caret, gutter, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		caret:  mk(color.FgRed),
		gutter: mk(color.FgBlue),
		note:   mk(color.FgCyan),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

func header(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "Error in file:"
	case diag.SevWarning:
		return "Warning in file:"
	default:
		return "Info in file:"
	}
}

func renderOne(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) string {
	var f *source.File
	if fs != nil {
		f = fs.Get(d.Primary.File)
	}
	msg := d.Message
	if opts.ShowCode {
		msg = fmt.Sprintf("%s [%s]", msg, d.Code.ID())
	}

	var sb strings.Builder
	sb.WriteString(p.severity(d.Severity).Sprint(header(d.Severity)))
	sb.WriteByte(' ')
	sb.WriteString(formatPath(f, fs, opts.PathMode))
	sb.WriteByte('\n')

	if f == nil || d.Primary.IsZero() {
		sb.WriteString(msg)
		sb.WriteByte('\n')
		return sb.String()
	}

	ctx := f.Context(d.Primary)
	writeSnippet(&sb, ctx, msg, p)
	if opts.ShowNotes {
		for _, n := range d.Notes {
			sb.WriteString(p.note.Sprint("note:"))
			sb.WriteByte(' ')
			sb.WriteString(n.Msg)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func writeSnippet(sb *strings.Builder, ctx source.LineContext, msg string, p palette) {
	if ctx.HasPrev && ctx.Line > 1 {
		writeNumbered(sb, p, ctx.Line-1, ctx.Prev)
	}
	writeNumbered(sb, p, ctx.Line, ctx.Text)

	spacing := len(strconv.FormatUint(uint64(ctx.Line), 10)) + 2 + caretColumn(ctx)
	sb.WriteString(strings.Repeat(" ", spacing))
	sb.WriteString(p.caret.Sprint("^--"))
	sb.WriteByte(' ')
	sb.WriteString(msg)
	sb.WriteByte('\n')

	if ctx.HasNext {
		writeNumbered(sb, p, ctx.Line+1, ctx.Next)
	}
}

func writeNumbered(sb *strings.Builder, p palette, line uint32, text string) {
	sb.WriteString(p.gutter.Sprint(strconv.FormatUint(uint64(line), 10) + ":"))
	sb.WriteByte(' ')
	sb.WriteString(expandTabs(text))
	sb.WriteByte('\n')
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "  ")
}

// caretColumn переводит Column (таб = 2) в экранную ширину префикса строки.
func caretColumn(ctx source.LineContext) int {
	col := uint32(0)
	end := len(ctx.Text)
	for i := 0; i < len(ctx.Text); i++ {
		if col >= ctx.Column {
			end = i
			break
		}
		if ctx.Text[i] == '\t' {
			col += 2
		} else {
			col++
		}
	}
	if col < ctx.Column {
		// позиция за концом строки (EOF или '\n')
		return runewidth.StringWidth(expandTabs(ctx.Text)) + int(ctx.Column-col)
	}
	return runewidth.StringWidth(expandTabs(ctx.Text[:end]))
}
