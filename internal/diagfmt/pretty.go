package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"layec/internal/diag"
	"layec/internal/source"
)

type palette struct {
	err, warn, info, note, code, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		code:   color.New(color.Faint),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.code, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
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

// Pretty форматирует диагностики в человекочитаемый вид, в порядке Bag.
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <sev>[<CODE>]: <message>
//	   3 | let x = $;
//	     |         ^
//
// затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	items := bag.Items()
	shown := len(items)
	if opts.Max > 0 && opts.Max < shown {
		shown = opts.Max
	}

	var sb strings.Builder
	for _, d := range items[:shown] {
		path := displayPath(fs, d.Primary.File, opts.PathMode)
		fmt.Fprintf(&sb, "%s:%d:%d: %s%s: %s\n",
			path, d.Primary.Start.Line, d.Primary.Start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprintf("[%s]", d.Code.ID()),
			d.Message)
		writeSnippet(&sb, fs, d.Primary, p, opts.Width)

		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  %s: %s\n", p.note.Sprint("note"), n.Msg)
			writeSnippet(&sb, fs, n.Span, p, opts.Width)
		}
	}
	if hidden := len(items) - shown; hidden > 0 {
		fmt.Fprintf(&sb, "... and %d more diagnostic(s)\n", hidden)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeSnippet печатает строку исходника и подчёркивание ^~~~ под span.
// Spans that cross a line end are underlined up to the end of the first line.
func writeSnippet(sb *strings.Builder, fs *source.FileSet, sp source.Span, p palette, width int) {
	if fs == nil || sp.Start.Line == 0 {
		return
	}
	f := fs.Get(sp.File)
	if f == nil || !f.Valid() {
		return
	}
	line := strings.TrimRight(f.GetLine(sp.Start.Line), "\r")
	begin := lineStart(f, sp.Start.Line)
	if sp.Start.Offset < begin || int(sp.Start.Offset-begin) > len(line) {
		return
	}
	col := int(sp.Start.Offset - begin)
	end := col + int(sp.Len())
	if end > len(line) {
		end = len(line)
	}

	pad := caretPadding(line[:col])
	marks := runewidth.StringWidth(line[col:end])
	if marks < 1 {
		marks = 1
	}
	if width > 0 {
		line = runewidth.Truncate(line, width, "…")
	}

	num := fmt.Sprintf("%d", sp.Start.Line)
	gutter := strings.Repeat(" ", len(num))
	fmt.Fprintf(sb, " %s %s %s\n", p.gutter.Sprint(num), p.gutter.Sprint("|"), line)
	fmt.Fprintf(sb, " %s %s %s%s\n", gutter, p.gutter.Sprint("|"), pad,
		p.caret.Sprint("^"+strings.Repeat("~", marks-1)))
}

// caretPadding повторяет ширину префикса строки: табы остаются табами,
// широкие руны дают два пробела.
func caretPadding(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}
