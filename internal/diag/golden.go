package diag

import (
	"strings"

	"layec/internal/source"
)

// FormatShortDiagnostics renders diagnostics one per line in the canonical
// "<path>:<line>:<col>: <severity>: <message>" form, in the given order.
// Notes follow their diagnostic with severity "note". Newlines inside
// messages are folded to spaces so every entry stays on one line.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, d := range diags {
		if i > 0 {
			sb.WriteByte('\n')
		}
		d.Message = oneLine(d.Message)
		sb.WriteString(d.Format(fileName(fs, d.Primary.File)))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			sb.WriteByte('\n')
			note := Diagnostic{Primary: n.Span, Message: oneLine(n.Msg)}
			sb.WriteString(strings.Replace(note.Format(fileName(fs, n.Span.File)), ": info: ", ": note: ", 1))
		}
	}
	return sb.String()
}

func fileName(fs *source.FileSet, id source.FileID) string {
	if fs == nil {
		return "<unknown>"
	}
	if f := fs.Get(id); f != nil {
		return f.Name()
	}
	return "<unknown>"
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
