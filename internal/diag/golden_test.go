package diag

import (
	"testing"

	"layec/internal/source"
)

func span(file source.FileID, off, line, col uint32) source.Span {
	l := source.Location{Offset: off, Line: line, Col: col}
	return source.Span{File: file, Start: l, End: l}
}

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("testdata/sample.ly", []byte("a\nb\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     LexUnknownChar,
			Message:  "first line\nsecond",
			Primary:  span(file, 0, 1, 1),
			Notes:    []Note{{Span: span(file, 2, 2, 1), Msg: "note line"}},
		},
		{
			Severity: SevWarning,
			Code:     LexOperatorHint,
			Message:  "another",
			Primary:  span(file, 2, 2, 1),
		},
	}

	expected := "testdata/sample.ly:1:1: error: first line second\n" +
		"testdata/sample.ly:2:1: note: note line\n" +
		"testdata/sample.ly:2:1: warning: another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	expectedNoNotes := "testdata/sample.ly:1:1: error: first line second\n" +
		"testdata/sample.ly:2:1: warning: another"
	if got := FormatShortDiagnostics(diags, fs, false); got != expectedNoNotes {
		t.Fatalf("unexpected diagnostics without notes:\n%s", got)
	}
}

func TestDiagnosticFormatCanonical(t *testing.T) {
	d := New(SevInfo, LexInfo, span(0, 14, 3, 9), "hello")
	if got := d.Format("main.ly"); got != "main.ly:3:9: info: hello" {
		t.Fatalf("Format = %q", got)
	}
}

func TestCodeID(t *testing.T) {
	if LexUnknownChar.ID() != "LEX1001" {
		t.Fatalf("ID = %s", LexUnknownChar.ID())
	}
	if IOLoadFileError.ID() != "IO4001" {
		t.Fatalf("ID = %s", IOLoadFileError.ID())
	}
	if Code(9999).Title() != "Unknown error" {
		t.Fatalf("Title fallback broken")
	}
}
