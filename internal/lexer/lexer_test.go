package lexer_test

import (
	"reflect"
	"strings"
	"testing"

	"layec/internal/diag"
	"layec/internal/lexer"
	"layec/internal/source"
	"layec/internal/token"
)

// lexAll прогоняет Tokenize и возвращает токены вместе с диагностиками
func lexAll(t *testing.T, input string, step lexer.Stepping) ([]token.Token, []diag.Diagnostic, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ly", []byte(input)))
	bag := diag.NewBag()
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, Stepping: step})
	return toks, bag.Items(), file
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Kind)
	}
	return out
}

func countSeverity(diags []diag.Diagnostic, sev diag.Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// reconstruct склеивает leading + токен + trailing обратно в текст
func reconstruct(toks []token.Token, f *source.File) string {
	var sb strings.Builder
	for _, tok := range toks {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Span.Text(f))
		}
		sb.WriteString(tok.Span.Text(f))
		for _, tr := range tok.Trailing {
			sb.WriteString(tr.Span.Text(f))
		}
	}
	return sb.String()
}

func TestSpecExamples(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		toks, diags, _ := lexAll(t, "123", lexer.StepRune)
		if !reflect.DeepEqual(kinds(toks), []token.Kind{token.IntLit, token.EOF}) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
		if toks[0].Int != 123 || toks[0].Span.Start.Offset != 0 || toks[0].Span.End.Offset != 3 {
			t.Fatalf("token = %+v", toks[0])
		}
		if len(diags) != 0 {
			t.Fatalf("unexpected diagnostics: %v", diags)
		}
	})

	t.Run("identifier", func(t *testing.T) {
		toks, _, _ := lexAll(t, "a1", lexer.StepRune)
		if toks[0].Kind != token.Ident || toks[0].Text != "a1" {
			t.Fatalf("token = %+v", toks[0])
		}
	})

	t.Run("underscore digits", func(t *testing.T) {
		toks, _, _ := lexAll(t, "1_000", lexer.StepRune)
		if toks[0].Kind != token.IntLit || toks[0].Int != 1000 {
			t.Fatalf("token = %+v", toks[0])
		}
		if len(toks) != 2 {
			t.Fatalf("want one token plus EOF, got %v", kinds(toks))
		}
	})

	t.Run("double ampersand", func(t *testing.T) {
		toks, diags, _ := lexAll(t, "&&", lexer.StepRune)
		if !reflect.DeepEqual(kinds(toks), []token.Kind{token.Poison, token.EOF}) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
		if toks[0].Span.Len() != 2 {
			t.Fatalf("poison span = %v", toks[0].Span)
		}
		if countSeverity(diags, diag.SevWarning) != 1 || countSeverity(diags, diag.SevInfo) != 1 || countSeverity(diags, diag.SevError) != 0 {
			t.Fatalf("diagnostics = %+v", diags)
		}
		if diags[0].Message != "did you mean `and`?" {
			t.Fatalf("warning = %q", diags[0].Message)
		}
	})

	t.Run("colon colon", func(t *testing.T) {
		toks, _, _ := lexAll(t, "::", lexer.StepRune)
		if !reflect.DeepEqual(kinds(toks), []token.Kind{token.ColonColon, token.EOF}) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
	})

	t.Run("unterminated block comment", func(t *testing.T) {
		src := "/* unterminated"
		toks, diags, _ := lexAll(t, src, lexer.StepRune)
		if !reflect.DeepEqual(kinds(toks), []token.Kind{token.EOF}) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
		eof := toks[0]
		if eof.Span.Start.Offset != uint32(len(src)) {
			t.Fatalf("EOF at %d, want %d", eof.Span.Start.Offset, len(src))
		}
		if len(eof.Leading) != 0 || len(eof.Trailing) != 0 {
			t.Fatalf("unterminated comment leaked into trivia: %+v", eof)
		}
		if len(diags) != 1 || diags[0].Severity != diag.SevError || diags[0].Message != "unfinished block comment" {
			t.Fatalf("diagnostics = %+v", diags)
		}
		if diags[0].Code != diag.LexUnterminatedBlockComment {
			t.Fatalf("code = %v", diags[0].Code)
		}
		if diags[0].Primary.Start.Offset != 0 || diags[0].Primary.End.Offset != uint32(len(src)) {
			t.Fatalf("diagnostic span = %v", diags[0].Primary)
		}
	})
}

func TestPunctuators(t *testing.T) {
	tests := []struct {
		input string
		want  []token.Kind
	}{
		{"( ) [ ] { }", []token.Kind{token.LParen, token.RParen, token.LBracket, token.RBracket, token.LBrace, token.RBrace, token.EOF}},
		{", . ? ;", []token.Kind{token.Comma, token.Dot, token.Question, token.Semicolon, token.EOF}},
		{"+ - * / % ~", []token.Kind{token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Tilde, token.EOF}},
		{": :: :::", []token.Kind{token.Colon, token.ColonColon, token.ColonColon, token.Colon, token.EOF}},
		{"< << <= <<=", []token.Kind{token.Lt, token.Shl, token.LtEq, token.Shl, token.Assign, token.EOF}},
		{"> >> >=", []token.Kind{token.Gt, token.Shr, token.GtEq, token.EOF}},
		{"= == ===", []token.Kind{token.Assign, token.EqEq, token.EqEq, token.Assign, token.EOF}},
		{"!< != !>", []token.Kind{token.BangLt, token.BangEq, token.BangGt, token.EOF}},
		{"& |", []token.Kind{token.Amp, token.Pipe, token.EOF}},
		{"a::b", []token.Kind{token.Ident, token.ColonColon, token.Ident, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, diags, _ := lexAll(t, tt.input, lexer.StepRune)
			if !reflect.DeepEqual(kinds(toks), tt.want) {
				t.Fatalf("kinds = %v, want %v", kinds(toks), tt.want)
			}
			if len(diags) != 0 {
				t.Fatalf("unexpected diagnostics: %+v", diags)
			}
		})
	}
}

func TestOperatorDiagnostics(t *testing.T) {
	tests := []struct {
		input   string
		code    diag.Code
		sev     diag.Severity
		message string
		total   int
	}{
		{"!", diag.LexInvalidOperator, diag.SevError, "invalid token `!` (did you mean `not`?)", 1},
		{"||", diag.LexOperatorHint, diag.SevWarning, "did you mean `or`?", 2},
		{"&&", diag.LexOperatorHint, diag.SevWarning, "did you mean `and`?", 2},
		{"$", diag.LexUnknownChar, diag.SevError, "unrecognized character `$` (U+0024) in lexer", 1},
		{"é", diag.LexUnknownChar, diag.SevError, "unrecognized character `é` (U+00E9) in lexer", 1},
		{"\xff", diag.LexUnknownChar, diag.SevError, "invalid UTF-8 byte 0xFF in lexer", 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, diags, _ := lexAll(t, tt.input, lexer.StepRune)
			if toks[0].Kind != token.Poison {
				t.Fatalf("kind = %v, want Poison", toks[0].Kind)
			}
			if len(diags) != tt.total {
				t.Fatalf("got %d diagnostics, want %d: %+v", len(diags), tt.total, diags)
			}
			d := diags[0]
			if d.Code != tt.code || d.Severity != tt.sev || d.Message != tt.message {
				t.Fatalf("diagnostic = [%s] %s: %q", d.Code.ID(), d.Severity, d.Message)
			}
			if d.Primary != toks[0].Span {
				t.Fatalf("diagnostic span %v != token span %v", d.Primary, toks[0].Span)
			}
		})
	}
}

func TestIdentifiersAndNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
		value uint64
	}{
		{"foo", token.Ident, "foo", 0},
		{"_a", token.Ident, "_a", 0},
		{"1a", token.Ident, "1a", 0},
		{"a_1_b", token.Ident, "a_1_b", 0},
		{"_", token.IntLit, "", 0},
		{"__1", token.IntLit, "", 1},
		{"0", token.IntLit, "", 0},
		{"18446744073709551615", token.IntLit, "", 18446744073709551615},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			toks, diags, _ := lexAll(t, tt.input, lexer.StepRune)
			tok := toks[0]
			if tok.Kind != tt.kind || tok.Text != tt.text || tok.Int != tt.value {
				t.Fatalf("token = %+v", tok)
			}
			if len(toks) != 2 || len(diags) != 0 {
				t.Fatalf("tokens %v, diagnostics %+v", kinds(toks), diags)
			}
		})
	}
}

func TestKeywordsStayIdentifiers(t *testing.T) {
	toks, _, _ := lexAll(t, "if while foo", lexer.StepRune)
	if !reflect.DeepEqual(kinds(toks), []token.Kind{token.Ident, token.Ident, token.Ident, token.EOF}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if kw, ok := toks[0].Keyword(); !ok || kw != token.KwIf {
		t.Fatalf("Keyword() = %v, %v", kw, ok)
	}
	if _, ok := toks[2].Keyword(); ok {
		t.Fatalf("foo is not a keyword")
	}
}

func TestIntegerOverflowWraps(t *testing.T) {
	toks, diags, _ := lexAll(t, "18446744073709551616", lexer.StepRune)
	if toks[0].Kind != token.IntLit || toks[0].Int != 0 {
		t.Fatalf("token = %+v", toks[0])
	}
	if len(diags) != 1 || diags[0].Code != diag.LexBadNumber {
		t.Fatalf("diagnostics = %+v", diags)
	}
}

func TestRadixPrefixIsIncomplete(t *testing.T) {
	toks, diags, _ := lexAll(t, "16#ff", lexer.StepRune)
	want := []token.Kind{token.IntLit, token.Poison, token.Ident, token.EOF}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v, want %v", kinds(toks), want)
	}
	if toks[0].Int != 16 || toks[0].Span.End.Offset != 2 {
		t.Fatalf("radix prefix = %+v", toks[0])
	}
	if len(diags) != 1 || diags[0].Message != "unrecognized character `#` (U+0023) in lexer" {
		t.Fatalf("diagnostics = %+v", diags)
	}
}

func TestStrings(t *testing.T) {
	toks, diags, _ := lexAll(t, `"héllo" "" x`, lexer.StepRune)
	want := []token.Kind{token.StringLit, token.StringLit, token.Ident, token.EOF}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if toks[0].Text != "héllo" || toks[0].Span.Len() != 8 {
		t.Fatalf("string = %+v", toks[0])
	}
	if toks[1].Text != "" || toks[1].Span.Len() != 2 {
		t.Fatalf("empty string = %+v", toks[1])
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
}

func TestUnterminatedStringIsPoison(t *testing.T) {
	src := "x \"abc"
	toks, diags, _ := lexAll(t, src, lexer.StepRune)
	want := []token.Kind{token.Ident, token.Poison, token.EOF}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	str := toks[1]
	if str.Span.Start.Offset != 2 || str.Span.End.Offset != uint32(len(src)) {
		t.Fatalf("poison span = %v", str.Span)
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %+v", diags)
	}
	d := diags[0]
	if d.Code != diag.LexUnterminatedString || d.Message != "unfinished string literal" {
		t.Fatalf("diagnostic = %+v", d)
	}
	if !d.Primary.Empty() || d.Primary.Start.Offset != 2 || d.Primary.Start.Col != 3 {
		t.Fatalf("diagnostic should point at the opening quote: %v", d.Primary)
	}
}

func TestTrivia(t *testing.T) {
	src := "a + b // c\n  /* x /* y */ z */d\n"
	toks, diags, f := lexAll(t, src, lexer.StepRune)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	want := []token.Kind{token.Ident, token.Plus, token.Ident, token.Ident, token.EOF}
	if !reflect.DeepEqual(kinds(toks), want) {
		t.Fatalf("kinds = %v", kinds(toks))
	}

	b := toks[2]
	if len(b.Trailing) != 2 || b.Trailing[0].Kind != token.TriviaWhitespace || b.Trailing[1].Kind != token.TriviaLineComment {
		t.Fatalf("b trailing = %+v", b.Trailing)
	}
	if got := b.Trailing[1].Span.Text(f); got != "// c\n" {
		t.Fatalf("line comment = %q", got)
	}

	d := toks[3]
	if len(d.Leading) != 2 || d.Leading[0].Kind != token.TriviaWhitespace || d.Leading[1].Kind != token.TriviaBlockComment {
		t.Fatalf("d leading = %+v", d.Leading)
	}
	if got := d.Leading[1].Span.Text(f); got != "/* x /* y */ z */" {
		t.Fatalf("block comment = %q", got)
	}
	if d.Span.Start.Line != 2 || d.Span.Start.Col != 20 {
		t.Fatalf("d at %s", d.Span.Start)
	}
	if len(d.Trailing) != 1 || d.Trailing[0].Span.Text(f) != "\n" {
		t.Fatalf("d trailing = %+v", d.Trailing)
	}
}

func TestTrailingTriviaStopsAtLineEnd(t *testing.T) {
	toks, _, f := lexAll(t, "a \n b", lexer.StepRune)
	a, b := toks[0], toks[1]
	if len(a.Trailing) != 1 || a.Trailing[0].Span.Text(f) != " \n" {
		t.Fatalf("a trailing = %+v", a.Trailing)
	}
	if len(b.Leading) != 1 || b.Leading[0].Span.Text(f) != " " {
		t.Fatalf("b leading = %+v", b.Leading)
	}
	if b.Span.Start.Line != 2 || b.Span.Start.Col != 2 {
		t.Fatalf("b at %s", b.Span.Start)
	}
}

func TestUnterminatedCommentKeepsEarlierTrivia(t *testing.T) {
	toks, diags, _ := lexAll(t, "a /* x", lexer.StepRune)
	if !reflect.DeepEqual(kinds(toks), []token.Kind{token.Ident, token.EOF}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
	if len(toks[0].Trailing) != 1 || toks[0].Trailing[0].Kind != token.TriviaWhitespace {
		t.Fatalf("trailing = %+v", toks[0].Trailing)
	}
	if len(diags) != 1 || diags[0].Primary.Start.Offset != 2 {
		t.Fatalf("diagnostics = %+v", diags)
	}
}

func TestEOFToken(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		offset  uint32
		leading int
	}{
		{"empty", "", 0, 0},
		{"whitespace only", "  \n\t", 4, 1},
		{"comment only", "// c", 4, 1},
		{"nul terminates", "a\x00b", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, _, _ := lexAll(t, tt.input, lexer.StepRune)
			eof := toks[len(toks)-1]
			if eof.Kind != token.EOF || !eof.Span.Empty() || eof.Span.Start.Offset != tt.offset {
				t.Fatalf("eof = %+v", eof)
			}
			if len(eof.Leading) != tt.leading {
				t.Fatalf("eof leading = %+v", eof.Leading)
			}
			for _, tok := range toks[:len(toks)-1] {
				if tok.Kind == token.EOF {
					t.Fatalf("EOF before the end: %v", kinds(toks))
				}
			}
		})
	}
}

func TestInvalidFileYieldsNothing(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddInvalid("missing.ly", nil))
	bag := diag.NewBag()
	if toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}); toks != nil {
		t.Fatalf("want nil tokens, got %v", kinds(toks))
	}
	if bag.Len() != 0 {
		t.Fatalf("invalid file should not produce diagnostics")
	}
}

var propertyInputs = []string{
	"",
	"123",
	"let x = a1 + 1_000; // done\n",
	"&& || ! !< :: $ 16#ff",
	"/* a /* b */ c */ f(x, y)\r\n\tg[0] <<= 2",
	"\"héllo wörld\" λ 😀 x",
	"\"open",
	"a /* never closed",
	"\xff\xfe ok",
}

func TestCoverage(t *testing.T) {
	for _, step := range []lexer.Stepping{lexer.StepRune, lexer.StepByte} {
		for _, in := range propertyInputs {
			if strings.Contains(in, "never closed") {
				continue
			}
			toks, _, f := lexAll(t, in, step)
			if got := reconstruct(toks, f); got != in {
				t.Errorf("%s: reconstruct(%q) = %q", step, in, got)
			}
		}
	}
}

func TestCoverageDropsUnterminatedComment(t *testing.T) {
	in := "a /* never closed"
	toks, _, f := lexAll(t, in, lexer.StepRune)
	if got := reconstruct(toks, f); got != "a " {
		t.Fatalf("reconstruct = %q", got)
	}
}

func TestIdempotence(t *testing.T) {
	for _, step := range []lexer.Stepping{lexer.StepRune, lexer.StepByte} {
		for _, in := range propertyInputs {
			t1, d1, _ := lexAll(t, in, step)
			t2, d2, _ := lexAll(t, in, step)
			if !reflect.DeepEqual(t1, t2) || !reflect.DeepEqual(d1, d2) {
				t.Errorf("%s: non-deterministic result for %q", step, in)
			}
		}
	}
}

func TestProgress(t *testing.T) {
	for _, step := range []lexer.Stepping{lexer.StepRune, lexer.StepByte} {
		for _, in := range propertyInputs {
			fs := source.NewFileSet()
			lx := lexer.New(fs.Get(fs.AddVirtual("p.ly", []byte(in))), lexer.Options{Stepping: step})
			calls := 0
			for {
				prev := lx.Cursor().Off
				tok := lx.Next()
				calls++
				if tok.Kind == token.EOF {
					break
				}
				if lx.Cursor().Off <= prev {
					t.Fatalf("%s: no progress on %q at %d", step, in, prev)
				}
				if calls > len(in)+1 {
					t.Fatalf("%s: too many calls for %q", step, in)
				}
			}
		}
	}
}

func TestMultiByteStepping(t *testing.T) {
	t.Run("rune", func(t *testing.T) {
		toks, diags, _ := lexAll(t, "é x", lexer.StepRune)
		want := []token.Kind{token.Poison, token.Ident, token.EOF}
		if !reflect.DeepEqual(kinds(toks), want) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
		if toks[0].Span.Len() != 2 || len(diags) != 1 {
			t.Fatalf("poison %v, diagnostics %+v", toks[0].Span, diags)
		}
		if x := toks[1]; x.Span.Start.Offset != 3 || x.Span.Start.Col != 3 {
			t.Fatalf("x at offset %d col %d", x.Span.Start.Offset, x.Span.Start.Col)
		}
	})

	t.Run("byte", func(t *testing.T) {
		toks, diags, _ := lexAll(t, "é x", lexer.StepByte)
		want := []token.Kind{token.Poison, token.Poison, token.Ident, token.EOF}
		if !reflect.DeepEqual(kinds(toks), want) {
			t.Fatalf("kinds = %v", kinds(toks))
		}
		if len(diags) != 2 {
			t.Fatalf("diagnostics = %+v", diags)
		}
		if diags[0].Message != "unrecognized character `é` (U+00E9) in lexer" {
			t.Fatalf("first = %q", diags[0].Message)
		}
		if diags[1].Message != "invalid UTF-8 byte 0xA9 in lexer" {
			t.Fatalf("second = %q", diags[1].Message)
		}
		if x := toks[2]; x.Span.Start.Offset != 3 || x.Span.Start.Col != 4 {
			t.Fatalf("x at offset %d col %d", x.Span.Start.Offset, x.Span.Start.Col)
		}
	})

	t.Run("ascii agrees", func(t *testing.T) {
		in := "let x = a1 + 1_000; // done\n"
		byRune, _, _ := lexAll(t, in, lexer.StepRune)
		byByte, _, _ := lexAll(t, in, lexer.StepByte)
		if !reflect.DeepEqual(byRune, byByte) {
			t.Fatalf("stepping modes disagree on ASCII input")
		}
	})

	t.Run("byte string", func(t *testing.T) {
		toks, _, _ := lexAll(t, `"é"`, lexer.StepByte)
		if toks[0].Kind != token.StringLit || toks[0].Text != "é\xa9" {
			t.Fatalf("string = %q", toks[0].Text)
		}
	})
}

func TestPeek(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("peek.ly", []byte("a b"))), lexer.Options{})
	p := lx.Peek()
	n := lx.Next()
	if !reflect.DeepEqual(p, n) || n.Text != "a" {
		t.Fatalf("peek %+v, next %+v", p, n)
	}
	if lx.Next().Text != "b" {
		t.Fatalf("expected b")
	}
	for range 3 {
		if k := lx.Next().Kind; k != token.EOF {
			t.Fatalf("after end got %v", k)
		}
	}
}

func TestNilReporterKeepsLexing(t *testing.T) {
	fs := source.NewFileSet()
	toks := lexer.Tokenize(fs.Get(fs.AddVirtual("nil.ly", []byte("$ a"))), lexer.Options{})
	if !reflect.DeepEqual(kinds(toks), []token.Kind{token.Poison, token.Ident, token.EOF}) {
		t.Fatalf("kinds = %v", kinds(toks))
	}
}
