package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"layec/internal/source"
	"layec/internal/token"
)

// PosOutput is a cursor snapshot in machine-readable dumps.
type PosOutput struct {
	Offset uint32 `json:"offset" msgpack:"offset"`
	Line   uint32 `json:"line" msgpack:"line"`
	Col    uint32 `json:"col" msgpack:"col"`
}

type TriviaOutput struct {
	Kind string `json:"kind" msgpack:"kind"`
	Text string `json:"text" msgpack:"text"`
}

type TokenOutput struct {
	Kind     string         `json:"kind" msgpack:"kind"`
	Text     string         `json:"text,omitempty" msgpack:"text,omitempty"`
	Value    any            `json:"value,omitempty" msgpack:"value,omitempty"`
	Keyword  string         `json:"keyword,omitempty" msgpack:"keyword,omitempty"`
	Start    PosOutput      `json:"start" msgpack:"start"`
	End      PosOutput      `json:"end" msgpack:"end"`
	Leading  []TriviaOutput `json:"leading,omitempty" msgpack:"leading,omitempty"`
	Trailing []TriviaOutput `json:"trailing,omitempty" msgpack:"trailing,omitempty"`
}

// BuildTokenOutput converts tokens into the dump form shared by JSON and
// msgpack. Text is the exact source image of the token.
func BuildTokenOutput(tokens []token.Token, f *source.File) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		o := TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Span.Text(f),
			Start:    pos(tok.Span.Start),
			End:      pos(tok.Span.End),
			Leading:  trivia(tok.Leading, f),
			Trailing: trivia(tok.Trailing, f),
		}
		if v, ok := tok.Payload(); ok && tok.Kind != token.Ident {
			o.Value = v
		}
		if kw, ok := tok.Keyword(); ok {
			o.Keyword = kw.String()
		}
		out = append(out, o)
	}
	return out
}

func pos(l source.Location) PosOutput {
	return PosOutput{Offset: l.Offset, Line: l.Line, Col: l.Col}
}

func trivia(ts []token.Trivia, f *source.File) []TriviaOutput {
	if len(ts) == 0 {
		return nil
	}
	out := make([]TriviaOutput, len(ts))
	for i, tr := range ts {
		out[i] = TriviaOutput{Kind: tr.Kind.String(), Text: tr.Span.Text(f)}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате:
//
//	  1: Ident      "foo"          1:1-1:4  (leading: Whitespace)
func FormatTokensPretty(w io.Writer, tokens []token.Token, f *source.File, opts TokenOpts) error {
	width := opts.Width
	if width <= 0 {
		width = 24
	}
	var sb strings.Builder
	for i, tok := range tokens {
		fmt.Fprintf(&sb, "%4d: %-11s ", i+1, tok.Kind.String())

		payload := payloadText(tok)
		payload = runewidth.Truncate(payload, width, "…")
		sb.WriteString(runewidth.FillRight(payload, width))

		fmt.Fprintf(&sb, " %d:%d-%d:%d",
			tok.Span.Start.Line, tok.Span.Start.Col,
			tok.Span.End.Line, tok.Span.End.Col)

		if len(tok.Leading) > 0 {
			fmt.Fprintf(&sb, "  (leading: %s)", triviaKinds(tok.Leading))
		}
		if opts.ShowTrivia && len(tok.Trailing) > 0 {
			fmt.Fprintf(&sb, "  (trailing: %s)", triviaKinds(tok.Trailing))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func payloadText(tok token.Token) string {
	switch tok.Kind {
	case token.Ident:
		if kw, ok := tok.Keyword(); ok {
			return tok.Text + " (" + kw.String() + ")"
		}
		return tok.Text
	case token.StringLit:
		return strconv.Quote(tok.Text)
	case token.IntLit:
		return strconv.FormatUint(tok.Int, 10)
	case token.FloatLit:
		return strconv.FormatFloat(tok.Float, 'g', -1, 64)
	case token.CharLit:
		return strconv.QuoteRune(tok.Char)
	}
	return tok.Kind.Spelling()
}

func triviaKinds(ts []token.Trivia) string {
	parts := make([]string, len(ts))
	for i, tr := range ts {
		parts[i] = tr.Kind.String()
	}
	return strings.Join(parts, ", ")
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, f *source.File) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTokenOutput(tokens, f))
}

// FormatTokensMsgpack пишет тот же дамп в msgpack.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token, f *source.File) error {
	return msgpack.NewEncoder(w).Encode(BuildTokenOutput(tokens, f))
}
