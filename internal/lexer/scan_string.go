package lexer

import (
	"layec/internal/buffer"
	"layec/internal/diag"
	"layec/internal/source"
	"layec/internal/token"
)

// scanString: "..." без escape-последовательностей. Value is rebuilt rune by
// rune through the codec. Bytes that do not decode are copied verbatim.
func (lx *Lexer) scanString(start source.Location) token.Token {
	cur := &lx.cursor
	cur.Advance() // opening '"'

	var value buffer.Builder
	for !cur.EOF() {
		r, size := cur.Current()
		if r == '"' {
			cur.Advance()
			return token.NewString(cur.SpanFrom(start), value.FinalizeString())
		}
		if size == 0 {
			value.WriteByte(cur.Byte())
		} else {
			value.WriteRune(r)
		}
		cur.Advance()
	}

	// EOF без закрывающей кавычки
	value.Finalize()
	lx.errLex(diag.LexUnterminatedString, source.PointSpan(cur.File.ID, start), "unfinished string literal")
	return token.NewPunct(token.Poison, cur.SpanFrom(start))
}
