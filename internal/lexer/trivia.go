package lexer

import (
	"layec/internal/buffer"
	"layec/internal/diag"
	"layec/internal/token"
)

// scanTrivia собирает подряд идущие trivia в порядке появления.
//   - пробельные символы -> TriviaWhitespace (одна непрерывная серия)
//   - //... включая '\n' -> TriviaLineComment
//   - /* ... */ с вложенностью -> TriviaBlockComment
//
// With stopAtLineEnd the scan ends right after the first piece that consumes
// a newline, so trailing trivia never reaches into the next line.
// An unterminated block comment is reported and ends the scan; the broken
// piece is dropped and only the trivia before it is returned.
func (lx *Lexer) scanTrivia(stopAtLineEnd bool) []token.Trivia {
	out := buffer.NewList[token.Trivia](0)
	cur := &lx.cursor
	for !cur.EOF() {
		start := cur.Location()
		r := cur.Rune()

		var kind token.TriviaKind
		sawNewline := false
		switch {
		case isWhitespace(r):
			kind = token.TriviaWhitespace
			for !cur.EOF() && isWhitespace(cur.Rune()) {
				nl := cur.Rune() == '\n'
				cur.Advance()
				if nl && stopAtLineEnd {
					sawNewline = true
					break
				}
			}

		case r == '/' && cur.PeekRune() == '/':
			kind = token.TriviaLineComment
			for !cur.EOF() {
				nl := cur.Rune() == '\n'
				cur.Advance()
				if nl {
					sawNewline = true
					break
				}
			}

		case r == '/' && cur.PeekRune() == '*':
			kind = lx.scanBlockComment()

		default:
			return out.Finalize()
		}

		sp := cur.SpanFrom(start)
		if kind == token.TriviaInvalid {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unfinished block comment")
			return out.Finalize()
		}
		out.Append(token.Trivia{Kind: kind, Span: sp})
		if sawNewline && stopAtLineEnd {
			break
		}
	}
	return out.Finalize()
}

// scanBlockComment consumes "/* ... */" honouring nesting. The cursor sits
// on the opening '/'.
func (lx *Lexer) scanBlockComment() token.TriviaKind {
	cur := &lx.cursor
	cur.Advance() // '/'
	cur.Advance() // '*'
	depth := 1
	for !cur.EOF() {
		r := cur.Rune()
		cur.Advance()
		switch {
		case r == '/' && cur.Rune() == '*':
			cur.Advance()
			depth++
		case r == '*' && cur.Rune() == '/':
			cur.Advance()
			depth--
			if depth == 0 {
				return token.TriviaBlockComment
			}
		}
	}
	return token.TriviaInvalid
}
