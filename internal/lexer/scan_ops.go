package lexer

import (
	"layec/internal/buffer"
	"layec/internal/diag"
	"layec/internal/source"
	"layec/internal/token"
)

var singleRunePunct = map[rune]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	'.': token.Dot,
	'?': token.Question,
	';': token.Semicolon,
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'~': token.Tilde,
}

// scanOperatorOrPunct: жадно, с заглядыванием на одну руну вперёд.
// Returns false when the current rune starts no punctuator.
func (lx *Lexer) scanOperatorOrPunct(start source.Location) (token.Token, bool) {
	cur := &lx.cursor
	r := cur.Rune()

	// emit съедает n шагов и строит токен
	emit := func(n int, k token.Kind) token.Token {
		for range n {
			cur.Advance()
		}
		return token.NewPunct(k, cur.SpanFrom(start))
	}

	next := cur.PeekRune()
	switch r {
	case ':':
		if next == ':' {
			return emit(2, token.ColonColon), true
		}
		return emit(1, token.Colon), true
	case '<':
		switch next {
		case '<':
			return emit(2, token.Shl), true
		case '=':
			return emit(2, token.LtEq), true
		}
		return emit(1, token.Lt), true
	case '>':
		switch next {
		case '>':
			return emit(2, token.Shr), true
		case '=':
			return emit(2, token.GtEq), true
		}
		return emit(1, token.Gt), true
	case '=':
		if next == '=' {
			return emit(2, token.EqEq), true
		}
		return emit(1, token.Assign), true
	case '!':
		switch next {
		case '<':
			return emit(2, token.BangLt), true
		case '=':
			return emit(2, token.BangEq), true
		case '>':
			return emit(2, token.BangGt), true
		}
		tok := emit(1, token.Poison)
		lx.errLex(diag.LexInvalidOperator, tok.Span, "invalid token `!` (did you mean `not`?)")
		return tok, true
	case '&':
		if next == '&' {
			tok := emit(2, token.Poison)
			lx.wordOperatorHint(tok.Span, "&", "and", "bitwise-and")
			return tok, true
		}
		return emit(1, token.Amp), true
	case '|':
		if next == '|' {
			tok := emit(2, token.Poison)
			lx.wordOperatorHint(tok.Span, "|", "or", "bitwise-or")
			return tok, true
		}
		return emit(1, token.Pipe), true
	}

	if k, ok := singleRunePunct[r]; ok {
		return emit(1, k), true
	}
	return token.Token{}, false
}

// wordOperatorHint reports "&&"/"||": a warning pointing at the keyword
// spelling plus an info explaining the single-symbol operator.
func (lx *Lexer) wordOperatorHint(sp source.Span, sym, word, bitwise string) {
	var b buffer.Builder
	b.WriteString("did you mean `")
	b.WriteString(word)
	b.WriteString("`?")
	lx.warnLex(diag.LexOperatorHint, sp, b.FinalizeString())

	var note buffer.Builder
	note.WriteString("`")
	note.WriteString(sym)
	note.WriteString(sym)
	note.WriteString("` is not an operator in Laye; `")
	note.WriteString(sym)
	note.WriteString("` is ")
	note.WriteString(bitwise)
	note.WriteString(" and the logical operator is spelled `")
	note.WriteString(word)
	note.WriteString("`")
	lx.infoLex(diag.LexOperatorHint, sp, note.FinalizeString())
}

// scanUnknown съедает одну руну и сообщает о ней.
func (lx *Lexer) scanUnknown(start source.Location) token.Token {
	cur := &lx.cursor
	r, size := cur.Current()
	raw := cur.Byte()
	cur.Advance()
	sp := cur.SpanFrom(start)

	var msg buffer.Builder
	if size == 0 {
		msg.WriteString("invalid UTF-8 byte 0x")
		msg.WriteHex(uint64(raw), 2)
		msg.WriteString(" in lexer")
	} else {
		msg.WriteString("unrecognized character `")
		msg.WriteRune(r)
		msg.WriteString("` (U+")
		msg.WriteHex(uint64(r), 4)
		msg.WriteString(") in lexer")
	}
	lx.errLex(diag.LexUnknownChar, sp, msg.FinalizeString())
	return token.NewPunct(token.Poison, sp)
}
