package lexer

import (
	"math/bits"

	"layec/internal/diag"
	"layec/internal/source"
	"layec/internal/token"
)

// scanIdentOrNumber съедает максимальную серию [A-Za-z0-9_].
// Пока в серии только цифры и '_', это целое число; иначе идентификатор,
// Text которого ровно исходный срез. Одиночный "_" тоже число (0), как и
// в самохостном лексере.
func (lx *Lexer) scanIdentOrNumber(start source.Location) token.Token {
	cur := &lx.cursor
	stillNumber := true
	overflow := false
	var value uint64

	for !cur.EOF() && isIdentPart(cur.Rune()) {
		r := cur.Rune()
		if stillNumber {
			switch {
			case r == '_':
			case isDigit(r):
				var ok bool
				value, ok = accumulateDigit(value, uint64(r-'0'))
				overflow = overflow || !ok
			default:
				stillNumber = false
			}
		}
		cur.Advance()
	}

	sp := cur.SpanFrom(start)
	if !stillNumber {
		return token.NewIdent(sp, cur.TextFrom(start))
	}
	if overflow {
		lx.errLex(diag.LexBadNumber, sp, "integer literal does not fit in 64 bits")
	}
	if !cur.EOF() && cur.Rune() == '#' {
		return lx.scanRadixInteger(start, value)
	}
	return token.NewInt(sp, value)
}

// accumulateDigit returns value*10+d modulo 2^64 and whether it fit.
func accumulateDigit(value, d uint64) (uint64, bool) {
	hi, lo := bits.Mul64(value, 10)
	sum, carry := bits.Add64(lo, d, 0)
	return sum, hi == 0 && carry == 0
}
