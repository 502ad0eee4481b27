package lexer

import (
	"layec/internal/source"
	"layec/internal/token"
)

// scanRadixInteger handles "<radix>#<digits>". The cursor sits on '#'.
//
// TODO: parse the digits after '#' in base radix once the literal syntax is
// settled. Until then this returns the decimal prefix unchanged and leaves
// '#' for the next token.
func (lx *Lexer) scanRadixInteger(start source.Location, radix uint64) token.Token {
	return token.NewInt(lx.cursor.SpanFrom(start), radix)
}
