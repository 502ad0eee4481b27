package lexer

import "layec/internal/diag"

// Stepping selects how far Cursor.Advance moves.
type Stepping uint8

const (
	// StepRune advances by the encoded length of the current rune (1 if it
	// does not decode).
	StepRune Stepping = iota
	// StepByte always advances one byte, like the self-hosted lexer. Offsets
	// drift into the middle of multi-byte runes.
	StepByte
)

func (s Stepping) String() string {
	switch s {
	case StepRune:
		return "rune"
	case StepByte:
		return "byte"
	}
	return "unknown"
}

type Options struct {
	Reporter diag.Reporter // может быть nil, тогда ошибки игнорируем (но продолжаем лексить)
	Stepping Stepping
}
