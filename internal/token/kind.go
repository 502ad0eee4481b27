package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// Poison is a recognised but invalid lexeme; a diagnostic accompanies it.
	Poison

	// Ident represents an identifier token.
	Ident
	// IntLit represents the integer literal token.
	IntLit
	// FloatLit is reserved; the lexer does not produce it yet.
	FloatLit
	// CharLit is reserved; the lexer does not produce it yet.
	CharLit
	// StringLit represents the string literal token.
	StringLit

	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Dot       // .
	Question  // ?
	Semicolon // ;

	Colon      // :
	ColonColon // ::

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Tilde   // ~

	Assign // =
	EqEq   // ==
	Lt     // <
	LtEq   // <=
	Shl    // <<
	Gt     // >
	GtEq   // >=
	Shr    // >>
	BangLt // !<
	BangEq // !=
	BangGt // !>
	Amp    // &
	Pipe   // |

	kindCount
)

var kindNames = [...]string{
	EOF:        "EOF",
	Poison:     "Poison",
	Ident:      "Ident",
	IntLit:     "IntLit",
	FloatLit:   "FloatLit",
	CharLit:    "CharLit",
	StringLit:  "StringLit",
	LParen:     "LParen",
	RParen:     "RParen",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Comma:      "Comma",
	Dot:        "Dot",
	Question:   "Question",
	Semicolon:  "Semicolon",
	Colon:      "Colon",
	ColonColon: "ColonColon",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Percent:    "Percent",
	Tilde:      "Tilde",
	Assign:     "Assign",
	EqEq:       "EqEq",
	Lt:         "Lt",
	LtEq:       "LtEq",
	Shl:        "Shl",
	Gt:         "Gt",
	GtEq:       "GtEq",
	Shr:        "Shr",
	BangLt:     "BangLt",
	BangEq:     "BangEq",
	BangGt:     "BangGt",
	Amp:        "Amp",
	Pipe:       "Pipe",
}

var kindSpelling = [...]string{
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
	Comma:      ",",
	Dot:        ".",
	Question:   "?",
	Semicolon:  ";",
	Colon:      ":",
	ColonColon: "::",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Tilde:      "~",
	Assign:     "=",
	EqEq:       "==",
	Lt:         "<",
	LtEq:       "<=",
	Shl:        "<<",
	Gt:         ">",
	GtEq:       ">=",
	Shr:        ">>",
	BangLt:     "!<",
	BangEq:     "!=",
	BangGt:     "!>",
	Amp:        "&",
	Pipe:       "|",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Spelling returns the fixed source text of a punctuator, or "" for kinds
// whose text varies.
func (k Kind) Spelling() string {
	if int(k) < len(kindSpelling) {
		return kindSpelling[k]
	}
	return ""
}

// IsPunct reports whether k is a fixed punctuator or operator.
func (k Kind) IsPunct() bool {
	return k.Spelling() != ""
}

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := EOF; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
