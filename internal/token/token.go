package token

import (
	"layec/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     Kind
	Span     source.Span
	Leading  []Trivia
	Trailing []Trivia

	// Text is the identifier image or the decoded string literal value.
	Text  string
	Int   uint64
	Float float64
	Char  rune
}

// NewIdent returns an identifier token.
func NewIdent(sp source.Span, image string) Token {
	return Token{Kind: Ident, Span: sp, Text: image}
}

// NewInt returns an integer literal token.
func NewInt(sp source.Span, v uint64) Token {
	return Token{Kind: IntLit, Span: sp, Int: v}
}

// NewString returns a string literal token.
func NewString(sp source.Span, v string) Token {
	return Token{Kind: StringLit, Span: sp, Text: v}
}

// NewPunct returns a payload-free token such as a punctuator, EOF or Poison.
func NewPunct(k Kind, sp source.Span) Token {
	return Token{Kind: k, Span: sp}
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsPunct reports whether the token is a punctuation or operator.
func (t Token) IsPunct() bool { return t.Kind.IsPunct() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Keyword classifies an identifier token as a keyword.
func (t Token) Keyword() (Keyword, bool) {
	if t.Kind != Ident {
		return KwNone, false
	}
	return LookupKeyword(t.Text)
}

// Payload returns a printable form of the kind-specific value and whether
// the kind has one.
func (t Token) Payload() (any, bool) {
	switch t.Kind {
	case Ident, StringLit:
		return t.Text, true
	case IntLit:
		return t.Int, true
	case FloatLit:
		return t.Float, true
	case CharLit:
		return t.Char, true
	default:
		return nil, false
	}
}
