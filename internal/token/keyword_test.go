package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Keyword{
		"and":     KwAnd,
		"or":      KwOr,
		"not":     KwNot,
		"return":  KwReturn,
		"struct":  KwStruct,
		"nullptr": KwNullPtr,
		"i32":     KwSizedInt,
		"u128":    KwSizedUInt,
		"f64":     KwSizedFloat,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// регистр важен
	for _, s := range []string{"And", "RETURN", "i7", "identifier", "u256", ""} {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestLookupSized(t *testing.T) {
	kw, bits, ok := LookupSized("i16")
	if !ok || kw != KwSizedInt || bits != 16 {
		t.Fatalf("LookupSized(i16) = %v %d %v", kw, bits, ok)
	}
	if _, _, ok := LookupSized("int"); ok {
		t.Fatalf("int is not sized")
	}
}

func TestKeywordString(t *testing.T) {
	for s, kw := range keywords {
		if kw.String() != s {
			t.Errorf("%v.String() = %q, want %q", kw, kw.String(), s)
		}
	}
	if KwSizedInt.String() != "iN" || KwNone.String() != "none" {
		t.Fatalf("sized/none names wrong")
	}
}
