package token

// Keyword identifies a reserved word. The lexer emits keywords as Ident
// tokens; parsers classify them with LookupKeyword.
type Keyword uint8

const (
	KwNone Keyword = iota

	// операторы-слова
	KwAnd
	KwOr
	KwXor
	KwNot
	KwCast

	// управление
	KwIf
	KwElse
	KwWhile
	KwFor
	KwSwitch
	KwCase
	KwDefault
	KwReturn
	KwBreak
	KwContinue
	KwYield

	// значения
	KwTrue
	KwFalse
	KwNil
	KwNullPtr
	KwGlobal

	// модификаторы
	KwConst
	KwExtern
	KwPublic
	KwInternal
	KwPrivate
	KwExport
	KwInline
	KwReadOnly
	KwWriteOnly

	// типы
	KwStruct
	KwEnum
	KwInt
	KwUInt
	KwBool
	KwFloat
	KwVoid
	KwRune
	KwRawPtr
	KwString
	KwNoReturn
	KwDynamic
	KwVarArgs
	KwSizedInt
	KwSizedUInt
	KwSizedFloat
)

var keywords = map[string]Keyword{
	"and":       KwAnd,
	"or":        KwOr,
	"xor":       KwXor,
	"not":       KwNot,
	"cast":      KwCast,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"for":       KwFor,
	"switch":    KwSwitch,
	"case":      KwCase,
	"default":   KwDefault,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"yield":     KwYield,
	"true":      KwTrue,
	"false":     KwFalse,
	"nil":       KwNil,
	"nullptr":   KwNullPtr,
	"global":    KwGlobal,
	"const":     KwConst,
	"extern":    KwExtern,
	"public":    KwPublic,
	"internal":  KwInternal,
	"private":   KwPrivate,
	"export":    KwExport,
	"inline":    KwInline,
	"readonly":  KwReadOnly,
	"writeonly": KwWriteOnly,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"int":       KwInt,
	"uint":      KwUInt,
	"bool":      KwBool,
	"float":     KwFloat,
	"void":      KwVoid,
	"rune":      KwRune,
	"rawptr":    KwRawPtr,
	"string":    KwString,
	"noreturn":  KwNoReturn,
	"dynamic":   KwDynamic,
	"varargs":   KwVarArgs,
}

type sizedKeyword struct {
	kw   Keyword
	bits uint16
}

var sizedKeywords = map[string]sizedKeyword{
	"i8":   {KwSizedInt, 8},
	"i16":  {KwSizedInt, 16},
	"i32":  {KwSizedInt, 32},
	"i64":  {KwSizedInt, 64},
	"i128": {KwSizedInt, 128},
	"u8":   {KwSizedUInt, 8},
	"u16":  {KwSizedUInt, 16},
	"u32":  {KwSizedUInt, 32},
	"u64":  {KwSizedUInt, 64},
	"u128": {KwSizedUInt, 128},
	"f32":  {KwSizedFloat, 32},
	"f64":  {KwSizedFloat, 64},
}

// LookupKeyword возвращает ключевое слово, если ident зарезервирован.
// Регистр важен: распознаются только lowercase версии.
func LookupKeyword(ident string) (Keyword, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	if s, ok := sizedKeywords[ident]; ok {
		return s.kw, true
	}
	return KwNone, false
}

// LookupSized returns the bit size of a sized type keyword such as i32.
func LookupSized(ident string) (Keyword, uint16, bool) {
	s, ok := sizedKeywords[ident]
	return s.kw, s.bits, ok
}

var keywordNames = func() map[Keyword]string {
	m := make(map[Keyword]string, len(keywords)+4)
	for s, k := range keywords {
		m[k] = s
	}
	m[KwNone] = "none"
	m[KwSizedInt] = "iN"
	m[KwSizedUInt] = "uN"
	m[KwSizedFloat] = "fN"
	return m
}()

// String returns the source spelling; sized families print as iN, uN, fN.
func (k Keyword) String() string {
	if s, ok := keywordNames[k]; ok {
		return s
	}
	return "Keyword(?)"
}
