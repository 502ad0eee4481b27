package lexer

// ASCII only: Laye does not classify letters or digits outside this range.

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isAlpha(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentPart(r rune) bool {
	return isDigit(r) || isAlpha(r) || r == '_'
}

// \t \n \v \r и пробел
func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\r', ' ':
		return true
	}
	return false
}
