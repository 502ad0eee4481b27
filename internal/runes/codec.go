// Package runes decodes and encodes UTF-8 the way the Laye lexer sees it.
//
// Decoding only inspects the length prefix of the leading byte and checks that
// enough bytes remain; continuation bytes are packed without validation. This
// is looser than unicode/utf8, which replaces malformed sequences with
// utf8.RuneError and always reports a width of 1. The lexer relies on a zero
// width to detect a failed decode.
package runes

const (
	max1 = 0x7F
	max2 = 0x7FF
	max3 = 0xFFFF

	contMask   = 0x3F // 00111111
	contPrefix = 0x80 // 10xxxxxx
)

// Decode reads one rune at off. On failure (unknown length prefix,
// truncated sequence, off outside b) it returns (0, 0).
func Decode(b []byte, off int) (r rune, size int) {
	if off < 0 || off >= len(b) {
		return 0, 0
	}
	lead := b[off]
	switch {
	case lead&0x80 == 0x00:
		return rune(lead), 1
	case lead&0xE0 == 0xC0:
		size = 2
		r = rune(lead & 0x1F)
	case lead&0xF0 == 0xE0:
		size = 3
		r = rune(lead & 0x0F)
	case lead&0xF8 == 0xF0:
		size = 4
		r = rune(lead & 0x07)
	default:
		return 0, 0
	}
	if off+size > len(b) {
		return 0, 0
	}
	for i := 1; i < size; i++ {
		r = r<<6 | rune(b[off+i]&contMask)
	}
	return r, size
}

// Len returns the number of bytes Encode would produce for r.
func Len(r rune) int {
	switch u := uint32(r); {
	case u <= max1:
		return 1
	case u <= max2:
		return 2
	case u <= max3:
		return 3
	default:
		return 4
	}
}

// Encode returns the minimal UTF-8 encoding of r.
func Encode(r rune) []byte {
	return AppendRune(make([]byte, 0, 4), r)
}

// AppendRune appends the encoding of r to dst and returns the extended slice.
func AppendRune(dst []byte, r rune) []byte {
	u := uint32(r)
	switch Len(r) {
	case 1:
		return append(dst, byte(u))
	case 2:
		return append(dst,
			0xC0|byte(u>>6),
			contPrefix|byte(u)&contMask)
	case 3:
		return append(dst,
			0xE0|byte(u>>12),
			contPrefix|byte(u>>6)&contMask,
			contPrefix|byte(u)&contMask)
	default:
		return append(dst,
			0xF0|byte(u>>18)&0x07,
			contPrefix|byte(u>>12)&contMask,
			contPrefix|byte(u>>6)&contMask,
			contPrefix|byte(u)&contMask)
	}
}
