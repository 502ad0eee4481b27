package runes

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestEncodeMinimalLength(t *testing.T) {
	tests := []struct {
		r    rune
		want []byte
	}{
		{'A', []byte{0x41}},
		{0x7F, []byte{0x7F}},
		{0x80, []byte{0xC2, 0x80}},
		{'é', []byte{0xC3, 0xA9}},
		{0x7FF, []byte{0xDF, 0xBF}},
		{0x800, []byte{0xE0, 0xA0, 0x80}},
		{'€', []byte{0xE2, 0x82, 0xAC}},
		{0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{0x10000, []byte{0xF0, 0x90, 0x80, 0x80}},
		{'😀', []byte{0xF0, 0x9F, 0x98, 0x80}},
	}
	for _, tt := range tests {
		got := Encode(tt.r)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("Encode(%U) = % X, want % X", tt.r, got, tt.want)
		}
		if Len(tt.r) != len(tt.want) {
			t.Errorf("Len(%U) = %d, want %d", tt.r, Len(tt.r), len(tt.want))
		}
	}
}

func TestDecodeMatchesStdlibForValidInput(t *testing.T) {
	src := []byte("aé€\U0001F600z")
	off := 0
	for off < len(src) {
		want, wantSize := utf8.DecodeRune(src[off:])
		got, size := Decode(src, off)
		if got != want || size != wantSize {
			t.Fatalf("Decode at %d = (%U, %d), want (%U, %d)", off, got, size, want, wantSize)
		}
		off += size
	}
}

func TestDecodeFailsSoft(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		off  int
	}{
		{"continuation lead", []byte{0xA9}, 0},
		{"invalid prefix", []byte{0xFF, 0x41}, 0},
		{"truncated 2", []byte{0xC3}, 0},
		{"truncated 3", []byte{0xE2, 0x82}, 0},
		{"truncated 4", []byte{0xF0, 0x9F, 0x98}, 0},
		{"past end", []byte("ab"), 2},
		{"negative", []byte("ab"), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := Decode(tt.src, tt.off)
			if r != 0 || size != 0 {
				t.Fatalf("Decode = (%U, %d), want (0, 0)", r, size)
			}
		})
	}
}

func TestRoundTripAllPlanesSample(t *testing.T) {
	for _, r := range []rune{0, 1, 0x41, 0x7FF, 0x800, 0xD7FF, 0xE000, 0xFFFF, 0x10000, 0x10FFFF} {
		enc := Encode(r)
		got, size := Decode(enc, 0)
		if got != r || size != len(enc) {
			t.Errorf("round trip %U: got (%U, %d)", r, got, size)
		}
	}
}

func TestAppendRuneExtends(t *testing.T) {
	dst := []byte("x=")
	dst = AppendRune(dst, 'λ')
	if string(dst) != "x=λ" {
		t.Fatalf("AppendRune = %q", dst)
	}
}
