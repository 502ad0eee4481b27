// Package buffer provides the growable scratch storage used while lexing.
//
// Both Builder and List grow by doubling: when an append does not fit, the
// new capacity is max(required, 2*capacity). Nothing ever shrinks. Once
// finalized, a buffer hands out an independent copy and drops its backing
// array; any further use panics.
package buffer

import (
	"fmt"

	"layec/internal/runes"
)

const hexDigits = "0123456789ABCDEF"

// Builder accumulates bytes for token text, diagnostic messages and numbers.
// The zero value is ready to use.
type Builder struct {
	data      []byte
	finalized bool
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.data) }

// Cap returns the current capacity of the backing storage.
func (b *Builder) Cap() int { return cap(b.data) }

// Grow makes room for at least n more bytes.
func (b *Builder) Grow(n int) {
	b.check()
	if n < 0 {
		panic(fmt.Errorf("buffer.Builder.Grow: negative count %d", n))
	}
	b.data = grow(b.data, n)
}

// Write appends p. It never fails; the error is there for io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.Grow(len(p))
	b.data = append(b.data, p...)
	return len(p), nil
}

// WriteString appends s.
func (b *Builder) WriteString(s string) (int, error) {
	b.Grow(len(s))
	b.data = append(b.data, s...)
	return len(s), nil
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	b.Grow(1)
	b.data = append(b.data, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of r.
func (b *Builder) WriteRune(r rune) (int, error) {
	n := runes.Len(r)
	b.Grow(n)
	b.data = runes.AppendRune(b.data, r)
	return n, nil
}

// WriteUint appends the decimal rendering of v.
func (b *Builder) WriteUint(v uint64) {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	_, _ = b.Write(tmp[i:])
}

// WriteHex appends v in uppercase hexadecimal, left padded with zeros to at
// least digits characters. Values needing more digits are written in full.
func (b *Builder) WriteHex(v uint64, digits int) {
	var tmp [16]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = hexDigits[v&0xF]
		v >>= 4
		if v == 0 {
			break
		}
	}
	if pad := digits - (len(tmp) - i); pad > 0 {
		b.Grow(pad)
		for ; pad > 0; pad-- {
			b.data = append(b.data, '0')
		}
	}
	_, _ = b.Write(tmp[i:])
}

// Finalize returns a copy of the accumulated bytes and releases the storage.
func (b *Builder) Finalize() []byte {
	b.check()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	b.release()
	return out
}

// FinalizeString is Finalize for callers that want a string.
func (b *Builder) FinalizeString() string {
	b.check()
	out := string(b.data)
	b.release()
	return out
}

func (b *Builder) release() {
	b.data = nil
	b.finalized = true
}

func (b *Builder) check() {
	if b.finalized {
		panic("buffer.Builder: use after Finalize")
	}
}

// grow returns s with room for n more elements, doubling as needed.
func grow[T any](s []T, n int) []T {
	need := len(s) + n
	if need <= cap(s) {
		return s
	}
	newCap := need
	if doubled := cap(s) * 2; doubled > newCap {
		newCap = doubled
	}
	out := make([]T, len(s), newCap)
	copy(out, s)
	return out
}
