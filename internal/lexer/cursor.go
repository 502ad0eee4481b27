package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"layec/internal/runes"
	"layec/internal/source"
)

// Cursor представляет собой позицию в файле вместе с номером строки и колонки.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off.
	Limit    uint32
	Stepping Stepping
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File, step Stepping) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:     f,
		Off:      0,
		Line:     1,
		Col:      1,
		Limit:    limit,
		Stepping: step,
	}
}

// EOF reports end of input: past the limit or sitting on a NUL byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit || c.File.Content[c.Off] == 0
}

// Current decodes the rune under the cursor. size is 0 at EOF or when the
// bytes do not decode.
func (c *Cursor) Current() (r rune, size int) {
	if c.EOF() {
		return 0, 0
	}
	return runes.Decode(c.File.Content[:c.Limit], int(c.Off))
}

// Rune returns the current rune, 0 at EOF.
func (c *Cursor) Rune() rune {
	r, _ := c.Current()
	return r
}

// Byte returns the raw byte under the cursor, 0 at EOF.
func (c *Cursor) Byte() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekRune returns the rune one step after the current one, 0 if there is none.
func (c *Cursor) PeekRune() rune {
	if c.EOF() {
		return 0
	}
	next := c.Off + c.step()
	if next >= c.Limit || c.File.Content[next] == 0 {
		return 0
	}
	r, _ := runes.Decode(c.File.Content[:c.Limit], int(next))
	return r
}

func (c *Cursor) step() uint32 {
	if c.Stepping == StepByte {
		return 1
	}
	_, size := c.Current()
	if size == 0 {
		return 1
	}
	return uint32(size)
}

// Advance moves one step forward. A consumed '\n' starts a new line.
// At EOF it does nothing.
func (c *Cursor) Advance() {
	if c.EOF() {
		return
	}
	newline := c.File.Content[c.Off] == '\n'
	c.Off += c.step()
	if c.Off > c.Limit {
		c.Off = c.Limit
	}
	if newline {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
}

// Location snapshots the cursor.
func (c *Cursor) Location() source.Location {
	return source.Location{Offset: c.Off, Line: c.Line, Col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с start.
func (c *Cursor) SpanFrom(start source.Location) source.Span {
	return source.NewSpan(c.File.ID, start, c.Location())
}

// TextFrom returns the source bytes between start and the cursor.
func (c *Cursor) TextFrom(start source.Location) string {
	return string(c.File.Content[start.Offset:c.Off])
}
