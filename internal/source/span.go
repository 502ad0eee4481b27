package source

import (
	"fmt"
)

// Location is a snapshot of the lexer cursor.
type Location struct {
	Offset uint32 // в байтах
	Line   uint32 // 1-based
	Col    uint32 // 1-based
}

// StartOfFile is the location of the first byte of any file.
var StartOfFile = Location{Offset: 0, Line: 1, Col: 1}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Before reports whether l is strictly before other.
func (l Location) Before(other Location) bool {
	return l.Offset < other.Offset
}

// Span is a half-open range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start Location
	End   Location
}

// NewSpan builds a span and panics if end precedes start.
func NewSpan(file FileID, start, end Location) Span {
	if end.Offset < start.Offset {
		panic(fmt.Errorf("source.NewSpan: end %d before start %d", end.Offset, start.Offset))
	}
	return Span{File: file, Start: start, End: end}
}

// PointSpan is the zero-width span at loc.
func PointSpan(file FileID, loc Location) Span {
	return Span{File: file, Start: loc, End: loc}
}

func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

func (s Span) Len() uint32 {
	return s.End.Offset - s.Start.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start.Offset, s.End.Offset)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Offset < s.Start.Offset {
		s.Start = other.Start
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

// Text returns the bytes of f covered by s.
func (s Span) Text(f *File) string {
	if f == nil || int(s.End.Offset) > len(f.Content) || s.Start.Offset > s.End.Offset {
		return ""
	}
	return string(f.Content[s.Start.Offset:s.End.Offset])
}
