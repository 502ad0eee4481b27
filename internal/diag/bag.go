package diag

import (
	"slices"
	"sort"
)

// Bag is the append-only diagnostics sink of one lexing pass. It never
// drops, merges or reorders entries.
type Bag struct {
	items []Diagnostic
}

func NewBag() *Bag {
	return &Bag{items: make([]Diagnostic, 0, 8)}
}

// Add appends d.
func (b *Bag) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	return b.Count(SevError) > 0
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// Count returns how many diagnostics have exactly severity sev.
func (b *Bag) Count(sev Severity) int {
	n := 0
	for i := range b.items {
		if b.items[i].Severity == sev {
			n++
		}
	}
	return n
}

func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items returns a snapshot in insertion order.
func (b *Bag) Items() []Diagnostic {
	if b == nil {
		return nil
	}
	return slices.Clone(b.items)
}

// Merge appends every diagnostic of other, preserving its order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.items = append(b.items, other.items...)
}

// Sorted returns a copy ordered by file, start, end, severity (desc), code.
// The bag itself keeps insertion order.
func (b *Bag) Sorted() []Diagnostic {
	out := b.Items()
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i], out[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start.Offset != dj.Primary.Start.Offset {
			return di.Primary.Start.Offset < dj.Primary.Start.Offset
		}
		if di.Primary.End.Offset != dj.Primary.End.Offset {
			return di.Primary.End.Offset < dj.Primary.End.Offset
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
	return out
}
