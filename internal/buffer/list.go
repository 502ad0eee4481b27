package buffer

// List is the element-typed counterpart of Builder, used for token and
// trivia sequences.
type List[T any] struct {
	items     []T
	finalized bool
}

// NewList returns a list with room for hint elements.
func NewList[T any](hint int) *List[T] {
	if hint < 0 {
		hint = 0
	}
	return &List[T]{items: make([]T, 0, hint)}
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	l.check()
	l.items = grow(l.items, 1)
	l.items = append(l.items, v)
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// Cap returns the current capacity.
func (l *List[T]) Cap() int { return cap(l.items) }

// Last returns the most recently appended element.
func (l *List[T]) Last() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// Finalize returns an exactly sized copy and releases the scratch storage.
// An empty list finalizes to nil.
func (l *List[T]) Finalize() []T {
	l.check()
	var out []T
	if len(l.items) > 0 {
		out = make([]T, len(l.items))
		copy(out, l.items)
	}
	l.items = nil
	l.finalized = true
	return out
}

func (l *List[T]) check() {
	if l.finalized {
		panic("buffer.List: use after Finalize")
	}
}
