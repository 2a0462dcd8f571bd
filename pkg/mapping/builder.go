package mapping

import "fmt"

// Builder accumulates pairs for a Table.
//
// Append records a pair unconditionally. Set follows dictionary semantics: the
// first Set of a pattern fixes its position, and later Sets of the same
// pattern only replace the value.
type Builder struct {
	pairs []Pair
	index map[string]int
	err   error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Append adds a pair at the end of the table.
func (b *Builder) Append(from, to string) *Builder {
	if !b.check(from) {
		return b
	}
	if _, seen := b.index[from]; !seen {
		b.index[from] = len(b.pairs)
	}
	b.pairs = append(b.pairs, Pair{From: from, To: to})
	return b
}

// Set adds a pair, or updates the value of the first pair with the same
// pattern if one was already added.
func (b *Builder) Set(from, to string) *Builder {
	if !b.check(from) {
		return b
	}
	if idx, seen := b.index[from]; seen {
		b.pairs[idx].To = to
		return b
	}
	b.index[from] = len(b.pairs)
	b.pairs = append(b.pairs, Pair{From: from, To: to})
	return b
}

// Len returns the number of pairs added so far.
func (b *Builder) Len() int {
	return len(b.pairs)
}

// Build returns the table, or the first error recorded while adding pairs.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.pairs...)
}

func (b *Builder) check(from string) bool {
	if b.err != nil {
		return false
	}
	if from == "" {
		b.err = fmt.Errorf("pair %d: %w", len(b.pairs), ErrEmptyPattern)
		return false
	}
	return true
}
