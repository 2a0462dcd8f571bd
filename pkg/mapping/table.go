// Package mapping defines ordered literal replacement tables.
//
// A Table is an ordered list of (From, To) pairs. Order is significant: pairs
// whose patterns overlap are resolved purely by their position in the table.
package mapping

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned when a pair has an empty From pattern.
var ErrEmptyPattern = errors.New("empty pattern")

// Pair is a single literal replacement.
type Pair struct {
	// From is the literal text to search for. Never empty.
	From string `json:"from" yaml:"from"`

	// To is the literal replacement text. May be empty.
	To string `json:"to" yaml:"to"`
}

// Table is an immutable, ordered sequence of pairs.
type Table struct {
	pairs []Pair
}

// New builds a table from pairs in the given order.
// Duplicated patterns are kept as-is.
func New(pairs ...Pair) (*Table, error) {
	for idx, pair := range pairs {
		if pair.From == "" {
			return nil, fmt.Errorf("pair %d: %w", idx, ErrEmptyPattern)
		}
	}

	cloned := make([]Pair, len(pairs))
	copy(cloned, pairs)

	return &Table{pairs: cloned}, nil
}

// MustNew is like New but panics if a pair is malformed.
// It is intended for tables declared as Go literals.
func MustNew(pairs ...Pair) *Table {
	table, err := New(pairs...)
	if err != nil {
		panic("mapping: " + err.Error())
	}
	return table
}

// Empty returns a table with no pairs.
func Empty() *Table {
	return &Table{}
}

// Len returns the number of pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

// Pairs returns a copy of the pairs in application order.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Each calls fn for every pair in order until fn returns false.
func (t *Table) Each(fn func(idx int, pair Pair) bool) {
	if t == nil {
		return
	}
	for idx, pair := range t.pairs {
		if !fn(idx, pair) {
			return
		}
	}
}

// Concat returns a table holding the pairs of all tables, in argument order.
// Nil tables are skipped.
func Concat(tables ...*Table) *Table {
	var total int
	for _, t := range tables {
		total += t.Len()
	}

	out := &Table{pairs: make([]Pair, 0, total)}
	for _, t := range tables {
		if t == nil {
			continue
		}
		out.pairs = append(out.pairs, t.pairs...)
	}
	return out
}
