// Package script defines codepoint ranges for writing systems and scans text
// for residual runs of a script.
package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	// ErrInvalidRange is returned when a range specification cannot be parsed.
	ErrInvalidRange = errors.New("invalid codepoint range")

	// ErrUnknownScript is returned when a script name is not registered.
	ErrUnknownScript = errors.New("unknown script")
)

// Interval is a closed codepoint interval.
type Interval struct {
	Lo rune
	Hi rune
}

func (iv Interval) String() string {
	if iv.Lo == iv.Hi {
		return fmt.Sprintf("U+%04X", iv.Lo)
	}
	return fmt.Sprintf("U+%04X-U+%04X", iv.Lo, iv.Hi)
}

// Range is a set of codepoints that belong to a script.
// The zero Range contains nothing.
type Range struct {
	name  string
	table *unicode.RangeTable
}

// FromTable wraps an existing unicode table, for example unicode.Han.
func FromTable(name string, table *unicode.RangeTable) Range {
	return Range{name: name, table: table}
}

// FromIntervals builds a range from closed intervals. Intervals may overlap
// and may be given in any order.
func FromIntervals(name string, intervals ...Interval) (Range, error) {
	tables := make([]*unicode.RangeTable, 0, len(intervals))
	for _, iv := range intervals {
		if iv.Lo < 0 || iv.Hi > unicode.MaxRune || iv.Lo > iv.Hi {
			return Range{}, fmt.Errorf("%w: %s", ErrInvalidRange, iv)
		}
		tables = append(tables, intervalTable(iv))
	}
	return Range{name: name, table: rangetable.Merge(tables...)}, nil
}

// MustIntervals is like FromIntervals but panics on invalid intervals.
func MustIntervals(name string, intervals ...Interval) Range {
	r, err := FromIntervals(name, intervals...)
	if err != nil {
		panic("script: " + err.Error())
	}
	return r
}

// Union merges several ranges into one.
func Union(name string, ranges ...Range) Range {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		if r.table != nil {
			tables = append(tables, r.table)
		}
	}
	return Range{name: name, table: rangetable.Merge(tables...)}
}

// Name returns the label the range was built with.
func (r Range) Name() string {
	return r.name
}

// Contains reports whether c is inside the range.
func (r Range) Contains(c rune) bool {
	if r.table == nil {
		return false
	}
	return unicode.Is(r.table, c)
}

// Table returns the underlying unicode table.
func (r Range) Table() *unicode.RangeTable {
	return r.table
}

// Intervals returns the range as sorted, coalesced closed intervals.
func (r Range) Intervals() []Interval {
	if r.table == nil {
		return nil
	}

	var out []Interval
	rangetable.Visit(r.table, func(c rune) {
		if n := len(out); n > 0 && c <= out[n-1].Hi+1 {
			out[n-1].Hi = max(out[n-1].Hi, c)
			return
		}
		out = append(out, Interval{Lo: c, Hi: c})
	})
	return out
}

// String formats the range as a comma separated interval list.
func (r Range) String() string {
	intervals := r.Intervals()
	parts := make([]string, len(intervals))
	for idx, iv := range intervals {
		parts[idx] = iv.String()
	}
	return strings.Join(parts, ",")
}

// ParseRange parses a comma separated list of codepoints and intervals.
// Bounds are hexadecimal with an optional "U+" or "0x" prefix:
//
//	4E00-9FA5,3400-4DBF,U+3007
func ParseRange(name, spec string) (Range, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Range{}, fmt.Errorf("%w: empty specification", ErrInvalidRange)
	}

	var intervals []Interval
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		loText, hiText, isInterval := strings.Cut(part, "-")
		lo, err := parseCodepoint(loText)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, part, err)
		}
		hi := lo
		if isInterval {
			hi, err = parseCodepoint(hiText)
			if err != nil {
				return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, part, err)
			}
		}
		intervals = append(intervals, Interval{Lo: lo, Hi: hi})
	}

	if len(intervals) == 0 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidRange, spec)
	}
	return FromIntervals(name, intervals...)
}

func parseCodepoint(text string) (rune, error) {
	text = strings.TrimSpace(text)
	upper := strings.ToUpper(text)
	switch {
	case strings.HasPrefix(upper, "U+"), strings.HasPrefix(upper, "0X"):
		text = text[2:]
	}

	value, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse codepoint: %w", err)
	}
	if value > unicode.MaxRune {
		return 0, fmt.Errorf("codepoint %X out of range", value)
	}
	return rune(value), nil
}

func intervalTable(iv Interval) *unicode.RangeTable {
	table := &unicode.RangeTable{}
	lo, hi := iv.Lo, iv.Hi

	if lo <= 0xFFFF {
		hi16 := min(hi, 0xFFFF)
		table.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi16), Stride: 1}}
		if hi16 <= unicode.MaxLatin1 {
			table.LatinOffset = 1
		}
		lo = 0x10000
	}
	if hi >= lo {
		table.R32 = []unicode.Range32{{Lo: uint32(lo), Hi: uint32(hi), Stride: 1}}
	}
	return table
}

