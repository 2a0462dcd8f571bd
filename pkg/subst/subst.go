// Package subst applies ordered literal replacement tables to text.
package subst

import (
	"strings"

	"github.com/yaklabco/rescript/pkg/mapping"
)

// Step records the effect of one pair during a substitution run.
type Step struct {
	// Pair is the pair that was applied.
	Pair mapping.Pair

	// Count is the number of non-overlapping occurrences replaced.
	Count int
}

// Result is the outcome of applying a table to a buffer.
type Result struct {
	// Output is the rewritten buffer.
	Output string

	// Steps holds one entry per pair, in table order.
	Steps []Step
}

// Replacements returns the total number of occurrences replaced.
func (r *Result) Replacements() int {
	var total int
	for _, step := range r.Steps {
		total += step.Count
	}
	return total
}

// Unused returns the pairs that matched nothing.
func (r *Result) Unused() []mapping.Pair {
	var out []mapping.Pair
	for _, step := range r.Steps {
		if step.Count == 0 {
			out = append(out, step.Pair)
		}
	}
	return out
}

// Apply rewrites buffer with every pair of table, in table order.
//
// Each pair replaces all non-overlapping occurrences of its pattern, scanning
// left to right, in the output of the previous pair. Text inserted by a pair
// is not rescanned by that pair but is visible to every later pair.
func Apply(buffer string, table *mapping.Table) string {
	table.Each(func(_ int, pair mapping.Pair) bool {
		buffer = strings.ReplaceAll(buffer, pair.From, pair.To)
		return true
	})
	return buffer
}

// ApplyWithSteps is Apply plus per-pair occurrence counts.
func ApplyWithSteps(buffer string, table *mapping.Table) *Result {
	result := &Result{Steps: make([]Step, 0, table.Len())}

	table.Each(func(_ int, pair mapping.Pair) bool {
		count := strings.Count(buffer, pair.From)
		if count > 0 {
			buffer = strings.ReplaceAll(buffer, pair.From, pair.To)
		}
		result.Steps = append(result.Steps, Step{Pair: pair, Count: count})
		return true
	})

	result.Output = buffer
	return result
}
