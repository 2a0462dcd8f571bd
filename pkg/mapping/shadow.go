package mapping

import "strings"

// Shadow records a pair that can never match because an earlier pair's
// pattern is a substring of its own: by the time the later pair runs, every
// occurrence of its pattern has already been rewritten.
type Shadow struct {
	// Index is the position of the shadowed pair.
	Index int

	// By is the position of the first earlier pair that shadows it.
	By int
}

// Shadowed reports the pairs that are dead because of ordering. An exact
// duplicate pattern counts as shadowed by its first occurrence.
//
// The check is textual. A pair is not reported when only the replacement text
// of an earlier pair would recreate or destroy its pattern.
func (t *Table) Shadowed() []Shadow {
	if t == nil {
		return nil
	}

	var out []Shadow
	for later := 1; later < len(t.pairs); later++ {
		for earlier := range later {
			if strings.Contains(t.pairs[later].From, t.pairs[earlier].From) {
				out = append(out, Shadow{Index: later, By: earlier})
				break
			}
		}
	}
	return out
}
