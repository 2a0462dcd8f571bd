package script

// Run is one maximal run of in-range codepoints found in a buffer.
type Run struct {
	// Text is the run itself.
	Text string `json:"text"`

	// Offset is the byte offset of the run in the buffer.
	Offset int `json:"offset"`

	// Line is the 1-based line of the first codepoint.
	Line int `json:"line"`

	// Column is the 1-based column, counted in codepoints.
	Column int `json:"column"`
}

// Report is the result of scanning a buffer for residual script text.
type Report struct {
	// Complete is true when no in-range codepoint was found.
	Complete bool `json:"complete"`

	// Remaining holds each distinct run once, in first-seen order.
	Remaining []string `json:"remaining"`

	// Runs holds every run in buffer order, duplicates included.
	Runs []Run `json:"runs,omitempty"`
}

// First returns the first occurrence of text, if any.
func (r *Report) First(text string) (Run, bool) {
	for _, run := range r.Runs {
		if run.Text == text {
			return run, true
		}
	}
	return Run{}, false
}

// Scan finds every maximal run of codepoints inside rng.
//
// Contiguous in-range codepoints are grouped greedily into a single run, so
// three adjacent ideographs are reported once as a three-character string.
// Remaining is the set of distinct runs; Complete holds iff it is empty.
func Scan(buffer string, rng Range) *Report {
	report := &Report{Remaining: []string{}}
	seen := make(map[string]struct{})

	line, column := 1, 0
	start, startLine, startColumn := -1, 0, 0

	flush := func(end int) {
		if start < 0 {
			return
		}
		text := buffer[start:end]
		report.Runs = append(report.Runs, Run{Text: text, Offset: start, Line: startLine, Column: startColumn})
		if _, dup := seen[text]; !dup {
			seen[text] = struct{}{}
			report.Remaining = append(report.Remaining, text)
		}
		start = -1
	}

	for offset, c := range buffer {
		column++

		if rng.Contains(c) {
			if start < 0 {
				start, startLine, startColumn = offset, line, column
			}
		} else {
			flush(offset)
		}

		if c == '\n' {
			line++
			column = 0
		}
	}
	flush(len(buffer))

	report.Complete = len(report.Remaining) == 0
	return report
}

// Contains reports whether buffer holds any codepoint inside rng.
func Contains(buffer string, rng Range) bool {
	for _, c := range buffer {
		if rng.Contains(c) {
			return true
		}
	}
	return false
}
