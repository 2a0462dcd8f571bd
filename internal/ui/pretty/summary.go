package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/rescript/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 replaced in 3 files, 1 file incomplete (2 remaining), 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, wrote bool) string {
	var parts []string

	verb := "replaced"
	if !wrote {
		verb = "to replace"
	}
	parts = append(parts, fmt.Sprintf("%d %s in %d %s",
		stats.Replacements, verb, stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))

	if stats.FilesIncomplete == 0 && stats.FilesErrored == 0 {
		parts = append(parts, s.Success.Render("complete"))
	}
	if stats.FilesIncomplete > 0 {
		parts = append(parts, s.Incomplete.Render(fmt.Sprintf("%d %s incomplete (%d remaining)",
			stats.FilesIncomplete, plural(stats.FilesIncomplete, wordFile, wordFiles), stats.DistinctRemaining)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s",
			stats.FilesErrored, plural(stats.FilesErrored, "error", "errors"))))
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}

	return strings.Join(parts, ", ") + "\n"
}
