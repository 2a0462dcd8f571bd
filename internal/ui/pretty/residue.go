package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/rescript/pkg/script"
)

// contextIndent aligns source context under a residue line.
const contextIndent = "        "

// Status labels a file outcome.
type Status string

const (
	StatusComplete   Status = "ok"
	StatusIncomplete Status = "incomplete"
	StatusError      Status = "error"
)

// FormatStatus returns a styled status label.
func (s *Styles) FormatStatus(status Status) string {
	switch status {
	case StatusComplete:
		return s.Complete.Render(string(status))
	case StatusIncomplete:
		return s.Incomplete.Render(string(status))
	case StatusError:
		return s.Error.Render(string(status))
	default:
		return string(status)
	}
}

// FormatFileHeader formats the status line for one file.
func (s *Styles) FormatFileHeader(path string, status Status, detail string) string {
	line := s.FilePath.Render(path) + "  " + s.FormatStatus(status)
	if detail != "" {
		line += "  " + s.Dim.Render(detail)
	}
	return line + "\n"
}

// FormatRun formats one residual run as path:line:col followed by the text.
// When sourceLine is non-empty it is printed underneath with the run marked,
// truncated to width display columns.
func (s *Styles) FormatRun(path string, run script.Run, sourceLine string, width int) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d", path, run.Line, run.Column)
	builder.WriteString("  " + s.Location.Render(location) + "  " + s.Residue.Render(run.Text) + "\n")

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, run.Column, run.Text, width))
	}

	return builder.String()
}

// FormatSourceContext prints line and a caret row under the run that starts
// at the 1-based rune column. Wide characters get two carets.
func (s *Styles) FormatSourceContext(line string, column int, text string, width int) string {
	var builder strings.Builder

	line = strings.TrimRight(line, "\r")
	available := width - len(contextIndent)
	if available > 0 && runewidth.StringWidth(line) > available {
		line = runewidth.Truncate(line, available, "…")
	}
	builder.WriteString(contextIndent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		prefix := []rune(line)
		if column-1 < len(prefix) {
			prefix = prefix[:column-1]
		}
		padding := runewidth.StringWidth(string(prefix))
		marks := max(runewidth.StringWidth(text), 1)
		builder.WriteString(contextIndent + strings.Repeat(" ", padding) +
			s.Caret.Render(strings.Repeat("^", marks)) + "\n")
	}

	return builder.String()
}

// Truncate shortens str to at most width display columns.
func Truncate(str string, width int) string {
	if width <= 0 || runewidth.StringWidth(str) <= width {
		return str
	}
	return runewidth.Truncate(str, width, "…")
}
