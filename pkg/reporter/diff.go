package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/rescript/internal/ui/pretty"
	"github.com/yaklabco/rescript/pkg/runner"
)

// diffContextLines is the number of unchanged lines around each hunk.
const diffContextLines = 3

// DiffReporter formats results as unified diffs in git style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	var filesWithDiffs, totalAdditions, totalDeletions int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.out, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(r.opts.WorkingDir, file.Path)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil || !file.Result.Changed() {
			continue
		}

		additions, deletions, err := r.writeDiff(displayPath(r.opts.WorkingDir, file.Path),
			file.Result.Original, file.Result.Output)
		if err != nil {
			return filesWithDiffs, err
		}
		filesWithDiffs++
		totalAdditions += additions
		totalDeletions += deletions
	}

	if filesWithDiffs > 0 && r.opts.ShowSummary {
		r.writeSummary(filesWithDiffs, totalAdditions, totalDeletions)
	}

	return result.Stats.DistinctRemaining, nil
}

func (r *DiffReporter) writeDiff(path, original, output string) (int, int, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(output),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContextLines,
	})
	if err != nil {
		return 0, 0, fmt.Errorf("diff %s: %w", path, err)
	}

	header := fmt.Sprintf("diff --git a/%s b/%s", path, path)
	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(header))

	var additions, deletions int
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"):
			fmt.Fprintln(r.out, r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "---"):
			fmt.Fprintln(r.out, r.styles.DiffRemove.Render(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(r.out, r.styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			additions++
			fmt.Fprintln(r.out, r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			deletions++
			fmt.Fprintln(r.out, r.styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(r.out, r.styles.DiffContext.Render(line))
		}
	}
	fmt.Fprintln(r.out)

	return additions, deletions, nil
}

func (r *DiffReporter) writeSummary(files, additions, deletions int) {
	parts := []string{fmt.Sprintf("%d %s changed", files, plural(files, "file", "files"))}
	if additions > 0 {
		parts = append(parts, r.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", additions, plural(additions, "insertion", "insertions"))))
	}
	if deletions > 0 {
		parts = append(parts, r.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deletions, plural(deletions, "deletion", "deletions"))))
	}
	fmt.Fprintln(r.out, strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
