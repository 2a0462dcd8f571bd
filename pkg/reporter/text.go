package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/rescript/internal/ui/pretty"
	"github.com/yaklabco/rescript/pkg/rewrite"
	"github.com/yaklabco/rescript/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  pretty.TerminalWidth(opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to process."))
		}
		return 0, nil
	}

	var reported int
	for _, file := range result.Files {
		reported += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.Stats.FilesWritten > 0))
	}

	return reported, nil
}

func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := displayPath(r.opts.WorkingDir, file.Path)

	if file.Error != nil {
		fmt.Fprint(r.bw, r.styles.FormatFileHeader(path, pretty.StatusError, file.Error.Error()))
		return 0
	}
	if file.Result == nil {
		return 0
	}

	res := file.Result
	status, detail := fileStatus(res)
	fmt.Fprint(r.bw, r.styles.FormatFileHeader(path, status, detail))

	if res.Report == nil {
		return 0
	}
	for _, text := range res.Report.Remaining {
		run, ok := res.Report.First(text)
		if !ok {
			continue
		}
		var sourceLine string
		if r.opts.ShowContext {
			sourceLine = lineAt(res.Output, run.Line)
		}
		fmt.Fprint(r.bw, r.styles.FormatRun(path, run, sourceLine, r.width))
	}
	return len(res.Report.Remaining)
}

func fileStatus(res *rewrite.Result) (pretty.Status, string) {
	var parts []string
	if res.Steps != nil {
		parts = append(parts, fmt.Sprintf("%d replaced", res.Replacements()))
	}

	status := pretty.StatusComplete
	if !res.Complete() {
		status = pretty.StatusIncomplete
		parts = append(parts, fmt.Sprintf("%d remaining", len(res.Report.Remaining)))
	}

	switch {
	case res.BackupCreated:
		parts = append(parts, "backup written")
	case res.Written:
	case res.Steps != nil:
		parts = append(parts, "not written")
	}

	return status, strings.Join(parts, ", ")
}
