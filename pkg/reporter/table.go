package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/yaklabco/rescript/internal/ui/pretty"
	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/runner"
)

// maxCellWidth caps pattern cells so long pairs do not blow the table up.
const maxCellWidth = 40

// TableReporter prints a per-file table and a per-pair table.
type TableReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTableReporter creates a new table reporter.
func NewTableReporter(opts Options) *TableReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TableReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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

	r.writeFileTable(result)

	if pairs := pairCounts(result); len(pairs) > 0 {
		fmt.Fprintln(r.bw)
		r.writePairTable(pairs)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.Stats.FilesWritten > 0))
	}

	return result.Stats.DistinctRemaining, nil
}

func (r *TableReporter) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(r.bw)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func (r *TableReporter) writeFileTable(result *runner.Result) {
	table := r.newTable("File", "Status", "Replaced", "Remaining")

	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)
		switch {
		case file.Error != nil:
			table.Append([]string{path, string(pretty.StatusError), "-", pretty.Truncate(file.Error.Error(), maxCellWidth)})
		case file.Result != nil:
			status, _ := fileStatus(file.Result)
			remaining := "-"
			if file.Result.Report != nil && len(file.Result.Report.Remaining) > 0 {
				remaining = pretty.Truncate(strings.Join(file.Result.Report.Remaining, " "), maxCellWidth)
			}
			table.Append([]string{path, string(status), strconv.Itoa(file.Result.Replacements()), remaining})
		}
	}

	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d/%d complete", result.Stats.FilesComplete, len(result.Files)),
		strconv.Itoa(result.Stats.Replacements),
		strconv.Itoa(result.Stats.DistinctRemaining),
	})
	table.Render()
}

// pairCount is one table pair with its occurrences summed over all files.
type pairCount struct {
	pair  mapping.Pair
	count int
}

// pairCounts sums step counts per table position. Every file runs the same
// table, so step i of each file refers to the same pair.
func pairCounts(result *runner.Result) []pairCount {
	var counts []pairCount
	for _, file := range result.Files {
		if file.Result == nil {
			continue
		}
		for idx, step := range file.Result.Steps {
			if idx >= len(counts) {
				counts = append(counts, pairCount{pair: step.Pair})
			}
			counts[idx].count += step.Count
		}
	}
	return counts
}

func (r *TableReporter) writePairTable(pairs []pairCount) {
	table := r.newTable("#", "From", "To", "Count")

	var unused int
	for idx, pc := range pairs {
		if pc.count == 0 {
			unused++
		}
		table.Append([]string{
			strconv.Itoa(idx + 1),
			pretty.Truncate(pc.pair.From, maxCellWidth),
			pretty.Truncate(pc.pair.To, maxCellWidth),
			strconv.Itoa(pc.count),
		})
	}

	table.SetFooter([]string{"", "", "Unused", strconv.Itoa(unused)})
	table.Render()
}
