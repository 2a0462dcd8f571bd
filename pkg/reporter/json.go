package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/rescript/pkg/runner"
	"github.com/yaklabco/rescript/pkg/script"
)

// jsonSchemaVersion is bumped whenever a field is renamed or removed.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string           `json:"version"`
	Files     []JSONFileResult `json:"files"`
	Remaining []string         `json:"remaining"`
	Summary   JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path          string       `json:"path"`
	Language      string       `json:"language,omitempty"`
	Complete      bool         `json:"complete"`
	Changed       bool         `json:"changed"`
	Written       bool         `json:"written"`
	BackupCreated bool         `json:"backupCreated,omitempty"`
	Replacements  int          `json:"replacements"`
	Remaining     []string     `json:"remaining"`
	Runs          []script.Run `json:"runs,omitempty"`
	Steps         []JSONStep   `json:"steps,omitempty"`
	Error         string       `json:"error,omitempty"`
}

// JSONStep reports how often one pair matched.
type JSONStep struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count int    `json:"count"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesProcessed    int  `json:"filesProcessed"`
	FilesErrored      int  `json:"filesErrored"`
	FilesComplete     int  `json:"filesComplete"`
	FilesIncomplete   int  `json:"filesIncomplete"`
	FilesWritten      int  `json:"filesWritten"`
	FilesChanged      int  `json:"filesChanged"`
	Replacements      int  `json:"replacements"`
	ResidualRuns      int  `json:"residualRuns"`
	DistinctRemaining int  `json:"distinctRemaining"`
	Complete          bool `json:"complete"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return len(output.Remaining), nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:   jsonSchemaVersion,
		Files:     make([]JSONFileResult, 0),
		Remaining: make([]string, 0),
		Summary:   JSONSummary{Complete: true},
	}

	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:      displayPath(r.opts.WorkingDir, file.Path),
			Remaining: make([]string, 0),
		}

		switch {
		case file.Error != nil:
			fileResult.Error = file.Error.Error()
		case file.Result != nil:
			res := file.Result
			fileResult.Language = res.Language
			fileResult.Complete = res.Complete()
			fileResult.Changed = res.Changed()
			fileResult.Written = res.Written
			fileResult.BackupCreated = res.BackupCreated
			fileResult.Replacements = res.Replacements()
			if res.Report != nil {
				fileResult.Remaining = append(fileResult.Remaining, res.Report.Remaining...)
				fileResult.Runs = res.Report.Runs
			}
			for _, step := range res.Steps {
				fileResult.Steps = append(fileResult.Steps, JSONStep{
					From:  step.Pair.From,
					To:    step.Pair.To,
					Count: step.Count,
				})
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	output.Remaining = append(output.Remaining, result.Remaining()...)

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesProcessed:    stats.FilesProcessed,
		FilesErrored:      stats.FilesErrored,
		FilesComplete:     stats.FilesComplete,
		FilesIncomplete:   stats.FilesIncomplete,
		FilesWritten:      stats.FilesWritten,
		FilesChanged:      stats.FilesChanged,
		Replacements:      stats.Replacements,
		ResidualRuns:      stats.ResidualRuns,
		DistinctRemaining: stats.DistinctRemaining,
		Complete:          result.Complete(),
	}

	return output
}
