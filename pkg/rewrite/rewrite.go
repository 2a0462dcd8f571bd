// Package rewrite runs the substitution and residue check over one file and
// persists the result back to the same path.
package rewrite

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/fsutil"
	"github.com/yaklabco/rescript/pkg/langdetect"
	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/script"
	"github.com/yaklabco/rescript/pkg/subst"
)

// ErrBinary is returned for files that look like binary data.
var ErrBinary = errors.New("binary content")

// Mode selects what a run does with a file.
type Mode int

const (
	// ModeApply substitutes, scans, and writes the file back.
	ModeApply Mode = iota

	// ModeCheck only scans the file as it is. Nothing is written.
	ModeCheck
)

func (m Mode) String() string {
	switch m {
	case ModeApply:
		return "apply"
	case ModeCheck:
		return "check"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures a run. Table and Range are shared read-only between runs.
type Options struct {
	// Mode selects apply or check.
	Mode Mode

	// Table is the ordered replacement table. Ignored in ModeCheck.
	Table *mapping.Table

	// Range is the script whose residue is reported.
	Range script.Range

	// DryRun computes the output but does not write it.
	DryRun bool

	// Backup writes a sidecar copy of the original before overwriting.
	Backup bool
}

// Result is the outcome of one run.
type Result struct {
	// Path is the file that was processed.
	Path string

	// Language is the detected language of the file.
	Language string

	// Original is the content as read.
	Original string

	// Output is the content after substitution (equal to Original in ModeCheck).
	Output string

	// Steps holds per-pair replacement counts (empty in ModeCheck).
	Steps []subst.Step

	// Report is the residue scan of Output.
	Report *script.Report

	// Written is true if Output was persisted to Path.
	Written bool

	// BackupCreated is true if a sidecar backup was written.
	BackupCreated bool
}

// Changed reports whether substitution altered the content.
func (r *Result) Changed() bool {
	return r.Original != r.Output
}

// Complete reports whether no residual script text remains.
func (r *Result) Complete() bool {
	return r.Report != nil && r.Report.Complete
}

// Replacements returns the total number of occurrences replaced.
func (r *Result) Replacements() int {
	var total int
	for _, step := range r.Steps {
		total += step.Count
	}
	return total
}

// Run processes one file.
//
// In ModeApply the output is written back to path unconditionally (unless
// DryRun), even when residue remains; residue is reported, not an error.
// Read failures are returned before anything is written.
func Run(ctx context.Context, path string, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	original, info, err := fsutil.ReadText(ctx, path)
	if err != nil {
		return nil, err
	}
	if langdetect.IsBinary([]byte(original)) {
		return nil, fmt.Errorf("%w: %s", ErrBinary, path)
	}

	result := &Result{
		Path:     path,
		Language: langdetect.Detect(path, []byte(original)),
		Original: original,
		Output:   original,
	}

	var unused int
	if opts.Mode == ModeApply {
		applied := subst.ApplyWithSteps(original, opts.Table)
		result.Output = applied.Output
		result.Steps = applied.Steps
		unused = len(applied.Unused())
	}

	result.Report = script.Scan(result.Output, opts.Range)

	logger.Debug("processed file",
		logging.FieldPath, path,
		logging.FieldLanguage, result.Language,
		logging.FieldBytes, len(original),
		logging.FieldReplaced, result.Replacements(),
		logging.FieldUnused, unused,
		logging.FieldRemaining, len(result.Report.Remaining),
	)

	if opts.Mode != ModeApply || opts.DryRun {
		return result, nil
	}

	if opts.Backup {
		created, err := fsutil.CreateBackup(ctx, path, []byte(original), info.Mode)
		if err != nil {
			return nil, fmt.Errorf("backup %s: %w", path, err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(result.Output), info.Mode); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	result.Written = true

	return result, nil
}
