package runner

import "github.com/yaklabco/rescript/pkg/rewrite"

// FileOutcome is the result of one path.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result is nil when Error is set.
	Result *rewrite.Result

	// Error is set if the file could not be read or written.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files read successfully.
	FilesProcessed int

	// FilesErrored is the number of files that failed.
	FilesErrored int

	// FilesComplete is the number of files with no residue.
	FilesComplete int

	// FilesIncomplete is the number of files with residue.
	FilesIncomplete int

	// FilesWritten is the number of files persisted.
	FilesWritten int

	// FilesChanged is the number of files whose content changed.
	FilesChanged int

	// Replacements is the total number of occurrences replaced.
	Replacements int

	// ResidualRuns is the total number of residual runs, duplicates included.
	ResidualRuns int

	// DistinctRemaining is the number of distinct residual runs across files.
	DistinctRemaining int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per input path, in input order.
	Files []FileOutcome

	// Stats aggregates Files.
	Stats Stats
}

// Complete reports whether every file was processed and has no residue.
func (r *Result) Complete() bool {
	if r == nil {
		return true
	}
	return r.Stats.FilesErrored == 0 && r.Stats.FilesIncomplete == 0
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Remaining returns the distinct residual runs over all files, in first-seen order.
func (r *Result) Remaining() []string {
	if r == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, file := range r.Files {
		if file.Result == nil || file.Result.Report == nil {
			continue
		}
		for _, text := range file.Result.Report.Remaining {
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
			out = append(out, text)
		}
	}
	return out
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	res := outcome.Result
	r.Stats.FilesProcessed++
	r.Stats.Replacements += res.Replacements()

	if res.Complete() {
		r.Stats.FilesComplete++
	} else {
		r.Stats.FilesIncomplete++
	}
	if res.Written {
		r.Stats.FilesWritten++
	}
	if res.Changed() {
		r.Stats.FilesChanged++
	}
	if res.Report != nil {
		r.Stats.ResidualRuns += len(res.Report.Runs)
	}
}
