package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/rewrite"
)

// ErrDuplicatePath is returned when the same file is named twice. Two runs
// over one file would race between read and write.
var ErrDuplicatePath = errors.New("duplicate path")

// Run processes every path with rewrite.Run.
//
// Each file is handled end-to-end by a single worker; distinct files may be
// processed concurrently. A failing file does not stop the others: its error
// is recorded in its FileOutcome. Outcomes are returned in input order.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := checkDistinct(opts.Paths); err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(opts.Paths))}
	if len(opts.Paths) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(opts.Paths))

	logger := logging.FromContext(ctx)
	logger.Debug("starting run",
		logging.FieldPaths, len(opts.Paths),
		logging.FieldJobs, jobs,
		logging.FieldPairs, opts.Rewrite.Table.Len(),
	)

	outcomes := make([]FileOutcome, len(opts.Paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for idx, path := range opts.Paths {
		group.Go(func() error {
			outcome := FileOutcome{Path: path}
			if err := groupCtx.Err(); err != nil {
				outcome.Error = fmt.Errorf("run cancelled: %w", err)
				outcomes[idx] = outcome
				return nil
			}

			res, err := rewrite.Run(groupCtx, path, opts.Rewrite)
			if err != nil {
				outcome.Error = err
			} else {
				outcome.Result = res
			}
			outcomes[idx] = outcome
			return nil
		})
	}

	// Workers never return errors; per-file failures live in the outcomes.
	_ = group.Wait()

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	result.Stats.DistinctRemaining = len(result.Remaining())

	logger.Debug("run finished",
		logging.FieldComplete, result.Complete(),
		logging.FieldWritten, result.Stats.FilesWritten,
		logging.FieldRemaining, result.Stats.DistinctRemaining,
	)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func checkDistinct(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		key := filepath.Clean(path)
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if first, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s and %s", ErrDuplicatePath, first, path)
		}
		seen[key] = path
	}
	return nil
}
