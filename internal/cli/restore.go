package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/fsutil"
)

func newRestoreCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "restore PATH...",
		Short: "Undo 'apply --backup' from the .rescript.bak sidecars",
		Long: `Copy each PATH` + fsutil.BackupSuffix + ` sidecar back over PATH.

The sidecar is deleted afterwards unless --keep is given. Paths without a
sidecar are reported and skipped; the exit status is non-zero if any were.`,
		Args: requirePaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd.Context(), args, keep)
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep the sidecar after restoring")

	return cmd
}

func runRestore(ctx context.Context, paths []string, keep bool) error {
	logger := logging.FromContext(ctx)

	var failed []error
	for _, path := range paths {
		if err := fsutil.RestoreBackup(ctx, path); err != nil {
			logger.Error("restore failed", logging.FieldPath, path, logging.FieldError, err)
			failed = append(failed, err)
			continue
		}
		if !keep {
			if _, err := fsutil.RemoveBackup(path); err != nil {
				logger.Warn("could not remove backup", logging.FieldPath, fsutil.BackupPath(path), logging.FieldError, err)
			}
		}
		logger.Info("restored", logging.FieldPath, path, logging.FieldBackup, fsutil.BackupPath(path))
	}

	if len(failed) > 0 {
		return withExitCode(ExitIOError,
			fmt.Errorf("%d of %d files not restored: %w", len(failed), len(paths), errors.Join(failed...)))
	}
	return nil
}
