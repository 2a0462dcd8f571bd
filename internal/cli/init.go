package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/internal/configloader"
	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/fsutil"
)

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented .rescript.yml in the current directory",
		Long: `Create a new ` + configloader.ProjectConfigFiles[0] + ` configuration file with the default
settings and a comment for every key.

Examples:
  rescript init                      Create .rescript.yml
  rescript init --output ci.yml      Write to a custom path
  rescript init --force              Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: "+configloader.ProjectConfigFiles[0]+")")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return withExitCode(ExitIOError, fmt.Errorf("stat %s: %w", outputPath, err))
	}

	if err := fsutil.WriteAtomic(ctx, absPath, []byte(config.Template), fsutil.DefaultFileMode); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("list your mapping files under 'mappings', then run 'rescript apply PATH...'")

	return nil
}
