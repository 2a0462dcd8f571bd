// Package cli provides the Cobra command structure for rescript.
package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/internal/configloader"
	"github.com/yaklabco/rescript/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
	logFile    string

	logCloser io.Closer
}

// NewRootCommand creates the root rescript command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "rescript",
		Short: "Rewrite source text through ordered literal mapping tables",
		Long: `rescript rewrites text files in place through an ordered table of literal
replacements, then scans the result for text that is still written in a
given script (Chinese ideographs by default) and reports what is left.

Typical use is translating comments and strings in source files: keep the
translations in a YAML mapping file, run 'rescript apply', and the report
tells you which phrases still need an entry.` + "\n\n" + environmentHelp(),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return globals.setupLogging(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return globals.close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&globals.logFile, "log-file", "",
		"also write logs to this file (rotated at 10 MB)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(newApplyCommand(globals))
	rootCmd.AddCommand(newCheckCommand(globals))
	rootCmd.AddCommand(newRestoreCommand())
	rootCmd.AddCommand(newScriptsCommand())
	rootCmd.AddCommand(newMappingsCommand(globals))
	rootCmd.AddCommand(newConfigCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(globals.color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// setupLogging builds the per-invocation logger and stores it in the
// command context.
func (g *globalFlags) setupLogging(cmd *cobra.Command) error {
	level := "info"
	if g.debug {
		level = "debug"
	}

	stderr := cmd.ErrOrStderr()
	logger := logging.NewWithWriter(stderr, level)
	if g.logFile != "" {
		g.logCloser = logging.TeeToFile(logger, stderr, logging.DefaultFileOptions(g.logFile))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

func (g *globalFlags) close() error {
	if g.logCloser == nil {
		return nil
	}
	err := g.logCloser.Close()
	g.logCloser = nil
	return err
}

// environmentHelp lists the RESCRIPT_* variables for the root help text.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := slices.Sorted(maps.Keys(vars))

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var builder strings.Builder
	builder.WriteString("Environment (overrides config files, overridden by flags):")
	for _, name := range names {
		fmt.Fprintf(&builder, "\n  %-*s  %s", width, name, vars[name])
	}
	return builder.String()
}
