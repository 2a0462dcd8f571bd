package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/internal/configloader"
	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/mapping"
	"github.com/yaklabco/rescript/pkg/reporter"
	"github.com/yaklabco/rescript/pkg/rewrite"
	"github.com/yaklabco/rescript/pkg/runner"
	"github.com/yaklabco/rescript/pkg/script"
)

// outputFlags are the report flags shared by apply and check.
type outputFlags struct {
	format    string
	noContext bool
	compact   bool
}

func addOutputFlags(cmd *cobra.Command, flags *outputFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, table, diff")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minified JSON output")
}

// scanFlags select the script range; shared by apply and check.
type scanFlags struct {
	script string
	ranges string
	jobs   int
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.script, "script", "", "script range to scan for (see 'rescript scripts')")
	cmd.Flags().StringVar(&flags.ranges, "range", "", "custom code point ranges, e.g. 4E00-9FA5,U+3007")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
}

// apply copies only the flags the user actually set, so config files keep
// their values for the rest.
func (f *scanFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("script") {
		cfg.Script = f.script
	}
	if cmd.Flags().Changed("range") {
		cfg.Ranges = f.ranges
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
}

func (f *outputFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
}

// session is everything a run needs once configuration is resolved.
type session struct {
	ctx     context.Context
	logger  *log.Logger
	cfg     *config.Config
	workDir string
	rng     script.Range
}

func newSession(cmd *cobra.Command, globals *globalFlags, cliCfg *config.Config) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	rng, err := configloader.Range(cfg)
	if err != nil {
		return nil, withExitCode(ExitConfigError, err)
	}

	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldScript, rng.Name(),
		logging.FieldRange, rng.String(),
		logging.FieldMappings, cfg.Mappings,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldBackup, cfg.BackupEnabled(),
		logging.FieldJobs, cfg.Jobs,
	)

	return &session{ctx: ctx, logger: logger, cfg: cfg, workDir: workDir, rng: rng}, nil
}

// loadTable reads the configured mapping files into one table.
func (s *session) loadTable() (*mapping.Table, error) {
	if len(s.cfg.Mappings) == 0 {
		s.logger.Warn("no mapping files configured; files are scanned and written back unchanged")
		return mapping.Empty(), nil
	}

	table, err := mapping.LoadFiles(s.cfg.Mappings...)
	if err != nil {
		code := ExitConfigError
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			code = ExitIOError
		}
		return nil, withExitCode(code, fmt.Errorf("load mappings: %w", err))
	}

	s.logger.Debug("loaded mapping table",
		logging.FieldMappings, s.cfg.Mappings,
		logging.FieldPairs, table.Len(),
	)

	pairs := table.Pairs()
	for _, shadow := range table.Shadowed() {
		s.logger.Warn("pair can never match; an earlier pair rewrites its source text first",
			logging.FieldPair, shadow.Index+1,
			logging.FieldFrom, pairs[shadow.Index].From,
			logging.FieldEarlier, shadow.By+1,
			logging.FieldEarlierFrom, pairs[shadow.By].From,
		)
	}
	return table, nil
}

// run processes paths, renders the report and turns the outcome into an
// exit status. failOnResidue selects whether residue is an ErrIncomplete.
func (s *session) run(cmd *cobra.Command, paths []string, opts rewrite.Options, output *outputFlags, colorMode string, failOnResidue bool) error {
	result, err := runner.Run(s.ctx, runner.Options{
		Paths:   paths,
		Jobs:    s.cfg.Jobs,
		Rewrite: opts,
	})
	if errors.Is(err, runner.ErrDuplicatePath) {
		return usageError(err)
	}
	if err != nil && result == nil {
		return fmt.Errorf("run: %w", err)
	}

	format, fmtErr := reporter.ParseFormat(string(s.cfg.Format))
	if fmtErr != nil {
		return withExitCode(ExitConfigError, fmtErr)
	}

	rep, repErr := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !output.noContext,
		ShowSummary: true,
		Compact:     output.compact,
		WorkingDir:  s.workDir,
	})
	if repErr != nil {
		return fmt.Errorf("create reporter: %w", repErr)
	}
	if _, repErr := rep.Report(s.ctx, result); repErr != nil {
		return withExitCode(ExitIOError, fmt.Errorf("report results: %w", repErr))
	}

	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	for _, file := range result.Files {
		if file.Error != nil {
			s.logger.Debug("file failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}

	switch {
	case result.HasErrors():
		return withExitCode(ExitIOError,
			fmt.Errorf("%d of %d files could not be processed", result.Stats.FilesErrored, len(result.Files)))
	case !result.Complete() && failOnResidue:
		return ErrIncomplete
	default:
		return nil
	}
}

func requirePaths(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageErrorf("at least one file path is required")
	}
	return nil
}
