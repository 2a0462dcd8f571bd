package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/rewrite"
)

type applyFlags struct {
	scanFlags
	outputFlags

	mappings []string
	dryRun   bool
	backup   bool
	strict   bool
}

func newApplyCommand(globals *globalFlags) *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply PATH...",
		Short: "Rewrite files in place through the mapping table",
		Long:  applyLongDescription,
		Args:  requirePaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args, globals, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.mappings, "mapping", "m", nil,
		"mapping file (repeatable; tables are applied in the order given)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "compute and report without writing files")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a PATH.rescript.bak copy of each original")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with status 1 when residual text remains")
	addScanFlags(cmd, &flags.scanFlags)
	addOutputFlags(cmd, &flags.outputFlags)

	return cmd
}

const applyLongDescription = `Rewrite each file through the mapping table, then scan the result for
text that is still in the selected script.

Every pair of the table is applied in order, replacing all occurrences of
its source text. The rewritten content is written back to the same path
even when residual text remains; residue is reported, not treated as an
error. Use --strict to turn residue into a non-zero exit status.

Mapping files are YAML, either a mapping of source to target text or a
list of {from, to} items. Several files are concatenated in order.

Examples:
  rescript apply -m zh-en.yml contracts/ChainVote.sol
  rescript apply -m base.yml -m extra.yml --backup src/*.sol
  rescript apply -m zh-en.yml --dry-run --format diff ChainVote.sol
  rescript apply -m ja-en.yml --script hiragana --strict notes.txt`

func runApply(cmd *cobra.Command, args []string, globals *globalFlags, flags *applyFlags) error {
	cliCfg := &config.Config{DryRun: flags.dryRun}
	if cmd.Flags().Changed("mapping") {
		cliCfg.Mappings = flags.mappings
	}
	if cmd.Flags().Changed("backup") {
		cliCfg.Backup = config.Bool(flags.backup)
	}
	if cmd.Flags().Changed("strict") {
		cliCfg.Strict = config.Bool(flags.strict)
	}
	flags.scanFlags.apply(cmd, cliCfg)
	flags.outputFlags.apply(cmd, cliCfg)

	sess, err := newSession(cmd, globals, cliCfg)
	if err != nil {
		return err
	}

	table, err := sess.loadTable()
	if err != nil {
		return err
	}

	opts := rewrite.Options{
		Mode:   rewrite.ModeApply,
		Table:  table,
		Range:  sess.rng,
		DryRun: sess.cfg.DryRun,
		Backup: sess.cfg.BackupEnabled(),
	}

	return sess.run(cmd, args, opts, &flags.outputFlags, globals.color, sess.cfg.StrictEnabled())
}
