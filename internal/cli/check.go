package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/rewrite"
)

type checkFlags struct {
	scanFlags
	outputFlags
}

func newCheckCommand(globals *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check PATH...",
		Short: "Report residual script text without rewriting",
		Long: `Scan files for text in the selected script and report every distinct run,
without applying any mapping and without writing.

Exits with status 1 when any file still contains text in the script, which
makes it usable as a CI gate after translation.

Examples:
  rescript check contracts/*.sol
  rescript check --script hangul --format json docs/guide.md`,
		Args: requirePaths,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, globals, flags)
		},
	}

	addScanFlags(cmd, &flags.scanFlags)
	addOutputFlags(cmd, &flags.outputFlags)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, globals *globalFlags, flags *checkFlags) error {
	cliCfg := &config.Config{}
	flags.scanFlags.apply(cmd, cliCfg)
	flags.outputFlags.apply(cmd, cliCfg)

	sess, err := newSession(cmd, globals, cliCfg)
	if err != nil {
		return err
	}

	opts := rewrite.Options{
		Mode:  rewrite.ModeCheck,
		Range: sess.rng,
	}

	return sess.run(cmd, args, opts, &flags.outputFlags, globals.color, true)
}
