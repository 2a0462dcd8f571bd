package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/internal/logging"
	"github.com/yaklabco/rescript/pkg/config"
	"github.com/yaklabco/rescript/pkg/script"
)

func newConfigCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration that apply and check would use in this directory,
after merging the user file, the project file, --config and RESCRIPT_*
variables. Mapping paths are shown resolved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, globals, &config.Config{})
			if err != nil {
				return err
			}

			out, err := sess.cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

type mappingsFlags struct {
	scanFlags

	mappings []string
}

func newMappingsCommand(globals *globalFlags) *cobra.Command {
	flags := &mappingsFlags{}

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "Print the merged mapping table and warn about dead pairs",
		Long: `Load the configured mapping files, concatenate them, and print the table
that apply would use as a list of {from, to} items, in application order.

A warning is logged for every pair that can never match because an earlier
pair's source text is part of its own, and for every replacement that itself
contains text in the selected script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCfg := &config.Config{}
			if cmd.Flags().Changed("mapping") {
				cliCfg.Mappings = flags.mappings
			}
			flags.scanFlags.apply(cmd, cliCfg)

			sess, err := newSession(cmd, globals, cliCfg)
			if err != nil {
				return err
			}
			table, err := sess.loadTable()
			if err != nil {
				return err
			}

			pairs := table.Pairs()
			for idx, pair := range pairs {
				if script.Contains(pair.To, sess.rng) {
					sess.logger.Warn("replacement contains script text",
						logging.FieldPair, idx+1,
						logging.FieldFrom, pair.From,
						logging.FieldTo, pair.To,
					)
				}
			}

			out, err := table.ToYAML()
			if err != nil {
				return fmt.Errorf("render mappings: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&flags.mappings, "mapping", "m", nil,
		"mapping file (repeatable; tables are applied in the order given)")
	addScanFlags(cmd, &flags.scanFlags)

	return cmd
}
