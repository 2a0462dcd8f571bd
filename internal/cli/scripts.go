package cli

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/yaklabco/rescript/pkg/script"
)

const formatJSON = "json"

// scriptInfo represents a script range in JSON output.
type scriptInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Ranges      string `json:"ranges"`
	Default     bool   `json:"default"`
}

func newScriptsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scripts",
		Short: "List the built-in script ranges",
		Long: `List the named script ranges accepted by --script and the 'script' config key,
with the code point intervals each one covers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := make([]scriptInfo, 0, len(script.Builtins()))
			for _, builtin := range script.Builtins() {
				rng, err := script.Lookup(builtin.Name)
				if err != nil {
					return fmt.Errorf("lookup %s: %w", builtin.Name, err)
				}
				infos = append(infos, scriptInfo{
					Name:        builtin.Name,
					Description: builtin.Description,
					Ranges:      rng.String(),
					Default:     builtin.Name == script.DefaultName,
				})
			}

			switch format {
			case formatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(infos); err != nil {
					return fmt.Errorf("encoding scripts: %w", err)
				}
				return nil
			case "text":
				return writeScriptsTable(cmd, infos)
			default:
				return usageErrorf("invalid format %q: must be text or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// maxRangesWidth keeps the union ranges from dominating the table.
const maxRangesWidth = 48

func writeScriptsTable(cmd *cobra.Command, infos []scriptInfo) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Description", "Ranges"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, info := range infos {
		name := info.Name
		if info.Default {
			name += " (default)"
		}
		ranges := info.Ranges
		if len(ranges) > maxRangesWidth {
			ranges = ranges[:maxRangesWidth-3] + "..."
		}
		table.Append([]string{name, info.Description, ranges})
	}

	table.Render()
	return nil
}
