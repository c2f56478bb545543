package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textmark/textmark/pkg/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var jsonOutput bool
	var shortOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information.

The default output includes the git commit, build date, and Go version
baked in at build time. Use --short in scripts that only need the
version number, or --json for structured output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Short output takes precedence
			if shortOutput {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return err
			}

			if jsonOutput {
				info := version.GetInfo()
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")
	cmd.Flags().BoolVar(&shortOutput, "short", false, "Output only the version number")

	return cmd
}
