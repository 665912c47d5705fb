package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overridable through SetVersion (main wires -ldflags here).
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion overrides the build metadata shown by the version command.
// Empty values keep the compiled-in defaults.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
		rootCmd.Version = v
		rootCmd.SetVersionTemplate("{{.Version}}\n")
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		date = d
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bandalgom version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "bandalgom %s (commit %s, built %s)\n", version, commit, date)
		return nil
	},
}
