// Package cli wires the survey pipeline into the bandalgom command tree:
// analyze (merge + statistics), draw (base map), route (grid + search +
// artifacts), version.
package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/larklaon/bandalgom/internal/ctxlog"
)

var (
	// Persistent flags, shared by every command.
	scenarioPath string
	logLevel     string
	logFormat    string
	jsonOutput   bool
	noColor      bool
)

// rootCmd is the root command for bandalgom.
var rootCmd = &cobra.Command{
	Use:     "bandalgom",
	Version: version,
	Short:   "Survey-grid route planner for the Bandalgom coffee map",
	Long: `bandalgom merges the area survey tables into an occupancy grid, draws the
neighborhood map, and walks the shortest route from home to the Bandalgom
coffee shop.

Runs are configured through an HCL scenario file; without one the original
survey conventions apply (./dataFile inputs, area 1, artifacts in the
working directory).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		logger, err := ctxlog.New(logLevel, logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&scenarioPath, "scenario", "scenario.hcl", "Scenario file (HCL)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text|json")
	pf.BoolVar(&jsonOutput, "json", false, "Output reports in JSON format")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command, printing any failure once, in red, to
// stderr. The caller decides the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(os.Stderr, err.Error())
	}
	return err
}
