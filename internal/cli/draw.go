package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larklaon/bandalgom/internal/ctxlog"
	"github.com/larklaon/bandalgom/render"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Render the neighborhood map",
	Long: `Build the occupancy grid from the survey and render the base map PNG:
structure markers, construction sites, and grid lines, without a route.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd)
		if err != nil {
			return err
		}
		rows, err := loadRows(cmd, sc)
		if err != nil {
			return err
		}
		g, err := buildGrid(rows)
		if err != nil {
			return err
		}

		m, err := render.New(g)
		if err != nil {
			return err
		}
		if err := render.WriteFile(sc.Output.MapPNG, m); err != nil {
			return err
		}
		ctxlog.FromContext(cmd.Context()).Info("map rendered",
			"file", sc.Output.MapPNG, "width", g.Width(), "height", g.Height())

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, drawReport{
				File:   sc.Output.MapPNG,
				Width:  g.Width(),
				Height: g.Height(),
			})
		}
		printSuccess(out, fmt.Sprintf("map written to %s (%dx%d cells)",
			sc.Output.MapPNG, g.Width(), g.Height()))
		return nil
	},
}

// drawReport is the --json shape of the draw command.
type drawReport struct {
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
