package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/larklaon/bandalgom/export"
	"github.com/larklaon/bandalgom/internal/ctxlog"
	"github.com/larklaon/bandalgom/pathfind"
	"github.com/larklaon/bandalgom/render"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find the shortest walk from home to the coffee shop",
	Long: `Run the full pipeline: merge the survey, build the occupancy grid, locate
home and the Bandalgom coffee shop (or the scenario's endpoint overrides),
search the shortest route, and write the route CSV and the final map PNG.

An unreachable goal is a legitimate survey outcome, not a failure: the
command prints a warning, writes the map without a route, and exits 0.`,
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
		start, goal, err := endpoints(g, sc)
		if err != nil {
			return err
		}

		log := ctxlog.FromContext(cmd.Context())
		log.Info("searching route", "start", start, "goal", goal,
			"connectivity", int(sc.Route.Connectivity))

		res, err := pathfind.FindPath(g, start, goal,
			pathfind.WithContext(cmd.Context()),
			pathfind.WithConnectivity(sc.Route.Connectivity))
		if err != nil {
			return err
		}

		opts := []render.Option{}
		if res.Found {
			opts = append(opts, render.WithPath(res.Path))
			if err := export.WritePathFile(sc.Output.PathCSV, res.Waypoints()); err != nil {
				return err
			}
		}
		m, err := render.New(g, opts...)
		if err != nil {
			return err
		}
		if err := render.WriteFile(sc.Output.FinalPNG, m); err != nil {
			return err
		}
		log.Info("route finished", "found", res.Found,
			"steps", res.Steps(), "expanded", res.Expanded)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, routeReport{
				Found:    res.Found,
				Steps:    res.Steps(),
				Expanded: res.Expanded,
				Path:     waypointsJSON(res.Waypoints()),
				PathCSV:  pathCSVName(sc.Output.PathCSV, res.Found),
				FinalPNG: sc.Output.FinalPNG,
			})
		}
		if !res.Found {
			printWarning(out, fmt.Sprintf("no walkable route from %s to %s; map written to %s",
				start, goal, sc.Output.FinalPNG))
			return nil
		}
		printSuccess(out, fmt.Sprintf("route found: %d steps over %d cells (%d expanded)",
			res.Steps(), len(res.Path), res.Expanded))
		printSuccess(out, fmt.Sprintf("wrote %s and %s", sc.Output.PathCSV, sc.Output.FinalPNG))
		return nil
	},
}

// routeReport is the --json shape of the route command.
type routeReport struct {
	Found    bool           `json:"found"`
	Steps    int            `json:"steps"`
	Expanded int            `json:"expanded"`
	Path     []waypointJSON `json:"path,omitempty"`
	PathCSV  string         `json:"path_csv,omitempty"`
	FinalPNG string         `json:"final_png"`
}

type waypointJSON struct {
	Step int `json:"step"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

func waypointsJSON(wps []pathfind.Waypoint) []waypointJSON {
	if wps == nil {
		return nil
	}
	out := make([]waypointJSON, len(wps))
	for i, wp := range wps {
		out[i] = waypointJSON{Step: wp.Step, X: wp.X, Y: wp.Y}
	}
	return out
}

// pathCSVName reports the route CSV file name only when one was written.
func pathCSVName(name string, found bool) string {
	if !found {
		return ""
	}
	return name
}
