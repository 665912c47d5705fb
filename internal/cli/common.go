package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larklaon/bandalgom/dataset"
	"github.com/larklaon/bandalgom/grid"
	"github.com/larklaon/bandalgom/internal/ctxlog"
	"github.com/larklaon/bandalgom/scenario"
)

// ErrNoLandmark is returned when the survey carries no cell for a required
// landmark and the scenario does not override that endpoint.
var ErrNoLandmark = errors.New("cli: landmark not present in survey")

// loadScenario resolves the run configuration. The default scenario file is
// optional: when it is absent the built-in conventions apply. A file named
// explicitly with --scenario must exist.
func loadScenario(cmd *cobra.Command) (*scenario.Scenario, error) {
	sc, err := scenario.Load(scenarioPath)
	if err == nil {
		return sc, nil
	}
	if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("scenario") {
		ctxlog.FromContext(cmd.Context()).Debug("no scenario file, using defaults",
			"path", scenarioPath)
		def := scenario.Default()
		return &def, nil
	}

	return nil, err
}

// loadRows loads the survey directory and applies the scenario's area
// filter. Area 0 keeps every area.
func loadRows(cmd *cobra.Command, sc *scenario.Scenario) ([]dataset.Row, error) {
	survey, err := dataset.Load(cmd.Context(), sc.Dataset.Dir)
	if err != nil {
		return nil, err
	}
	if sc.Dataset.Area == 0 {
		return survey.Rows, nil
	}

	return survey.Area(sc.Dataset.Area), nil
}

// buildGrid merges survey rows into terrain records and constructs the
// occupancy grid sized to the surveyed extent.
func buildGrid(rows []dataset.Row) (*grid.Grid, error) {
	w, h := dataset.Bounds(rows)
	return grid.Build(dataset.Records(rows), w, h)
}

// endpoints resolves the search endpoints: scenario overrides win, otherwise
// the Home and Cafe landmarks are located on the grid.
func endpoints(g *grid.Grid, sc *scenario.Scenario) (start, goal grid.Coord, err error) {
	if sc.Route.Start != nil {
		start = *sc.Route.Start
	} else if start, err = landmark(g, grid.Home); err != nil {
		return start, goal, err
	}
	if sc.Route.Goal != nil {
		goal = *sc.Route.Goal
	} else if goal, err = landmark(g, grid.Cafe); err != nil {
		return start, goal, err
	}

	return start, goal, nil
}

// landmark returns the first cell tagged t in row-major order.
func landmark(g *grid.Grid, t grid.Terrain) (grid.Coord, error) {
	hits := g.Locate(t)
	if len(hits) == 0 {
		return grid.Coord{}, fmt.Errorf("%w: %s", ErrNoLandmark, t)
	}

	return hits[0], nil
}
