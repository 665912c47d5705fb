// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"

	"github.com/larklaon/bandalgom/grid"
	"github.com/larklaon/bandalgom/pathfind"
)

// Sentinel errors for scenario decoding.
var (
	// ErrDecode indicates HCL syntax or structure diagnostics.
	ErrDecode = errors.New("scenario: cannot decode configuration")
	// ErrBadCoordinate indicates a start/goal value that is not an [x, y]
	// pair of numbers.
	ErrBadCoordinate = errors.New("scenario: coordinate must be [x, y]")
	// ErrBadConnectivity indicates a connectivity other than 4 or 8.
	ErrBadConnectivity = errors.New("scenario: connectivity must be 4 or 8")
)

// Scenario is one configured pipeline run.
type Scenario struct {
	Dataset Dataset
	Route   Route
	Output  Output
}

// Dataset selects the survey input.
type Dataset struct {
	// Dir holds the three survey CSVs.
	Dir string
	// Area filters rows to one administrative area; 0 selects every area.
	Area int
}

// Route tunes the search.
type Route struct {
	// Connectivity is the movement rule handed to the path finder.
	Connectivity pathfind.Connectivity
	// Start and Goal override landmark location when non-nil.
	Start, Goal *grid.Coord
}

// Output names the artifact files. Empty names keep an artifact disabled
// only where a command documents that; the pipeline commands write every
// file they are configured with.
type Output struct {
	SurveyCSV  string
	SummaryCSV string
	MapPNG     string
	FinalPNG   string
	PathCSV    string
}

// Default returns the conventions of the original survey pipeline: data in
// ./dataFile, area 1, 8-connected movement, landmark endpoints, artifact
// files in the working directory.
func Default() Scenario {
	return Scenario{
		Dataset: Dataset{
			Dir:  "dataFile",
			Area: 1,
		},
		Route: Route{
			Connectivity: pathfind.Conn8,
		},
		Output: Output{
			SurveyCSV:  "area1_data.csv",
			SummaryCSV: "area1_summary.csv",
			MapPNG:     "map.png",
			FinalPNG:   "map_final.png",
			PathCSV:    "home_to_cafe.csv",
		},
	}
}
