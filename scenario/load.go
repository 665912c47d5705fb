// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/larklaon/bandalgom/grid"
	"github.com/larklaon/bandalgom/pathfind"
)

// hclScenario mirrors the file layout for gohcl decoding. Coordinates stay
// as hcl.Expression until evaluated, so the error can point at the exact
// source range.
type hclScenario struct {
	Dataset *hclDataset `hcl:"dataset,block"`
	Route   *hclRoute   `hcl:"route,block"`
	Output  *hclOutput  `hcl:"output,block"`
}

type hclDataset struct {
	Dir  string `hcl:"dir,optional"`
	Area *int   `hcl:"area,optional"`
}

type hclRoute struct {
	Connectivity *int           `hcl:"connectivity,optional"`
	Start        hcl.Expression `hcl:"start,optional"`
	Goal         hcl.Expression `hcl:"goal,optional"`
}

type hclOutput struct {
	SurveyCSV  string `hcl:"survey_csv,optional"`
	SummaryCSV string `hcl:"summary_csv,optional"`
	MapPNG     string `hcl:"map_png,optional"`
	FinalPNG   string `hcl:"final_png,optional"`
	PathCSV    string `hcl:"path_csv,optional"`
}

// Load reads and decodes one scenario file. A missing file surfaces the
// underlying not-exist error so callers can fall back to Default.
func Load(path string) (*Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes scenario HCL source; filename seeds diagnostic positions.
// Absent blocks and attributes keep their Default values.
func Parse(src []byte, filename string) (*Scenario, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: parse %s: %s: %w", filename, diags.Error(), ErrDecode)
	}

	var raw hclScenario
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("scenario: decode %s: %s: %w", filename, diags.Error(), ErrDecode)
	}

	sc := Default()
	if err := raw.apply(&sc); err != nil {
		return nil, err
	}

	return &sc, nil
}

// apply overlays the decoded file onto the defaults.
func (h *hclScenario) apply(sc *Scenario) error {
	if h.Dataset != nil {
		if h.Dataset.Dir != "" {
			sc.Dataset.Dir = h.Dataset.Dir
		}
		if h.Dataset.Area != nil {
			sc.Dataset.Area = *h.Dataset.Area
		}
	}
	if h.Route != nil {
		if h.Route.Connectivity != nil {
			switch *h.Route.Connectivity {
			case 4:
				sc.Route.Connectivity = pathfind.Conn4
			case 8:
				sc.Route.Connectivity = pathfind.Conn8
			default:
				return fmt.Errorf("scenario: connectivity %d: %w", *h.Route.Connectivity, ErrBadConnectivity)
			}
		}
		start, err := coordFromExpr(h.Route.Start)
		if err != nil {
			return err
		}
		if start != nil {
			sc.Route.Start = start
		}
		goal, err := coordFromExpr(h.Route.Goal)
		if err != nil {
			return err
		}
		if goal != nil {
			sc.Route.Goal = goal
		}
	}
	if h.Output != nil {
		overlay(&sc.Output.SurveyCSV, h.Output.SurveyCSV)
		overlay(&sc.Output.SummaryCSV, h.Output.SummaryCSV)
		overlay(&sc.Output.MapPNG, h.Output.MapPNG)
		overlay(&sc.Output.FinalPNG, h.Output.FinalPNG)
		overlay(&sc.Output.PathCSV, h.Output.PathCSV)
	}

	return nil
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// coordFromExpr evaluates an [x, y] expression into a coordinate, accepting
// any collection convertible to a pair of numbers. A nil or null expression
// means "not configured" and returns nil without error.
func coordFromExpr(expr hcl.Expression) (*grid.Coord, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("scenario: %s: %s: %w", expr.Range(), diags.Error(), ErrBadCoordinate)
	}
	if val.IsNull() {
		return nil, nil
	}

	pair, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %s: %w", expr.Range(), err, ErrBadCoordinate)
	}
	if pair.LengthInt() != 2 {
		return nil, fmt.Errorf("scenario: %s: want [x, y], got %d elements: %w",
			expr.Range(), pair.LengthInt(), ErrBadCoordinate)
	}

	var xy [2]int
	i := 0
	for it := pair.ElementIterator(); it.Next(); i++ {
		_, v := it.Element()
		if err = gocty.FromCtyValue(v, &xy[i]); err != nil {
			return nil, fmt.Errorf("scenario: %s: %s: %w", expr.Range(), err, ErrBadCoordinate)
		}
	}

	return &grid.Coord{X: xy[0], Y: xy[1]}, nil
}
