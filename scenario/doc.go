// SPDX-License-Identifier: MIT

// Package scenario decodes the HCL run configuration that drives the
// pipeline commands: where the survey CSVs live, which area to analyze, how
// the route may move, and where the outputs land.
//
// A minimal file needs nothing at all; every block and attribute is
// optional and falls back to the conventions of the original survey
// pipeline (see Default). A full file:
//
//	dataset {
//	  dir  = "dataFile"
//	  area = 1          # 0 selects every area
//	}
//
//	route {
//	  connectivity = 8        # 4 or 8
//	  start        = [14, 2]  # omit to locate the Home landmark
//	  goal         = [14, 8]  # omit to locate the Cafe landmark
//	}
//
//	output {
//	  survey_csv  = "area1_data.csv"
//	  summary_csv = "area1_summary.csv"
//	  map_png     = "map.png"
//	  final_png   = "map_final.png"
//	  path_csv    = "home_to_cafe.csv"
//	}
//
// Errors:
//
//   - ErrDecode: HCL syntax or structure diagnostics.
//   - ErrBadCoordinate: start/goal is not a [x, y] pair of numbers.
//   - ErrBadConnectivity: connectivity other than 4 or 8.
package scenario
