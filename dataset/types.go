// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Sentinel errors for survey loading and merging.
var (
	// ErrMissingColumn indicates a required header is absent.
	ErrMissingColumn = errors.New("dataset: required column missing")
	// ErrBadNumber indicates a numeric cell that does not parse.
	ErrBadNumber = errors.New("dataset: malformed numeric field")
	// ErrUnknownCategory indicates a non-zero category id with no name entry.
	ErrUnknownCategory = errors.New("dataset: category id has no name entry")
	// ErrUnmatchedCell indicates a structure row missing from the area map.
	ErrUnmatchedCell = errors.New("dataset: structure cell missing from area map")
)

// Row is one merged survey observation: the structure (if any) standing at a
// 1-indexed cell, the administrative area it belongs to, and whether the
// cell is an active construction site.
type Row struct {
	Area             int
	X, Y             int
	Category         int
	Struct           string // resolved name, empty when no structure
	ConstructionSite bool
}

// StructCount pairs a structure name with its occurrence count.
type StructCount struct {
	Struct string
	Count  int
}

// Survey holds the merged rows of one dataset directory, sorted by
// (area, y, x).
type Survey struct {
	Rows []Row
}

// Area returns the rows belonging to one administrative area, preserving
// the survey order.
func (s *Survey) Area(n int) []Row {
	var out []Row
	for _, r := range s.Rows {
		if r.Area == n {
			out = append(out, r)
		}
	}

	return out
}
