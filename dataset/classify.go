// SPDX-License-Identifier: MIT

package dataset

import (
	"sort"
	"strings"

	"github.com/larklaon/bandalgom/grid"
)

// Records converts merged survey rows into grid records. Every row yields a
// terrain record for its structure (Road when the cell carries none), and a
// flagged cell additionally yields a ConstructionSite record; the grid
// priority pass resolves the overlap so the site wins.
func Records(rows []Row) []grid.Record {
	records := make([]grid.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, grid.Record{X: r.X, Y: r.Y, Tag: classify(r.Struct)})
		if r.ConstructionSite {
			records = append(records, grid.Record{X: r.X, Y: r.Y, Tag: grid.ConstructionSite})
		}
	}

	return records
}

// classify maps a resolved structure name to its terrain tag. Matching is
// case- and spacing-insensitive: any coffee branch is the goal landmark,
// any home variant the start landmark, apartments and buildings block, and
// anything else is surveyed walkable ground.
func classify(name string) grid.Terrain {
	n := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	switch {
	case n == "":
		return grid.Road
	case strings.Contains(n, "coffee") || strings.Contains(n, "cafe"):
		return grid.Cafe
	case strings.Contains(n, "home") || strings.Contains(n, "house"):
		return grid.Home
	case strings.Contains(n, "apartment") || strings.Contains(n, "building"):
		return grid.Building
	default:
		return grid.Road
	}
}

// Summary aggregates per-structure counts over rows, descending by count
// and ascending by name on ties. Cells without a structure are not part of
// the report.
func Summary(rows []Row) []StructCount {
	counts := make(map[string]int)
	for _, r := range rows {
		if r.Struct != "" {
			counts[r.Struct]++
		}
	}
	out := make([]StructCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, StructCount{Struct: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Struct < out[j].Struct
	})

	return out
}

// Bounds derives grid dimensions from the maximum x and y observed in rows.
func Bounds(rows []Row) (width, height int) {
	for _, r := range rows {
		if r.X > width {
			width = r.X
		}
		if r.Y > height {
			height = r.Y
		}
	}

	return width, height
}
