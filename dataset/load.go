// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/larklaon/bandalgom/grid"
	"github.com/larklaon/bandalgom/internal/ctxlog"
)

// Survey file names inside a dataset directory.
const (
	CategoryFile = "area_category.csv"
	MapFile      = "area_map.csv"
	StructFile   = "area_struct.csv"
)

// Load reads the three survey CSVs from dir, resolves category ids to
// structure names, merges the structure and construction tables on (x, y),
// and returns the rows sorted by (area, y, x).
//
// Any malformed cell aborts the load with the file, row, and column wrapped
// around the matching sentinel; nothing is skipped or defaulted.
func Load(ctx context.Context, dir string) (*Survey, error) {
	categories, err := loadCategories(filepath.Join(dir, CategoryFile))
	if err != nil {
		return nil, err
	}
	sites, err := loadSites(filepath.Join(dir, MapFile))
	if err != nil {
		return nil, err
	}
	rows, err := loadStructs(filepath.Join(dir, StructFile), categories, sites)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}

		return a.X < b.X
	})

	flagged := 0
	for _, r := range rows {
		if r.ConstructionSite {
			flagged++
		}
	}
	ctxlog.FromContext(ctx).Info("survey loaded",
		"dir", dir,
		"rows", len(rows),
		"categories", len(categories),
		"construction_sites", flagged)

	return &Survey{Rows: rows}, nil
}

// loadCategories reads the category id → structure name table.
func loadCategories(path string) (map[int]string, error) {
	file := filepath.Base(path)
	idx, rows, err := readTable(path, "category", "struct")
	if err != nil {
		return nil, err
	}
	categories := make(map[int]string, len(rows))
	for i, rec := range rows {
		id, err := intField(file, i+2, "category", rec[idx["category"]])
		if err != nil {
			return nil, err
		}
		categories[id] = strings.TrimSpace(rec[idx["struct"]])
	}

	return categories, nil
}

// loadSites reads the per-cell construction flags. Every surveyed cell is
// present in the returned map; the value is the flag itself.
func loadSites(path string) (map[grid.Coord]bool, error) {
	file := filepath.Base(path)
	idx, rows, err := readTable(path, "x", "y", "constructionsite")
	if err != nil {
		return nil, err
	}
	sites := make(map[grid.Coord]bool, len(rows))
	for i, rec := range rows {
		x, err := intField(file, i+2, "x", rec[idx["x"]])
		if err != nil {
			return nil, err
		}
		y, err := intField(file, i+2, "y", rec[idx["y"]])
		if err != nil {
			return nil, err
		}
		flag, err := intField(file, i+2, "ConstructionSite", rec[idx["constructionsite"]])
		if err != nil {
			return nil, err
		}
		sites[grid.Coord{X: x, Y: y}] = flag != 0
	}

	return sites, nil
}

// loadStructs reads the structure table and performs both joins: category
// id → name through categories, and (x, y) → construction flag through
// sites.
func loadStructs(path string, categories map[int]string, sites map[grid.Coord]bool) ([]Row, error) {
	file := filepath.Base(path)
	idx, rows, err := readTable(path, "x", "y", "category", "area")
	if err != nil {
		return nil, err
	}
	out := make([]Row, 0, len(rows))
	for i, rec := range rows {
		x, err := intField(file, i+2, "x", rec[idx["x"]])
		if err != nil {
			return nil, err
		}
		y, err := intField(file, i+2, "y", rec[idx["y"]])
		if err != nil {
			return nil, err
		}
		category, err := intField(file, i+2, "category", rec[idx["category"]])
		if err != nil {
			return nil, err
		}
		area, err := intField(file, i+2, "area", rec[idx["area"]])
		if err != nil {
			return nil, err
		}

		name := ""
		if category != 0 {
			resolved, ok := categories[category]
			if !ok {
				return nil, fmt.Errorf("dataset: %s row %d: category %d at (%d,%d): %w",
					file, i+2, category, x, y, ErrUnknownCategory)
			}
			name = resolved
		}
		flag, ok := sites[grid.Coord{X: x, Y: y}]
		if !ok {
			return nil, fmt.Errorf("dataset: %s row %d: cell (%d,%d): %w",
				file, i+2, x, y, ErrUnmatchedCell)
		}

		out = append(out, Row{
			Area:             area,
			X:                x,
			Y:                y,
			Category:         category,
			Struct:           name,
			ConstructionSite: flag,
		})
	}

	return out, nil
}

// readTable opens one CSV and returns a header index plus the data records.
// Header names are trimmed and lowercased before lookup, so the tables stay
// tolerant to the spacing quirks of the source exports.
func readTable(path string, want ...string) (map[string]int, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("dataset: %s: empty file: %w", filepath.Base(path), ErrMissingColumn)
	}
	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range want {
		if _, ok := idx[col]; !ok {
			return nil, nil, fmt.Errorf("dataset: %s: column %q: %w", filepath.Base(path), col, ErrMissingColumn)
		}
	}

	return idx, records[1:], nil
}

// intField parses one integer cell, wrapping ErrBadNumber with the file,
// row, and column of the offending value.
func intField(file string, line int, col, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("dataset: %s row %d column %s: %q: %w", file, line, col, raw, ErrBadNumber)
	}

	return v, nil
}
