// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/larklaon/bandalgom/dataset"
	"github.com/larklaon/bandalgom/pathfind"
)

// Path writes the route as CSV with the header "step,x,y". Steps count moves
// from the start cell, beginning at 0. An empty route writes the header only.
func Path(w io.Writer, wps []pathfind.Waypoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "x", "y"}); err != nil {
		return fmt.Errorf("export: path header: %w", err)
	}
	for _, wp := range wps {
		rec := []string{strconv.Itoa(wp.Step), strconv.Itoa(wp.X), strconv.Itoa(wp.Y)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: path step %d: %w", wp.Step, err)
		}
	}

	return flush(cw, "path")
}

// Survey writes merged survey rows as CSV with the header
// "area,x,y,category,struct,construction_site". Cells without a structure
// leave the struct column empty; the construction flag is written as 0/1.
func Survey(w io.Writer, rows []dataset.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"area", "x", "y", "category", "struct", "construction_site"}); err != nil {
		return fmt.Errorf("export: survey header: %w", err)
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Area),
			strconv.Itoa(r.X),
			strconv.Itoa(r.Y),
			strconv.Itoa(r.Category),
			r.Struct,
			flag(r.ConstructionSite),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("export: survey cell (%d,%d): %w", r.X, r.Y, err)
		}
	}

	return flush(cw, "survey")
}

// Summary writes structure counts as CSV with the header "struct,count",
// preserving the given order.
func Summary(w io.Writer, counts []dataset.StructCount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"struct", "count"}); err != nil {
		return fmt.Errorf("export: summary header: %w", err)
	}
	for _, c := range counts {
		if err := cw.Write([]string{c.Struct, strconv.Itoa(c.Count)}); err != nil {
			return fmt.Errorf("export: summary %s: %w", c.Struct, err)
		}
	}

	return flush(cw, "summary")
}

// WritePathFile creates path and writes the route CSV into it.
func WritePathFile(path string, wps []pathfind.Waypoint) error {
	return writeFile(path, func(w io.Writer) error { return Path(w, wps) })
}

// WriteSurveyFile creates path and writes the survey CSV into it.
func WriteSurveyFile(path string, rows []dataset.Row) error {
	return writeFile(path, func(w io.Writer) error { return Survey(w, rows) })
}

// WriteSummaryFile creates path and writes the summary CSV into it.
func WriteSummaryFile(path string, counts []dataset.StructCount) error {
	return writeFile(path, func(w io.Writer) error { return Summary(w, counts) })
}

// flush drains the csv writer and surfaces any deferred write error.
func flush(cw *csv.Writer, what string) error {
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: %s flush: %w", what, err)
	}

	return nil
}

// flag renders a bool in the survey's 0/1 convention.
func flag(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// writeFile creates path, streams one artifact into it, and closes it,
// reporting the first error encountered.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}

	return nil
}
