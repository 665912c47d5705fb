// SPDX-License-Identifier: MIT

package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larklaon/bandalgom/dataset"
	"github.com/larklaon/bandalgom/grid"
)

const (
	categoryCSV = `category,struct
1, Apartment
2, Building
3, BandalgomCoffee
4, MyHome
`
	mapCSV = `x,y,ConstructionSite
1,1,0
2,1,1
3,1,0
1,2,0
2,2,0
3,2,1
1,3,0
2,3,0
3,3,0
`
	structCSV = `x,y,category,area
1,1,4,1
2,1,2,1
3,1,1,1
1,2,0,1
2,2,1,1
3,2,0,1
1,3,0,2
2,3,3,2
3,3,0,2
`
)

// writeSurvey lays the three fixture CSVs into a fresh directory.
func writeSurvey(t *testing.T, category, area, structure string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		dataset.CategoryFile: category,
		dataset.MapFile:      area,
		dataset.StructFile:   structure,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return dir
}

// TestLoad_MergesAndSorts checks the full three-table join: resolved names,
// merged construction flags, and (area, y, x) ordering.
func TestLoad_MergesAndSorts(t *testing.T) {
	dir := writeSurvey(t, categoryCSV, mapCSV, structCSV)
	survey, err := dataset.Load(context.Background(), dir)
	require.NoError(t, err)

	want := []dataset.Row{
		{Area: 1, X: 1, Y: 1, Category: 4, Struct: "MyHome"},
		{Area: 1, X: 2, Y: 1, Category: 2, Struct: "Building", ConstructionSite: true},
		{Area: 1, X: 3, Y: 1, Category: 1, Struct: "Apartment"},
		{Area: 1, X: 1, Y: 2},
		{Area: 1, X: 2, Y: 2, Category: 1, Struct: "Apartment"},
		{Area: 1, X: 3, Y: 2, ConstructionSite: true},
		{Area: 2, X: 1, Y: 3},
		{Area: 2, X: 2, Y: 3, Category: 3, Struct: "BandalgomCoffee"},
		{Area: 2, X: 3, Y: 3},
	}
	if diff := cmp.Diff(want, survey.Rows); diff != "" {
		t.Errorf("merged rows mismatch (-want +got):\n%s", diff)
	}
}

// TestSurvey_Area filters rows by administrative area.
func TestSurvey_Area(t *testing.T) {
	dir := writeSurvey(t, categoryCSV, mapCSV, structCSV)
	survey, err := dataset.Load(context.Background(), dir)
	require.NoError(t, err)

	area1 := survey.Area(1)
	require.Len(t, area1, 6)
	for _, r := range area1 {
		assert.Equal(t, 1, r.Area)
	}
	assert.Len(t, survey.Area(2), 3)
	assert.Empty(t, survey.Area(9))
}

// TestLoad_Errors drives each malformed-input sentinel.
func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name      string
		category  string
		area      string
		structure string
		err       error
		mention   string
	}{
		{
			name:      "UnknownCategory",
			category:  categoryCSV,
			area:      mapCSV,
			structure: "x,y,category,area\n1,1,9,1\n",
			err:       dataset.ErrUnknownCategory,
			mention:   "category 9",
		},
		{
			name:      "MissingColumn",
			category:  categoryCSV,
			area:      mapCSV,
			structure: "x,y,category\n1,1,0\n",
			err:       dataset.ErrMissingColumn,
			mention:   `"area"`,
		},
		{
			name:      "BadNumber",
			category:  categoryCSV,
			area:      "x,y,ConstructionSite\ntwo,1,0\n",
			structure: structCSV,
			err:       dataset.ErrBadNumber,
			mention:   "area_map.csv row 2",
		},
		{
			name:      "UnmatchedCell",
			category:  categoryCSV,
			area:      mapCSV,
			structure: "x,y,category,area\n5,5,0,1\n",
			err:       dataset.ErrUnmatchedCell,
			mention:   "(5,5)",
		},
		{
			name:      "EmptyCategoryFile",
			category:  "",
			area:      mapCSV,
			structure: structCSV,
			err:       dataset.ErrMissingColumn,
			mention:   dataset.CategoryFile,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeSurvey(t, tc.category, tc.area, tc.structure)
			_, err := dataset.Load(context.Background(), dir)
			require.ErrorIs(t, err, tc.err)
			assert.Contains(t, err.Error(), tc.mention)
		})
	}
}

// TestLoad_MissingFile surfaces the underlying not-exist error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(context.Background(), t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestRecords_Classification pins the name → terrain mapping and the
// extra record emitted for flagged cells.
func TestRecords_Classification(t *testing.T) {
	rows := []dataset.Row{
		{X: 1, Y: 1, Struct: "MyHome"},
		{X: 2, Y: 1, Struct: "Bandalgom Coffee"},
		{X: 3, Y: 1, Struct: "Apartment"},
		{X: 4, Y: 1, Struct: "Building", ConstructionSite: true},
		{X: 5, Y: 1},
		{X: 6, Y: 1, Struct: "Fountain"},
	}
	want := []grid.Record{
		{X: 1, Y: 1, Tag: grid.Home},
		{X: 2, Y: 1, Tag: grid.Cafe},
		{X: 3, Y: 1, Tag: grid.Building},
		{X: 4, Y: 1, Tag: grid.Building},
		{X: 4, Y: 1, Tag: grid.ConstructionSite},
		{X: 5, Y: 1, Tag: grid.Road},
		{X: 6, Y: 1, Tag: grid.Road},
	}
	if diff := cmp.Diff(want, dataset.Records(rows)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

// TestRecords_FeedsGridBuild runs the classified records through the grid
// builder and checks the resolved occupancy.
func TestRecords_FeedsGridBuild(t *testing.T) {
	dir := writeSurvey(t, categoryCSV, mapCSV, structCSV)
	survey, err := dataset.Load(context.Background(), dir)
	require.NoError(t, err)

	records := dataset.Records(survey.Rows)
	w, h := dataset.Bounds(survey.Rows)
	g, err := grid.Build(records, w, h)
	require.NoError(t, err)

	assert.Equal(t, []grid.Coord{{X: 1, Y: 1}}, g.Locate(grid.Home))
	assert.Equal(t, []grid.Coord{{X: 2, Y: 3}}, g.Locate(grid.Cafe))
	// flagged Building cell resolves to the site, unflagged Apartment stays
	assert.Equal(t, grid.ConstructionSite, g.At(grid.Coord{X: 2, Y: 1}))
	assert.Equal(t, grid.ConstructionSite, g.At(grid.Coord{X: 3, Y: 2}))
	assert.Equal(t, grid.Building, g.At(grid.Coord{X: 2, Y: 2}))
	assert.Equal(t, grid.Road, g.At(grid.Coord{X: 1, Y: 2}))
}

// TestSummary orders by count descending, name ascending on ties, and
// skips structure-free cells.
func TestSummary(t *testing.T) {
	dir := writeSurvey(t, categoryCSV, mapCSV, structCSV)
	survey, err := dataset.Load(context.Background(), dir)
	require.NoError(t, err)

	want := []dataset.StructCount{
		{Struct: "Apartment", Count: 2},
		{Struct: "BandalgomCoffee", Count: 1},
		{Struct: "Building", Count: 1},
		{Struct: "MyHome", Count: 1},
	}
	assert.Equal(t, want, dataset.Summary(survey.Rows))
	assert.Empty(t, dataset.Summary(nil))
}

// TestBounds derives dimensions from the maximum coordinates.
func TestBounds(t *testing.T) {
	w, h := dataset.Bounds([]dataset.Row{{X: 2, Y: 9}, {X: 7, Y: 1}})
	assert.Equal(t, 7, w)
	assert.Equal(t, 9, h)
}
