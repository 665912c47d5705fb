package grid

import "fmt"

// Grid is a dense occupancy grid of terrain tags. It is immutable once
// built: the cell slice is owned by the Grid and never exposed for writing.
// Coordinates are 1-indexed with (1,1) at the top-left and y growing
// downward, matching the survey data and the rendered map.
type Grid struct {
	width, height int
	cells         []Terrain // row-major: (y-1)*width + (x-1)
}

// Build constructs an occupancy grid of the given dimensions from survey
// records. Every cell starts as Free; records are applied in ascending
// priority order (Road, then Building, then ConstructionSite) so that the
// highest-priority record wins at a contested coordinate regardless of input
// order. Home and Cafe are applied last as overlays and never displace an
// obstacle; endpoint validation happens at search time, not here.
//
// All records are validated before the first write: any malformed record
// returns ErrInvalidCoordinate, ErrOutOfRange, or ErrUnknownTerrain wrapped
// with the offending coordinate, and no grid is produced.
//
// Complexity: O(R + W×H) time, O(W×H) memory.
func Build(records []Record, width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("grid: %d×%d: %w", width, height, ErrBadDimensions)
	}
	for _, r := range records {
		if err := r.validate(width, height); err != nil {
			return nil, err
		}
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Terrain, width*height),
	}
	for _, pass := range applyOrder {
		for _, r := range records {
			if r.Tag != pass {
				continue
			}
			g.cells[g.index(r.X, r.Y)] = r.Tag
		}
	}
	for _, pass := range overlayOrder {
		for _, r := range records {
			if r.Tag != pass {
				continue
			}
			if i := g.index(r.X, r.Y); !g.cells[i].Obstacle() {
				g.cells[i] = r.Tag
			}
		}
	}

	return g, nil
}

// Dimensions derives grid bounds from the maximum x and y observed in
// records. It performs no validation; Build rejects non-positive results.
func Dimensions(records []Record) (width, height int) {
	for _, r := range records {
		if r.X > width {
			width = r.X
		}
		if r.Y > height {
			height = r.Y
		}
	}

	return width, height
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within [1,Width]×[1,Height].
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 1 && c.X <= g.width && c.Y >= 1 && c.Y <= g.height
}

// At returns the terrain tag at c. The coordinate must be in bounds;
// callers guard with InBounds. Complexity: O(1).
func (g *Grid) At(c Coord) Terrain {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: At%v outside %d×%d", c, g.width, g.height))
	}

	return g.cells[g.index(c.X, c.Y)]
}

// Walkable reports whether c is in bounds and not an obstacle cell.
// Complexity: O(1).
func (g *Grid) Walkable(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c.X, c.Y)].Walkable()
}

// Locate returns every coordinate tagged t, in row-major order (top-left to
// bottom-right). The order is deterministic, so the first Home or Cafe found
// is stable across runs. Complexity: O(W×H).
func (g *Grid) Locate(t Terrain) []Coord {
	var found []Coord
	for y := 1; y <= g.height; y++ {
		for x := 1; x <= g.width; x++ {
			if g.cells[g.index(x, y)] == t {
				found = append(found, Coord{X: x, Y: y})
			}
		}
	}

	return found
}

// index maps a 1-indexed coordinate to its row-major cell offset.
func (g *Grid) index(x, y int) int {
	return (y-1)*g.width + (x - 1)
}
