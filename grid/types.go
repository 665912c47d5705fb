// Package grid defines the core types and sentinel errors for the
// occupancy grid of github.com/larklaon/bandalgom.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidCoordinate indicates a zero or negative coordinate.
	ErrInvalidCoordinate = errors.New("grid: coordinate must be a positive integer pair")
	// ErrOutOfRange indicates a coordinate beyond the declared grid dimensions.
	ErrOutOfRange = errors.New("grid: coordinate out of range")
	// ErrUnknownTerrain indicates a record tag outside the Terrain enumeration.
	ErrUnknownTerrain = errors.New("grid: unknown terrain tag")
	// ErrBadDimensions indicates a requested grid smaller than 1×1.
	ErrBadDimensions = errors.New("grid: width and height must be at least one")
)

// Terrain classifies a single cell of the occupancy grid.
type Terrain uint8

const (
	// Free marks ground the survey never covered.
	Free Terrain = iota
	// Road marks surveyed, walkable ground.
	Road
	// Building marks a residential or commercial structure. Blocks movement.
	Building
	// ConstructionSite marks an active construction site. Blocks movement
	// and outranks any structure recorded at the same cell.
	ConstructionSite
	// Home marks the start landmark. Walkable overlay.
	Home
	// Cafe marks the goal landmark. Walkable overlay.
	Cafe

	terrainCount // upper bound for tag validation
)

var terrainNames = [...]string{
	Free:             "Free",
	Road:             "Road",
	Building:         "Building",
	ConstructionSite: "ConstructionSite",
	Home:             "Home",
	Cafe:             "Cafe",
}

// String returns the canonical tag name, or "Terrain(n)" for unknown values.
func (t Terrain) String() string {
	if t < terrainCount {
		return terrainNames[t]
	}

	return fmt.Sprintf("Terrain(%d)", uint8(t))
}

// Obstacle reports whether the terrain blocks movement.
func (t Terrain) Obstacle() bool {
	return t == Building || t == ConstructionSite
}

// Walkable reports whether a path may pass through the terrain.
func (t Terrain) Walkable() bool {
	return !t.Obstacle()
}

// valid reports whether t is a member of the enumeration.
func (t Terrain) valid() bool {
	return t < terrainCount
}

// applyOrder drives the priority passes of Build: plain terrain first,
// structures next, construction sites last, so later passes overwrite
// earlier ones at the same coordinate.
var applyOrder = [...]Terrain{Free, Road, Building, ConstructionSite}

// overlayOrder drives the landmark passes of Build: Home and Cafe are
// applied after terrain resolution and never displace an obstacle.
var overlayOrder = [...]Terrain{Home, Cafe}

// Coord is a 1-indexed grid coordinate. X grows rightward, Y grows downward;
// (1,1) is the top-left cell.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Chebyshev returns the chessboard distance between a and b: the number of
// 8-connected steps separating them on an obstacle-free grid.
func Chebyshev(a, b Coord) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}

	return dy
}

// Record carries one classified survey observation: the terrain tag seen at
// a 1-indexed coordinate. Multiple records may target the same coordinate;
// Build resolves the overlap.
type Record struct {
	X, Y int
	Tag  Terrain
}

// validate rejects malformed or out-of-range records before any cell is
// written, so a bad record can never half-apply.
func (r Record) validate(width, height int) error {
	if r.X < 1 || r.Y < 1 {
		return fmt.Errorf("grid: record at (%d,%d): %w", r.X, r.Y, ErrInvalidCoordinate)
	}
	if r.X > width || r.Y > height {
		return fmt.Errorf("grid: record at (%d,%d) exceeds %d×%d: %w", r.X, r.Y, width, height, ErrOutOfRange)
	}
	if !r.Tag.valid() {
		return fmt.Errorf("grid: record at (%d,%d) carries tag %d: %w", r.X, r.Y, uint8(r.Tag), ErrUnknownTerrain)
	}

	return nil
}
