// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/larklaon/bandalgom/grid"
)

// Map renders an occupancy grid as an image. It implements image.Image by
// computing each pixel on demand from the cell terrain, the marker geometry,
// and the precomputed route mask, so nothing but the mask is allocated up
// front.
type Map struct {
	g     *grid.Grid
	scale int
	lines bool

	// mask marks route pixels, row-major over the full raster; nil when no
	// path was supplied.
	mask []bool
}

// New prepares a map over g. Option violations surface here.
func New(g *grid.Grid, opts ...Option) (*Map, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	m := &Map{g: g, scale: o.Scale, lines: o.GridLines}
	if len(o.Path) > 0 {
		m.mask = buildMask(o.Path, o.Scale, g.Width()*o.Scale, g.Height()*o.Scale)
	}
	return m, nil
}

// ColorModel reports the RGBA color model.
func (m *Map) ColorModel() color.Model { return color.RGBAModel }

// Bounds spans width*scale by height*scale pixels, anchored at the origin.
func (m *Map) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Width()*m.scale, m.g.Height()*m.scale)
}

// At computes the pixel at (x, y). Layering, top to bottom: route line,
// structure marker, grid line, ground. Pixels outside Bounds are
// transparent.
func (m *Map) At(x, y int) color.Color {
	b := m.Bounds()
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return color.Transparent
	}
	if m.mask != nil && m.mask[y*b.Max.X+x] {
		return colorPath
	}

	fx, fy := x%m.scale, y%m.scale
	tag := m.g.At(grid.Coord{X: x/m.scale + 1, Y: y/m.scale + 1})
	if c, ok := markerAt(tag, fx, fy, m.scale); ok {
		return c
	}
	if m.lines && (fx == 0 || fy == 0 || x == b.Max.X-1 || y == b.Max.Y-1) {
		return colorGridLine
	}
	if tag == grid.Free {
		return colorFree
	}
	return colorGround
}

// Encode writes the map to w as PNG.
func Encode(w io.Writer, m *Map) error {
	if m == nil || m.g == nil {
		return ErrNilGrid
	}
	if err := png.Encode(w, m); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// WriteFile creates path and encodes the map into it.
func WriteFile(path string, m *Map) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}

//-----------------------------------------------------------------------------
// Marker geometry
//-----------------------------------------------------------------------------

// markerAt reports the marker color at cell-local pixel (fx, fy) when the
// pixel falls inside the shape drawn for the terrain, sampling at the pixel
// center.
func markerAt(tag grid.Terrain, fx, fy, scale int) (color.Color, bool) {
	s := float64(scale)
	px, py := float64(fx)+0.5, float64(fy)+0.5

	switch tag {
	case grid.Building:
		r := 0.35 * s
		dx, dy := px-s/2, py-s/2
		if dx*dx+dy*dy <= r*r {
			return colorBuilding, true
		}
	case grid.ConstructionSite:
		if inSquare(px, py, s) {
			return colorSite, true
		}
	case grid.Cafe:
		if inSquare(px, py, s) {
			return colorLandmark, true
		}
	case grid.Home:
		if inTriangle(px, py, s) {
			return colorLandmark, true
		}
	}
	return nil, false
}

// inSquare tests the centered marker square covering 70% of the cell edge.
func inSquare(px, py, s float64) bool {
	return math.Abs(px-s/2) <= 0.35*s && math.Abs(py-s/2) <= 0.35*s
}

// inTriangle tests the upward landmark triangle: apex at the top center,
// base along the lower part of the cell.
func inTriangle(px, py, s float64) bool {
	ax, ay := 0.50*s, 0.15*s
	bx, by := 0.15*s, 0.85*s
	cx, cy := 0.85*s, 0.85*s

	d1 := edgeSide(px, py, ax, ay, bx, by)
	d2 := edgeSide(px, py, bx, by, cx, cy)
	d3 := edgeSide(px, py, cx, cy, ax, ay)

	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// edgeSide reports which side of the directed edge (ax,ay)->(bx,by) the
// point (px,py) lies on, via the 2D cross product.
func edgeSide(px, py, ax, ay, bx, by float64) float64 {
	return (px-ax)*(by-ay) - (bx-ax)*(py-ay)
}

//-----------------------------------------------------------------------------
// Route mask
//-----------------------------------------------------------------------------

// buildMask rasterizes the route as a thick polyline through cell centers
// into a row-major pixel mask of pw by ph.
func buildMask(path []grid.Coord, scale, pw, ph int) []bool {
	mask := make([]bool, pw*ph)
	half := float64(scale) / 8
	if half < 1 {
		half = 1
	}

	if len(path) == 1 {
		x, y := cellCenter(path[0], scale)
		fillSegment(mask, pw, ph, x, y, x, y, half)
		return mask
	}
	for i := 1; i < len(path); i++ {
		ax, ay := cellCenter(path[i-1], scale)
		bx, by := cellCenter(path[i], scale)
		fillSegment(mask, pw, ph, ax, ay, bx, by, half)
	}
	return mask
}

// fillSegment marks every pixel whose center lies within half of the segment
// (ax,ay)-(bx,by), scanning only the segment's padded bounding box.
func fillSegment(mask []bool, pw, ph int, ax, ay, bx, by, half float64) {
	x0 := clamp(int(math.Floor(math.Min(ax, bx)-half)), 0, pw-1)
	x1 := clamp(int(math.Ceil(math.Max(ax, bx)+half)), 0, pw-1)
	y0 := clamp(int(math.Floor(math.Min(ay, by)-half)), 0, ph-1)
	y1 := clamp(int(math.Ceil(math.Max(ay, by)+half)), 0, ph-1)

	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if segmentDistance(float64(px)+0.5, float64(py)+0.5, ax, ay, bx, by) <= half {
				mask[py*pw+px] = true
			}
		}
	}
}

// segmentDistance is the distance from point (px,py) to the closest point of
// the segment (ax,ay)-(bx,by).
func segmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// cellCenter converts a 1-indexed cell coordinate to its pixel center.
func cellCenter(c grid.Coord, scale int) (float64, float64) {
	s := float64(scale)
	return (float64(c.X-1) + 0.5) * s, (float64(c.Y-1) + 0.5) * s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
