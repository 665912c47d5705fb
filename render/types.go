// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"image/color"

	"github.com/larklaon/bandalgom/grid"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid is returned when the occupancy grid is nil.
	ErrNilGrid = errors.New("render: nil grid")

	// ErrBadScale is returned when WithScale is below MinScale.
	ErrBadScale = errors.New("render: scale below minimum")
)

const (
	// DefaultScale is the edge length of one cell in pixels.
	DefaultScale = 40

	// MinScale is the smallest scale at which markers stay legible.
	MinScale = 8
)

// Palette used by the map. The names mirror the survey's plotting
// conventions: brown structures, green landmarks, a red route.
var (
	colorGround   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // white
	colorFree     = color.RGBA{R: 0xF2, G: 0xF2, B: 0xF2, A: 0xFF} // pale gray
	colorGridLine = color.RGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 0xFF} // lightgray
	colorBuilding = color.RGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF} // saddlebrown
	colorSite     = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF} // gray
	colorLandmark = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xFF} // green
	colorPath     = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF} // red
)

// Options bundles every rendering knob. Zero value is not ready to use;
// start from DefaultOptions and layer Option setters on top.
type Options struct {
	// Scale is the cell edge length in pixels.
	Scale int

	// GridLines draws cell borders when true.
	GridLines bool

	// Path is the route polyline to rasterize, in visit order.
	Path []grid.Coord

	// err records the first option violation; surfaced by New.
	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline rendering configuration:
// 40 px cells, grid lines on, no route overlay.
func DefaultOptions() Options {
	return Options{
		Scale:     DefaultScale,
		GridLines: true,
	}
}

// WithScale sets the cell edge length in pixels. Values below MinScale
// surface as ErrBadScale from New.
func WithScale(px int) Option {
	return func(o *Options) {
		if px < MinScale {
			o.err = ErrBadScale
			return
		}
		o.Scale = px
	}
}

// WithPath overlays the route polyline; coordinates are visited in order
// and joined by a thick line through the cell centers.
func WithPath(path []grid.Coord) Option {
	return func(o *Options) { o.Path = path }
}

// WithGridLines toggles cell border lines.
func WithGridLines(on bool) Option {
	return func(o *Options) { o.GridLines = on }
}
