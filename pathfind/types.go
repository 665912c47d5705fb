// Package pathfind defines the options, result types, and sentinel errors
// for breadth-first route search over a grid.Grid.
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/larklaon/bandalgom/grid"
)

// Sentinel errors for route search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrInvalidEndpoint is returned when start or goal is off-grid or on an
	// obstacle cell. An obstacle endpoint is a caller bug, distinct from an
	// unreachable goal.
	ErrInvalidEndpoint = errors.New("pathfind: endpoint out of bounds or blocked")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrCanceled is returned when the search context ends mid-run.
	ErrCanceled = errors.New("pathfind: search canceled")
)

// Connectivity selects the neighborhood expanded around a dequeued cell.
type Connectivity int

const (
	// Conn4 expands the orthogonal neighbors: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 expands all eight neighbors: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn8Offsets lists the 8-connected neighborhood in the fixed expansion
// order N, NE, E, SE, S, SW, W, NW with y growing downward. The order breaks
// ties between equal-length routes, so it must never change.
var conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// conn4Offsets lists the orthogonal neighborhood in the order N, E, S, W.
var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Option configures FindPath via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when FindPath runs.
type Option func(*Options)

// Options holds the tunable parameters of one search invocation.
type Options struct {
	// Ctx allows cancellation and deadlines, checked once per dequeue.
	Ctx context.Context

	// Conn selects the expanded neighborhood. Conn8 is the planner default;
	// Conn4 serves the orthogonal-movement pipeline.
	Conn Connectivity

	// OnEnqueue is called when a cell is admitted to the frontier.
	OnEnqueue func(c grid.Coord)

	// OnDequeue is called when a cell leaves the frontier for expansion.
	OnDequeue func(c grid.Coord)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the planner defaults:
//   - context.Background()
//   - Conn8 neighborhood
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Conn:      Conn8,
		OnEnqueue: func(grid.Coord) {},
		OnDequeue: func(grid.Coord) {},
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects Conn4 or Conn8 expansion; any other value is
// invalid and surfaces as ErrOptionViolation.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		switch c {
		case Conn4, Conn8:
			o.Conn = c
		default:
			o.err = fmt.Errorf("%w: connectivity %d", ErrOptionViolation, c)
		}
	}
}

// WithOnEnqueue registers a callback to run when a cell is discovered.
func WithOnEnqueue(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a cell is expanded.
func WithOnDequeue(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// offsets returns the expansion table for the selected connectivity.
func (o Options) offsets() [][2]int {
	if o.Conn == Conn4 {
		return conn4Offsets
	}

	return conn8Offsets
}

// Waypoint is the export form of one route element. Step counts moves from
// the start cell, beginning at 0.
type Waypoint struct {
	Step int
	X, Y int
}

// Result holds the outcome of one search.
//
// Found reports whether the goal was reached. Found == false with a nil
// error means the endpoints are valid but no walkable connection exists;
// callers must branch on Found rather than treating a nil error as success.
type Result struct {
	// Found reports goal reachability.
	Found bool
	// Path is the full cell sequence from start to goal inclusive when
	// Found, nil otherwise. Consecutive elements are 8-adjacent (4-adjacent
	// under Conn4) and none is an obstacle.
	Path []grid.Coord
	// Expanded counts dequeued cells, a measure of search effort. It never
	// exceeds Width×Height because cells are visited on discovery.
	Expanded int
}

// Steps returns the number of moves in the route: len(Path)-1 when found
// (0 when start equals goal), -1 when no route exists.
func (r *Result) Steps() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// Waypoints converts the route to export records with Step counting from 0.
// It returns nil when no route exists.
func (r *Result) Waypoints() []Waypoint {
	if !r.Found {
		return nil
	}
	wps := make([]Waypoint, len(r.Path))
	for i, c := range r.Path {
		wps[i] = Waypoint{Step: i, X: c.X, Y: c.Y}
	}

	return wps
}
