// Package pathfind provides breadth-first route search over an occupancy
// grid, returning shortest walkable paths with deterministic tie-breaking.
package pathfind

import (
	"fmt"

	"github.com/larklaon/bandalgom/grid"
)

// walker encapsulates the mutable state of one search invocation. It must
// not be shared across concurrent calls; FindPath allocates a fresh one per
// run while the grid itself stays read-only.
type walker struct {
	g       *grid.Grid
	opts    Options
	offsets [][2]int
	queue   []int // frontier of row-major cell indices, head at queue[qi]
	qi      int
	visited []bool
	prev    []int // discovery predecessor per cell, -1 for the start
}

// FindPath runs breadth-first search on g from start to goal, applying any
// number of functional Options.
//
// The returned Result carries the shortest route in step count; when several
// shortest routes exist the fixed expansion order (N, NE, E, SE, S, SW, W,
// NW) decides the winner, so identical inputs always produce the identical
// path. An unreachable goal yields Found == false with a nil error.
//
// Returns ErrNilGrid for a nil grid, ErrInvalidEndpoint when start or goal
// is off-grid or blocked, ErrOptionViolation for bad options, and
// ErrCanceled if the context ends mid-search.
//
// Complexity: O(W×H) time and memory.
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "goal", goal); err != nil {
		return nil, err
	}

	n := g.Width() * g.Height()
	w := &walker{
		g:       g,
		opts:    o,
		offsets: o.offsets(),
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		prev:    make([]int, n),
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	// Seed the frontier with the start cell (no predecessor).
	w.enqueue(w.index(start), -1)

	return w.run(w.index(goal))
}

// checkEndpoint validates one search endpoint against the grid, wrapping
// ErrInvalidEndpoint with the role and the reason.
func checkEndpoint(g *grid.Grid, role string, c grid.Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("pathfind: %s %v outside %d×%d grid: %w", role, c, g.Width(), g.Height(), ErrInvalidEndpoint)
	}
	if !g.Walkable(c) {
		return fmt.Errorf("pathfind: %s %v is %v: %w", role, c, g.At(c), ErrInvalidEndpoint)
	}

	return nil
}

// run drains the frontier level by level until the goal is dequeued or the
// frontier empties.
func (w *walker) run(goal int) (*Result, error) {
	res := &Result{}
	for w.qi < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrCanceled, w.opts.Ctx.Err())
		default:
		}

		cur := w.dequeue()
		res.Expanded++
		if cur == goal {
			res.Found = true
			res.Path = w.reconstruct(goal)

			return res, nil
		}
		w.expand(cur)
	}

	// Frontier exhausted: valid endpoints with no walkable connection.
	return res, nil
}

// enqueue admits the cell to the frontier, marking it visited immediately
// (visited on discovery, not on dequeue) and recording its predecessor so
// the route can be reconstructed later.
func (w *walker) enqueue(idx, parent int) {
	w.visited[idx] = true
	w.prev[idx] = parent
	w.opts.OnEnqueue(w.coord(idx))
	w.queue = append(w.queue, idx)
}

// dequeue pops the frontier head by advancing the head index, keeping the
// backing array alive for the whole run instead of reslicing it away.
func (w *walker) dequeue() int {
	idx := w.queue[w.qi]
	w.qi++
	w.opts.OnDequeue(w.coord(idx))

	return idx
}

// expand admits every in-bounds, walkable, unvisited neighbor of cur, in
// the fixed expansion order.
func (w *walker) expand(cur int) {
	c := w.coord(cur)
	for _, d := range w.offsets {
		nb := grid.Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if !w.g.Walkable(nb) {
			continue // off-grid or obstacle
		}
		if ni := w.index(nb); !w.visited[ni] {
			w.enqueue(ni, cur)
		}
	}
}

// reconstruct walks predecessor links from the goal back to the start and
// reverses in place.
func (w *walker) reconstruct(goal int) []grid.Coord {
	var path []grid.Coord
	for cur := goal; cur != -1; cur = w.prev[cur] {
		path = append(path, w.coord(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// index maps a 1-indexed coordinate to its row-major cell offset.
func (w *walker) index(c grid.Coord) int {
	return (c.Y-1)*w.g.Width() + (c.X - 1)
}

// coord converts a row-major cell offset back to a 1-indexed coordinate.
func (w *walker) coord(idx int) grid.Coord {
	return grid.Coord{X: idx%w.g.Width() + 1, Y: idx/w.g.Width() + 1}
}
