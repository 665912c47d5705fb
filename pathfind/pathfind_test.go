package pathfind_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/larklaon/bandalgom/grid"
	"github.com/larklaon/bandalgom/pathfind"
)

// mustBuild assembles a w×h grid with obstacles (Building) at the given
// coordinates.
func mustBuild(t *testing.T, w, h int, obstacles ...grid.Coord) *grid.Grid {
	t.Helper()
	records := make([]grid.Record, 0, len(obstacles))
	for _, c := range obstacles {
		records = append(records, grid.Record{X: c.X, Y: c.Y, Tag: grid.Building})
	}
	g, err := grid.Build(records, w, h)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	return g
}

// wall returns the 5×5 golden fixture: a vertical wall at x=3 spanning
// y=1..4, leaving a single gap at (3,5).
func wall(t *testing.T) *grid.Grid {
	t.Helper()

	return mustBuild(t, 5, 5,
		grid.Coord{X: 3, Y: 1}, grid.Coord{X: 3, Y: 2},
		grid.Coord{X: 3, Y: 3}, grid.Coord{X: 3, Y: 4})
}

func samePath(a, b []grid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

//----------------------------------------------------------------------------//
// Precondition failures
//----------------------------------------------------------------------------//

// TestFindPath_Errors verifies that malformed input surfaces the matching
// sentinel instead of masquerading as NotFound.
func TestFindPath_Errors(t *testing.T) {
	g := mustBuild(t, 5, 5, grid.Coord{X: 2, Y: 2})
	free := grid.Coord{X: 1, Y: 1}
	blocked := grid.Coord{X: 2, Y: 2}
	outside := grid.Coord{X: 6, Y: 1}

	cases := []struct {
		name        string
		g           *grid.Grid
		start, goal grid.Coord
		opts        []pathfind.Option
		err         error
	}{
		{"NilGrid", nil, free, free, nil, pathfind.ErrNilGrid},
		{"StartOutOfBounds", g, outside, free, nil, pathfind.ErrInvalidEndpoint},
		{"GoalOutOfBounds", g, free, outside, nil, pathfind.ErrInvalidEndpoint},
		{"StartOnObstacle", g, blocked, free, nil, pathfind.ErrInvalidEndpoint},
		{"GoalOnObstacle", g, free, blocked, nil, pathfind.ErrInvalidEndpoint},
		{"BadConnectivity", g, free, free, []pathfind.Option{pathfind.WithConnectivity(pathfind.Connectivity(7))}, pathfind.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := pathfind.FindPath(tc.g, tc.start, tc.goal, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Fatalf("FindPath error = %v; want %v", err, tc.err)
			}
			if res != nil {
				t.Fatalf("FindPath returned a result alongside error %v", err)
			}
		})
	}
}

// TestFindPath_ObstacleEndpointIsNotNotFound pins the distinction of §7:
// a blocked start is a caller bug, not an unreachable goal.
func TestFindPath_ObstacleEndpointIsNotNotFound(t *testing.T) {
	g := mustBuild(t, 3, 3, grid.Coord{X: 1, Y: 1})
	_, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 3, Y: 3})
	if !errors.Is(err, pathfind.ErrInvalidEndpoint) {
		t.Fatalf("FindPath error = %v; want ErrInvalidEndpoint", err)
	}
}

//----------------------------------------------------------------------------//
// Golden routes
//----------------------------------------------------------------------------//

// TestFindPath_GoldenWallScenario locks the hand-validated route through the
// wall gap: 8 moves, detouring through (3,5). The literal sequence also pins
// the N, NE, E, SE, S, SW, W, NW expansion order.
func TestFindPath_GoldenWallScenario(t *testing.T) {
	g := wall(t)
	res, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if !res.Found {
		t.Fatal("Found = false; want true")
	}
	want := []grid.Coord{
		{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4},
		{X: 3, Y: 5}, {X: 4, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 2}, {X: 5, Y: 1},
	}
	if !samePath(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.Steps() != 8 {
		t.Errorf("Steps() = %d; want 8", res.Steps())
	}
	if res.Expanded > g.Width()*g.Height() {
		t.Errorf("Expanded = %d cells on a %d-cell grid; visited-on-discovery broken",
			res.Expanded, g.Width()*g.Height())
	}
}

// TestFindPath_OpenRow verifies that on an open grid the straight east run
// wins over same-length zigzags.
func TestFindPath_OpenRow(t *testing.T) {
	g := mustBuild(t, 5, 5)
	res, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	want := []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 1}}
	if !samePath(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
}

// TestFindPath_StartEqualsGoal pins the single-element route.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := wall(t)
	at := grid.Coord{X: 2, Y: 2}
	res, err := pathfind.FindPath(g, at, at)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if !res.Found || !samePath(res.Path, []grid.Coord{at}) {
		t.Fatalf("Path = %v (found=%v); want exactly [%v]", res.Path, res.Found, at)
	}
	if res.Steps() != 0 {
		t.Errorf("Steps() = %d; want 0", res.Steps())
	}
	if res.Expanded != 1 {
		t.Errorf("Expanded = %d; want 1", res.Expanded)
	}
	wps := res.Waypoints()
	if len(wps) != 1 || wps[0] != (pathfind.Waypoint{Step: 0, X: 2, Y: 2}) {
		t.Errorf("Waypoints = %v; want [{0 2 2}]", wps)
	}
}

// TestFindPath_Disconnected verifies that a solid wall yields the NotFound
// result variant, not an error.
func TestFindPath_Disconnected(t *testing.T) {
	g := mustBuild(t, 5, 5,
		grid.Coord{X: 3, Y: 1}, grid.Coord{X: 3, Y: 2}, grid.Coord{X: 3, Y: 3},
		grid.Coord{X: 3, Y: 4}, grid.Coord{X: 3, Y: 5})
	res, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("FindPath error: %v; NotFound must not be an error", err)
	}
	if res.Found {
		t.Fatal("Found = true across a solid wall")
	}
	if res.Path != nil {
		t.Errorf("Path = %v; want nil", res.Path)
	}
	if res.Steps() != -1 {
		t.Errorf("Steps() = %d; want -1", res.Steps())
	}
	if res.Waypoints() != nil {
		t.Errorf("Waypoints = %v; want nil", res.Waypoints())
	}
	// Only the ten cells left of the wall are reachable.
	if res.Expanded != 10 {
		t.Errorf("Expanded = %d; want 10", res.Expanded)
	}
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestFindPath_Determinism runs the same query twice and compares both the
// returned route and the dequeue traces element for element.
func TestFindPath_Determinism(t *testing.T) {
	g := wall(t)
	start, goal := grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1}

	var traceA, traceB []grid.Coord
	resA, err := pathfind.FindPath(g, start, goal,
		pathfind.WithOnDequeue(func(c grid.Coord) { traceA = append(traceA, c) }))
	if err != nil {
		t.Fatalf("first FindPath error: %v", err)
	}
	resB, err := pathfind.FindPath(g, start, goal,
		pathfind.WithOnDequeue(func(c grid.Coord) { traceB = append(traceB, c) }))
	if err != nil {
		t.Fatalf("second FindPath error: %v", err)
	}
	if !samePath(resA.Path, resB.Path) {
		t.Errorf("paths differ across runs:\n%v\n%v", resA.Path, resB.Path)
	}
	if !samePath(traceA, traceB) {
		t.Errorf("dequeue traces differ across runs:\n%v\n%v", traceA, traceB)
	}
}

// TestFindPath_VisitedOnDiscovery asserts that no cell is ever admitted to
// the frontier twice, the regression that visited-on-dequeue would cause.
func TestFindPath_VisitedOnDiscovery(t *testing.T) {
	g := wall(t)
	seen := make(map[grid.Coord]int)
	_, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1},
		pathfind.WithOnEnqueue(func(c grid.Coord) { seen[c]++ }))
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	for c, n := range seen {
		if n > 1 {
			t.Errorf("cell %v enqueued %d times; want 1", c, n)
		}
	}
}

// TestFindPath_PathWellFormed checks the structural route invariants on a
// batch of queries: consecutive cells 8-adjacent, endpoints in place, no
// obstacle on the route.
func TestFindPath_PathWellFormed(t *testing.T) {
	g := wall(t)
	queries := []struct{ start, goal grid.Coord }{
		{grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1}},
		{grid.Coord{X: 1, Y: 5}, grid.Coord{X: 5, Y: 5}},
		{grid.Coord{X: 2, Y: 3}, grid.Coord{X: 4, Y: 3}},
		{grid.Coord{X: 5, Y: 5}, grid.Coord{X: 1, Y: 1}},
	}
	for _, q := range queries {
		res, err := pathfind.FindPath(g, q.start, q.goal)
		if err != nil {
			t.Fatalf("FindPath(%v,%v) error: %v", q.start, q.goal, err)
		}
		if !res.Found {
			t.Fatalf("FindPath(%v,%v) not found; fixture should connect", q.start, q.goal)
		}
		if res.Path[0] != q.start || res.Path[len(res.Path)-1] != q.goal {
			t.Errorf("route endpoints %v..%v; want %v..%v",
				res.Path[0], res.Path[len(res.Path)-1], q.start, q.goal)
		}
		for i, c := range res.Path {
			if !g.Walkable(c) {
				t.Errorf("route cell %v is not walkable", c)
			}
			if i > 0 && grid.Chebyshev(res.Path[i-1], c) != 1 {
				t.Errorf("route cells %v → %v are not adjacent", res.Path[i-1], c)
			}
		}
	}
}

// refDistances computes shortest 8-connected distances from start by
// repeated relaxation over the whole grid, deliberately sharing nothing with
// the production search.
func refDistances(g *grid.Grid, start grid.Coord, conn pathfind.Connectivity) map[grid.Coord]int {
	offsets := [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	if conn == pathfind.Conn4 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	dist := map[grid.Coord]int{start: 0}
	for changed := true; changed; {
		changed = false
		for y := 1; y <= g.Height(); y++ {
			for x := 1; x <= g.Width(); x++ {
				c := grid.Coord{X: x, Y: y}
				if !g.Walkable(c) {
					continue
				}
				for _, d := range offsets {
					nb := grid.Coord{X: x + d[0], Y: y + d[1]}
					if !g.Walkable(nb) {
						continue
					}
					dn, ok := dist[nb]
					if !ok {
						continue
					}
					if dc, ok := dist[c]; !ok || dn+1 < dc {
						dist[c] = dn + 1
						changed = true
					}
				}
			}
		}
	}

	return dist
}

// TestFindPath_MinimalityBruteForce compares route lengths against an
// exhaustive relaxation reference on the golden fixture and on a seeded
// random grid, for every walkable goal.
func TestFindPath_MinimalityBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := make([]grid.Record, 0, 49)
	for y := 1; y <= 7; y++ {
		for x := 1; x <= 7; x++ {
			if rng.Intn(100) < 30 {
				random = append(random, grid.Record{X: x, Y: y, Tag: grid.Building})
			}
		}
	}
	randomGrid, err := grid.Build(random, 7, 7)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	grids := []*grid.Grid{wall(t), randomGrid}
	for gi, g := range grids {
		var start grid.Coord
		for y := 1; y <= g.Height() && start == (grid.Coord{}); y++ {
			for x := 1; x <= g.Width(); x++ {
				if g.Walkable(grid.Coord{X: x, Y: y}) {
					start = grid.Coord{X: x, Y: y}
					break
				}
			}
		}
		ref := refDistances(g, start, pathfind.Conn8)
		for y := 1; y <= g.Height(); y++ {
			for x := 1; x <= g.Width(); x++ {
				goal := grid.Coord{X: x, Y: y}
				if !g.Walkable(goal) {
					continue
				}
				res, err := pathfind.FindPath(g, start, goal)
				if err != nil {
					t.Fatalf("grid %d: FindPath(%v,%v) error: %v", gi, start, goal, err)
				}
				want, reachable := ref[goal]
				if res.Found != reachable {
					t.Errorf("grid %d: Found(%v→%v) = %v; reference says %v", gi, start, goal, res.Found, reachable)
					continue
				}
				if reachable && res.Steps() != want {
					t.Errorf("grid %d: Steps(%v→%v) = %d; reference distance %d", gi, start, goal, res.Steps(), want)
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

// TestFindPath_Conn4 verifies that a diagonal gap passable under Conn8 is a
// wall under Conn4.
func TestFindPath_Conn4(t *testing.T) {
	g := mustBuild(t, 3, 3, grid.Coord{X: 2, Y: 1}, grid.Coord{X: 1, Y: 2})
	start, goal := grid.Coord{X: 1, Y: 1}, grid.Coord{X: 3, Y: 3}

	res8, err := pathfind.FindPath(g, start, goal, pathfind.WithConnectivity(pathfind.Conn8))
	if err != nil {
		t.Fatalf("Conn8 FindPath error: %v", err)
	}
	want := []grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	if !res8.Found || !samePath(res8.Path, want) {
		t.Errorf("Conn8 path = %v (found=%v); want %v", res8.Path, res8.Found, want)
	}

	res4, err := pathfind.FindPath(g, start, goal, pathfind.WithConnectivity(pathfind.Conn4))
	if err != nil {
		t.Fatalf("Conn4 FindPath error: %v", err)
	}
	if res4.Found {
		t.Errorf("Conn4 path = %v; the diagonal gap should not be passable", res4.Path)
	}
}

// TestFindPath_Canceled verifies that a dead context aborts the search with
// ErrCanceled wrapping the context error.
func TestFindPath_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := wall(t)
	_, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1},
		pathfind.WithContext(ctx))
	if !errors.Is(err, pathfind.ErrCanceled) {
		t.Fatalf("FindPath error = %v; want ErrCanceled", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FindPath error %v does not wrap context.Canceled", err)
	}
}

// TestFindPath_Hooks checks that the observation hooks fire in frontier
// order and leave the result untouched.
func TestFindPath_Hooks(t *testing.T) {
	g := wall(t)
	start, goal := grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1}

	var enq, deq []grid.Coord
	res, err := pathfind.FindPath(g, start, goal,
		pathfind.WithOnEnqueue(func(c grid.Coord) { enq = append(enq, c) }),
		pathfind.WithOnDequeue(func(c grid.Coord) { deq = append(deq, c) }))
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if len(enq) == 0 || enq[0] != start {
		t.Errorf("first enqueue = %v; want %v", enq, start)
	}
	if len(deq) != res.Expanded {
		t.Errorf("dequeue hook fired %d times; Expanded = %d", len(deq), res.Expanded)
	}
	if deq[len(deq)-1] != goal {
		t.Errorf("last dequeue = %v; want goal %v", deq[len(deq)-1], goal)
	}

	bare, err := pathfind.FindPath(g, start, goal)
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	if !samePath(res.Path, bare.Path) {
		t.Errorf("hooks changed the route:\n%v\n%v", res.Path, bare.Path)
	}
}

// TestFindPath_Waypoints pins the export numbering: step 0 at start.
func TestFindPath_Waypoints(t *testing.T) {
	g := wall(t)
	res, err := pathfind.FindPath(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 1})
	if err != nil {
		t.Fatalf("FindPath error: %v", err)
	}
	wps := res.Waypoints()
	if len(wps) != len(res.Path) {
		t.Fatalf("Waypoints length %d; path length %d", len(wps), len(res.Path))
	}
	for i, wp := range wps {
		if wp.Step != i {
			t.Errorf("Waypoints[%d].Step = %d; want %d", i, wp.Step, i)
		}
		if (grid.Coord{X: wp.X, Y: wp.Y}) != res.Path[i] {
			t.Errorf("Waypoints[%d] = (%d,%d); want %v", i, wp.X, wp.Y, res.Path[i])
		}
	}
}
