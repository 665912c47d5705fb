// Package pathfind runs level-order breadth-first search over an occupancy
// grid and returns the shortest walkable route between two coordinates.
//
// What:
//
//   - FindPath explores the grid from start in distance waves and stops the
//     moment goal leaves the frontier, so the first route discovered is
//     minimal in step count.
//   - Neighbors expand in the fixed order N, NE, E, SE, S, SW, W, NW
//     (y grows downward). When several shortest routes exist, this order
//     decides which one is returned, identically on every run.
//   - Cells are marked visited on discovery, never on dequeue, so each cell
//     enters the frontier at most once and predecessor links stay intact.
//   - An unreachable goal is a Result with Found == false, not an error;
//     only malformed input (nil grid, blocked or off-grid endpoint, invalid
//     option) produces an error.
//
// Why:
//
//   - Every move between 8-adjacent cells costs one step, so plain BFS
//     already yields the optimum; no weights, heuristics, or replanning.
//   - The route is handed to CSV export and map rendering, which both need
//     byte-stable output across runs.
//
// Complexity:
//
//   - FindPath: O(W×H) time, O(W×H) memory (visited flags, predecessor
//     slice, frontier).
//
// Options:
//
//   - WithContext: cooperative cancellation, checked once per dequeue.
//   - WithConnectivity: Conn8 (default) or Conn4 for orthogonal movement.
//   - WithOnEnqueue / WithOnDequeue: observation hooks, no effect on the
//     result.
//
// Errors:
//
//   - ErrNilGrid: nil occupancy grid.
//   - ErrInvalidEndpoint: start or goal off-grid or on an obstacle cell.
//   - ErrOptionViolation: invalid option value.
//   - ErrCanceled: context canceled mid-search (wraps ctx.Err()).
package pathfind
