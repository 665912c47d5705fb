// Package bandalgom turns the Bandalgom area survey into a walkable map:
// merge the raw CSV tables, build an occupancy grid, draw the neighborhood,
// and find the shortest route from home to the coffee shop.
//
// 🚀 What is bandalgom?
//
//	A small pipeline of focused packages:
//		• dataset/  — loads and merges the three survey CSVs, resolves
//		  structure names, reports per-structure statistics
//		• grid/     — terrain tags, priority-merged occupancy grid
//		• pathfind/ — breadth-first shortest route, 4- or 8-connected
//		• render/   — the grid as an image.Image, markers and route overlay,
//		  PNG artifacts
//		• export/   — survey, summary, and route CSVs
//		• scenario/ — HCL run configuration (inputs, endpoints, artifacts)
//
// ✨ Why this shape?
//
//   - Deterministic – one fixed neighbor order, stable sorts, reproducible
//     artifacts byte for byte
//   - Honest results – an unreachable goal is a result, not an error
//   - Pure Go core – grid and pathfind depend on nothing outside the
//     standard library
//
// Quick ASCII example (H home, C cafe, # blocked):
//
//	H . .      A wall crosses the west side, so the route
//	# # .      swings east through the gap, diagonals allowed:
//	C . .      (1,1) → (2,1) → (3,2) → (2,3) → (1,3), four moves.
//
// The bandalgom command drives the full pipeline:
//
//	bandalgom analyze   # merge + statistics + survey/summary CSVs
//	bandalgom draw      # base map PNG
//	bandalgom route     # grid + search + route CSV + final map PNG
//
//	go get github.com/larklaon/bandalgom
package bandalgom
