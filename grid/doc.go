// Package grid builds and queries the dense occupancy grid that the
// route planner searches.
//
// What:
//
//   - Terrain enumerates cell classifications (Free, Road, Building,
//     ConstructionSite, Home, Cafe); walkability is derived per tag.
//   - Record carries one (x, y, terrain) observation from the merged survey.
//   - Build resolves overlapping records by a fixed priority
//     (ConstructionSite > Building > Road > Free) and applies Home/Cafe as
//     overlays that never displace an obstacle.
//   - Grid is the immutable result: 1-indexed, row-major, bounds-checked.
//
// Why:
//
//   - Survey tables overlap: one cell may carry both a structure and a
//     construction-site flag; ordered priority passes make the outcome
//     independent of record order.
//   - The search needs O(1) walkability lookups and deterministic landmark
//     location.
//
// Complexity:
//
//   - Build:         O(R + W×H) time, O(W×H) memory  (R = record count).
//   - At, InBounds:  O(1).
//   - Locate:        O(W×H).
//
// Errors:
//
//   - ErrInvalidCoordinate: zero or negative coordinate in a record.
//   - ErrOutOfRange: record coordinate beyond the declared dimensions.
//   - ErrUnknownTerrain: record tag outside the Terrain enumeration.
//   - ErrBadDimensions: requested grid smaller than 1×1.
package grid
