// SPDX-License-Identifier: MIT

// Package render draws the occupancy grid, its structure markers, and an
// optional route overlay as a PNG map.
//
// What:
//
//   - Map implements image.Image directly over a grid.Grid: every pixel is
//     computed from its cell's terrain and the marker geometry, so the only
//     allocated raster is the route mask.
//   - Markers follow the survey map conventions: buildings and apartments
//     are brown circles, the cafe a green square, home a green triangle,
//     construction sites gray squares, and the route a red line through the
//     cell centers.
//   - (1,1) renders top-left with y growing downward, matching the grid.
//
// Why:
//
//   - The analyze and route commands publish the map as an artifact; the
//     image must be reproducible byte for byte across runs.
//
// Options:
//
//   - WithScale: pixels per cell (default 40, minimum 8).
//   - WithPath: rasterizes the route polyline on top of the map.
//   - WithGridLines: cell border lines (default on).
//
// Errors:
//
//   - ErrNilGrid: nil occupancy grid.
//   - ErrBadScale: scale below the minimum.
package render
