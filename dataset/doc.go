// SPDX-License-Identifier: MIT

// Package dataset loads and merges the three area survey tables into the
// clean, typed rows the grid builder consumes.
//
// What:
//
//   - Load reads area_category.csv (category id → structure name),
//     area_map.csv (per-cell construction flag), and area_struct.csv
//     (structure placement and area assignment), joins them on category id
//     and (x, y), and returns rows sorted by (area, y, x).
//   - Records classifies merged rows into grid.Record values; a
//     construction flag is emitted as its own record so the grid priority
//     pass resolves the overlap.
//   - Summary aggregates per-structure counts for the analyze report.
//
// Why:
//
//   - The raw tables overlap and reference each other by id; downstream
//     packages should never see an unresolved category or an ambiguous cell.
//   - Malformed data is surfaced, never patched: a bad coordinate or an
//     unknown category id would otherwise corrupt obstacle placement and
//     produce a path that looks valid but is not.
//
// Errors:
//
//   - ErrMissingColumn: a required header is absent from one of the files.
//   - ErrBadNumber: a numeric cell does not parse as an integer.
//   - ErrUnknownCategory: a non-zero category id has no name entry.
//   - ErrUnmatchedCell: a structure row has no matching area-map row.
package dataset
