// SPDX-License-Identifier: MIT

// Package export serializes pipeline artifacts as CSV: the merged survey
// table, the structure summary, and the route waypoint list.
//
// Every writer emits a header row and uses plain LF line endings, so repeated
// runs over the same inputs produce byte-identical files. Construction flags
// are written as 0/1 to stay column-compatible with the upstream survey
// exports.
package export
