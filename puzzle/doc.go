// SPDX-License-Identifier: MIT
// Package puzzle models a line-tracing puzzle board as an immutable graph.
//
// What:
//
//   - Dots (nodes) and Lines (edges) form the primal graph the player traces.
//   - Panes (faces) and their adjacency across Lines form the dual graph used
//     for region analysis.
//   - Sparse constraint maps attach RequiredVisit to dots, Required/Forbidden
//     traversal to lines and colored squares to panes.
//
// Construction:
//
//   - New(Layout) validates an arbitrary board description.
//   - NewGrid(GridConfig) lays out the classic square board with one start
//     dot in a corner and one end stub leaving the opposite corner.
//
// Read-only contract:
//
//   - All lookups are O(1). Indices are only ever produced by the Puzzle
//     itself, so an out-of-range index panics.
//   - Constraint maps may be edited between solving sessions (Set/Clear/Toggle
//     helpers in editor.go), never while a trace is in progress.
//
// Errors:
//
//   - ErrNoDots, ErrIndexOutOfRange, ErrSelfLoop, ErrDuplicateLine,
//     ErrZeroLengthLine, ErrDegenerateLines, ErrAsymmetricPanes,
//     ErrUnknownPaneLine, ErrNoStart, ErrNoEnd, ErrBadLineWidth from New.
//   - ErrGridTooSmall, ErrBadPadding, ErrCornerOutOfRange from NewGrid.
package puzzle
