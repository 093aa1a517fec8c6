// Package witness is a line-tracing puzzle engine: a board of dots and lines,
// an interactive tracer that turns pointer motion into a path, and a
// validator that judges the finished path against the board's constraints.
//
// What is in the box?
//
//	• Board model: dots, lines, panes and their dual adjacency, built from a
//	  Layout or as the classic square grid
//	• Constraints: hexagons on dots and lines, line breaks, colored squares
//	• Tracing: a pointer-driven state machine with backtracking
//	• Validation: dot, line and region checks with typed errors
//
// Packages:
//
//	geom/        — 2D point type in normalized puzzle space
//	puzzle/      — indices, constraints, Puzzle, NewGrid, editor helpers
//	region/      — partition of panes into regions separated by a path
//	solution/    — Path, Check and the error taxonomy
//	tracer/      — Click / UpdateMouse state machine and draw decomposition
//	cmd/witness/ — ebiten frontend with solve and edit modes
//
// Quick ASCII example (3×3 dots, start S, end stub E):
//
//	·───·───·─E
//	│ ■ │ □ │
//	·───·───·
//	│   │   │
//	S───·───·
//
// A path from S to E that keeps ■ and □ in different regions solves it.
//
//	go run github.com/katalvlaran/witness/cmd/witness
package witness
