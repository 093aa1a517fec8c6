// SPDX-License-Identifier: MIT
package puzzle

import "errors"

// Sentinel errors returned by New. Callers branch with errors.Is; the
// returned errors carry the offending indices as wrapped context.
var (
	// ErrNoDots indicates a Layout without any dot.
	ErrNoDots = errors.New("puzzle: layout has no dots")

	// ErrIndexOutOfRange indicates a layout entry referring to a missing dot or pane.
	ErrIndexOutOfRange = errors.New("puzzle: index out of range")

	// ErrSelfLoop indicates a line whose two endpoints are the same dot.
	ErrSelfLoop = errors.New("puzzle: line joins a dot to itself")

	// ErrDuplicateLine indicates two lines joining the same pair of dots.
	ErrDuplicateLine = errors.New("puzzle: duplicate line")

	// ErrZeroLengthLine indicates a line whose endpoints coincide in space.
	ErrZeroLengthLine = errors.New("puzzle: line has zero length")

	// ErrDegenerateLines indicates two lines leaving one dot in the same direction.
	ErrDegenerateLines = errors.New("puzzle: lines leave a dot in the same direction")

	// ErrAsymmetricPanes indicates pane adjacency that is not mirrored by the neighbor.
	ErrAsymmetricPanes = errors.New("puzzle: pane adjacency is not symmetric")

	// ErrUnknownPaneLine indicates a pane adjacency entry naming a line that does not exist.
	ErrUnknownPaneLine = errors.New("puzzle: pane adjacency names an unknown line")

	// ErrNoStart indicates a layout without start dots.
	ErrNoStart = errors.New("puzzle: layout has no start dot")

	// ErrNoEnd indicates a layout without end dots.
	ErrNoEnd = errors.New("puzzle: layout has no end dot")

	// ErrBadLineWidth indicates a non-positive line width.
	ErrBadLineWidth = errors.New("puzzle: line width must be positive")
)

// Sentinel errors returned by NewGrid.
var (
	// ErrGridTooSmall indicates a grid with fewer than two dots per side.
	ErrGridTooSmall = errors.New("puzzle: grid must have at least 2 dots per side")

	// ErrBadPadding indicates negative padding or a non-positive end stub length.
	ErrBadPadding = errors.New("puzzle: padding must not be negative and end line length must be positive")

	// ErrCornerOutOfRange indicates a start or end position outside the grid.
	ErrCornerOutOfRange = errors.New("puzzle: grid position out of range")
)
