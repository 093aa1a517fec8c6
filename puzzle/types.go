// SPDX-License-Identifier: MIT
package puzzle

import "fmt"

// DotIndex is a stable handle into the puzzle's dot list.
type DotIndex int

// PaneIndex is a stable handle into the puzzle's pane list.
type PaneIndex int

// LineIndex identifies the line between two dots. It is always canonical:
// A < B. Build it with NewLine so that constraint keys and path entries for
// the same endpoints compare equal.
type LineIndex struct {
	A, B DotIndex
}

// NewLine returns the canonical LineIndex joining a and b.
func NewLine(a, b DotIndex) LineIndex {
	if b < a {
		a, b = b, a
	}
	return LineIndex{A: a, B: b}
}

// Contains reports whether d is one of the line's endpoints.
func (l LineIndex) Contains(d DotIndex) bool {
	return l.A == d || l.B == d
}

// Other returns the endpoint opposite to d. It panics if d is not an endpoint.
func (l LineIndex) Other(d DotIndex) DotIndex {
	switch d {
	case l.A:
		return l.B
	case l.B:
		return l.A
	}
	panic(fmt.Sprintf("puzzle: dot %d is not an endpoint of %s", d, l))
}

// String renders the line as "line(a, b)".
func (l LineIndex) String() string {
	return fmt.Sprintf("line(%d, %d)", l.A, l.B)
}

// PaneNear is one entry of a pane's adjacency list: the line separating the
// pane from its neighbor, and the neighbor itself.
type PaneNear struct {
	Line LineIndex
	Pane PaneIndex
}
