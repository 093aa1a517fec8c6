// SPDX-License-Identifier: MIT
package puzzle

import "fmt"

// DotConstraint is a rule attached to a single dot.
type DotConstraint int

const (
	// RequiredVisit: the dot must lie on the path (drawn as a hexagon).
	RequiredVisit DotConstraint = iota
)

func (c DotConstraint) String() string {
	switch c {
	case RequiredVisit:
		return "RequiredVisit"
	default:
		return fmt.Sprintf("DotConstraint(%d)", int(c))
	}
}

// LineConstraint is a rule attached to a single line.
type LineConstraint int

const (
	// RequiredTraversal: the line must be part of the path (hexagon on the line).
	RequiredTraversal LineConstraint = iota
	// ForbiddenTraversal: the line is broken in the middle and must not be
	// part of the path. The tracer also refuses to move across the gap.
	ForbiddenTraversal
)

func (c LineConstraint) String() string {
	switch c {
	case RequiredTraversal:
		return "RequiredTraversal"
	case ForbiddenTraversal:
		return "ForbiddenTraversal"
	default:
		return fmt.Sprintf("LineConstraint(%d)", int(c))
	}
}

// Color of a pane marker.
type Color int

const (
	Black Color = iota
	White
)

// Colors lists every Color in declaration order.
func Colors() []Color {
	return []Color{Black, White}
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// PaneKind selects the variant of a PaneConstraint.
type PaneKind int

const (
	// Square: every square in the same region must share one color.
	Square PaneKind = iota
)

// PaneConstraint is a rule attached to a single pane. Kind selects the
// variant; the remaining fields are the payload of that variant.
type PaneConstraint struct {
	Kind  PaneKind
	Color Color
}

// ColoredSquare returns a Square constraint of color c.
func ColoredSquare(c Color) PaneConstraint {
	return PaneConstraint{Kind: Square, Color: c}
}

func (c PaneConstraint) String() string {
	switch c.Kind {
	case Square:
		return fmt.Sprintf("Square(%s)", c.Color)
	default:
		return fmt.Sprintf("PaneConstraint(%d)", int(c.Kind))
	}
}
