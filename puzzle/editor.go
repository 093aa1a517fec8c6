// SPDX-License-Identifier: MIT
// editor.go — constraint editing and hit-testing for board editors.
//
// None of these may be called while a trace is in progress on the same
// Puzzle; the caller enforces that.

package puzzle

import (
	"math"

	"github.com/katalvlaran/witness/geom"
)

// SetDotConstraint attaches c to d, replacing any previous constraint.
func (p *Puzzle) SetDotConstraint(d DotIndex, c DotConstraint) {
	p.mustDot(d)
	p.dotConstraints[d] = c
}

// ClearDotConstraint removes the constraint on d, if any.
func (p *Puzzle) ClearDotConstraint(d DotIndex) {
	p.mustDot(d)
	delete(p.dotConstraints, d)
}

// ToggleDotConstraint removes the constraint on d if there is one, and
// attaches c otherwise. It reports whether d is constrained afterwards.
func (p *Puzzle) ToggleDotConstraint(d DotIndex, c DotConstraint) bool {
	if _, ok := p.DotConstraint(d); ok {
		p.ClearDotConstraint(d)
		return false
	}
	p.SetDotConstraint(d, c)
	return true
}

// SetLineConstraint attaches c to l, replacing any previous constraint.
func (p *Puzzle) SetLineConstraint(l LineIndex, c LineConstraint) {
	l = NewLine(l.A, l.B)
	p.mustLine(l)
	p.lineConstraints[l] = c
}

// ClearLineConstraint removes the constraint on l, if any.
func (p *Puzzle) ClearLineConstraint(l LineIndex) {
	l = NewLine(l.A, l.B)
	p.mustLine(l)
	delete(p.lineConstraints, l)
}

// ToggleLineConstraint removes the constraint on l if there is one, and
// attaches c otherwise. It reports whether l is constrained afterwards.
func (p *Puzzle) ToggleLineConstraint(l LineIndex, c LineConstraint) bool {
	if _, ok := p.LineConstraint(l); ok {
		p.ClearLineConstraint(l)
		return false
	}
	p.SetLineConstraint(l, c)
	return true
}

// SetPaneConstraint attaches c to pane i, replacing any previous constraint.
func (p *Puzzle) SetPaneConstraint(i PaneIndex, c PaneConstraint) {
	p.mustPane(i)
	p.paneConstraints[i] = c
}

// ClearPaneConstraint removes the constraint on pane i, if any.
func (p *Puzzle) ClearPaneConstraint(i PaneIndex) {
	p.mustPane(i)
	delete(p.paneConstraints, i)
}

// TogglePaneConstraint removes the constraint on pane i if there is one, and
// attaches c otherwise. It reports whether i is constrained afterwards.
func (p *Puzzle) TogglePaneConstraint(i PaneIndex, c PaneConstraint) bool {
	if _, ok := p.PaneConstraint(i); ok {
		p.ClearPaneConstraint(i)
		return false
	}
	p.SetPaneConstraint(i, c)
	return true
}

// SelectionKind tells which field of a Selection is meaningful.
type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectDot
	SelectLine
	SelectPane
)

// Selection is the board element under a position.
type Selection struct {
	Kind SelectionKind
	Dot  DotIndex
	Line LineIndex
	Pane PaneIndex
}

// Pick resolves pos to the element under it. Dots win over lines, lines
// over panes:
//   - a dot within half a line width;
//   - a line whose perpendicular foot lies on the segment, within half a
//     line width;
//   - a pane whose center is within half a cell in both axes.
func (p *Puzzle) Pick(pos geom.Dot) Selection {
	r := p.lineWidth / 2

	for i, d := range p.dots {
		if pos.Dist(d) < r {
			return Selection{Kind: SelectDot, Dot: DotIndex(i)}
		}
	}

	for _, l := range p.lines {
		a, b := p.dots[l.A], p.dots[l.B]
		ab := b.Sub(a)
		t := pos.Sub(a).Scalar(ab) / ab.Len2()
		if t < 0 || t > 1 {
			continue
		}
		if pos.Dist(a.Add(ab.Scale(t))) < r {
			return Selection{Kind: SelectLine, Line: l}
		}
	}

	half := p.cellSize / 2
	for i, c := range p.panes {
		if math.Max(math.Abs(pos.X-c.X), math.Abs(pos.Y-c.Y)) < half {
			return Selection{Kind: SelectPane, Pane: PaneIndex(i)}
		}
	}

	return Selection{Kind: SelectNone}
}
