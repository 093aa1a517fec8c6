// SPDX-License-Identifier: MIT
// Package solution judges a finished path against the constraints of a puzzle.
//
// Check runs, in order:
//
//  1. completeness: the path is anchored at a dot and that dot is an end dot;
//  2. dot constraints: every RequiredVisit dot is on the path;
//  3. line constraints: every RequiredTraversal line is on the path and no
//     ForbiddenTraversal line is;
//  4. pane constraints: within each region carved out by the path, all
//     colored squares share one color.
//
// The checks are independent, so the verdict (nil or not) never depends on
// the order constraints were added in. Constraint maps are walked in
// ascending key order, which makes the first reported violation stable too.
package solution

import (
	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/region"
)

// Path is a traced path as Check sees it.
type Path struct {
	// Dots are the visited dots, from the start dot on.
	Dots []puzzle.DotIndex
	// Lines are the traversed lines; Lines[i] joins Dots[i] and Dots[i+1].
	Lines []puzzle.LineIndex
	// AtDot is false while the cursor sits in the middle of a line.
	AtDot bool
}

// Check returns nil if path solves p, or the first violation found:
// ErrIncomplete, a *DotError, a *LineError, or ErrPane.
// Check does not modify p or path.
func Check(p *puzzle.Puzzle, path Path) error {
	if !path.AtDot || len(path.Dots) == 0 {
		return ErrIncomplete
	}
	if !p.IsEnd(path.Dots[len(path.Dots)-1]) {
		return ErrIncomplete
	}

	c := checker{
		puzzle: p,
		dots:   make(map[puzzle.DotIndex]struct{}, len(path.Dots)),
		lines:  make(map[puzzle.LineIndex]struct{}, len(path.Lines)),
	}
	for _, d := range path.Dots {
		c.dots[d] = struct{}{}
	}
	for _, l := range path.Lines {
		c.lines[puzzle.NewLine(l.A, l.B)] = struct{}{}
	}

	if err := c.checkDots(); err != nil {
		return err
	}
	if err := c.checkLines(); err != nil {
		return err
	}
	return c.checkPanes()
}

type checker struct {
	puzzle *puzzle.Puzzle
	dots   map[puzzle.DotIndex]struct{}
	lines  map[puzzle.LineIndex]struct{}
}

func (c *checker) checkDots() error {
	for _, d := range c.puzzle.ConstrainedDots() {
		con, _ := c.puzzle.DotConstraint(d)
		switch con {
		case puzzle.RequiredVisit:
			if _, ok := c.dots[d]; !ok {
				return &DotError{Dot: d, Constraint: con}
			}
		}
	}
	return nil
}

func (c *checker) checkLines() error {
	for _, l := range c.puzzle.ConstrainedLines() {
		con, _ := c.puzzle.LineConstraint(l)
		_, used := c.lines[l]
		switch con {
		case puzzle.RequiredTraversal:
			if !used {
				return &LineError{Line: l, Constraint: con}
			}
		case puzzle.ForbiddenTraversal:
			if used {
				return &LineError{Line: l, Constraint: con}
			}
		}
	}
	return nil
}

func (c *checker) checkPanes() error {
	if len(c.puzzle.ConstrainedPanes()) == 0 {
		return nil
	}
	part := region.Split(c.puzzle, func(l puzzle.LineIndex) bool {
		_, ok := c.lines[l]
		return ok
	})
	for _, comp := range part.Components() {
		colors := make(map[puzzle.Color]struct{}, 2)
		for _, pane := range comp {
			con, ok := c.puzzle.PaneConstraint(pane)
			if !ok {
				continue
			}
			switch con.Kind {
			case puzzle.Square:
				colors[con.Color] = struct{}{}
			}
		}
		if len(colors) > 1 {
			return ErrPane
		}
	}
	return nil
}
