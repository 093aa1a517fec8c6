// SPDX-License-Identifier: MIT
package solution_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/solution"
)

const (
	randomRounds = 300
	randomSeed   = 42
)

func pos(col, row int) puzzle.GridPos { return puzzle.GridPos{Col: col, Row: row} }

func newGrid(t *testing.T) *puzzle.Grid {
	t.Helper()
	g, err := puzzle.NewGrid(puzzle.DefaultGridConfig())
	require.NoError(t, err)
	return g
}

// walk turns a sequence of neighboring grid positions into a Path that
// continues onto the end stub when it stops at the end corner.
func walk(g *puzzle.Grid, steps ...puzzle.GridPos) solution.Path {
	var p solution.Path
	for i, s := range steps {
		p.Dots = append(p.Dots, g.DotAt(s.Col, s.Row))
		if i > 0 {
			p.Lines = append(p.Lines, g.LineAt(steps[i-1], s))
		}
	}
	last := p.Dots[len(p.Dots)-1]
	if l, ok := g.Line(last, g.End()); ok {
		p.Dots = append(p.Dots, g.End())
		p.Lines = append(p.Lines, l)
	}
	p.AtDot = true
	return p
}

// up the left column, then along the top row.
func frame(g *puzzle.Grid) solution.Path {
	return walk(g, pos(0, 0), pos(0, 1), pos(0, 2), pos(0, 3), pos(0, 4),
		pos(1, 4), pos(2, 4), pos(3, 4), pos(4, 4))
}

// along the bottom row to col 2, up the middle column, then right.
func middle(g *puzzle.Grid) solution.Path {
	return walk(g, pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2),
		pos(2, 3), pos(2, 4), pos(3, 4), pos(4, 4))
}

// like middle but leaves col 2 one row early, so the two top-middle panes
// stay connected.
func detour(g *puzzle.Grid) solution.Path {
	return walk(g, pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1), pos(2, 2),
		pos(2, 3), pos(3, 3), pos(4, 3), pos(4, 4))
}

func TestCheck_Incomplete(t *testing.T) {
	g := newGrid(t)

	midLine := frame(g)
	midLine.AtDot = false
	assert.ErrorIs(t, solution.Check(g.Puzzle, midLine), solution.ErrIncomplete)

	assert.ErrorIs(t, solution.Check(g.Puzzle, solution.Path{AtDot: true}), solution.ErrIncomplete)

	short := walk(g, pos(0, 0), pos(0, 1))
	assert.ErrorIs(t, solution.Check(g.Puzzle, short), solution.ErrIncomplete)

	cornerOnly := walk(g, pos(3, 4), pos(4, 4))
	cornerOnly.Dots = cornerOnly.Dots[:2]
	cornerOnly.Lines = cornerOnly.Lines[:1]
	assert.ErrorIs(t, solution.Check(g.Puzzle, cornerOnly), solution.ErrIncomplete)
}

func TestCheck_EmptyBoardAcceptsAnyFinishedPath(t *testing.T) {
	g := newGrid(t)
	assert.NoError(t, solution.Check(g.Puzzle, frame(g)))
	assert.NoError(t, solution.Check(g.Puzzle, middle(g)))
	assert.NoError(t, solution.Check(g.Puzzle, detour(g)))
}

func TestCheck_RequiredVisit(t *testing.T) {
	g := newGrid(t)
	hex := g.DotAt(2, 2)
	g.SetDotConstraint(hex, puzzle.RequiredVisit)

	assert.NoError(t, solution.Check(g.Puzzle, middle(g)))

	err := solution.Check(g.Puzzle, frame(g))
	assert.ErrorIs(t, err, solution.ErrDot)
	var de *solution.DotError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, hex, de.Dot)
	assert.Equal(t, puzzle.RequiredVisit, de.Constraint)
}

func TestCheck_LineConstraints(t *testing.T) {
	g := newGrid(t)
	required := g.LineAt(pos(2, 1), pos(2, 2))
	g.SetLineConstraint(required, puzzle.RequiredTraversal)

	assert.NoError(t, solution.Check(g.Puzzle, middle(g)))

	err := solution.Check(g.Puzzle, frame(g))
	var le *solution.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, required, le.Line)
	assert.Equal(t, puzzle.RequiredTraversal, le.Constraint)

	g.ClearLineConstraint(required)
	forbidden := g.LineAt(pos(0, 3), pos(0, 4))
	g.SetLineConstraint(forbidden, puzzle.ForbiddenTraversal)

	assert.NoError(t, solution.Check(g.Puzzle, middle(g)))
	err = solution.Check(g.Puzzle, frame(g))
	require.True(t, errors.As(err, &le))
	assert.Equal(t, forbidden, le.Line)
	assert.Equal(t, puzzle.ForbiddenTraversal, le.Constraint)
}

// TestCheck_ReversedPathLinesMatchKeys feeds lines with swapped endpoints.
func TestCheck_ReversedPathLinesMatchKeys(t *testing.T) {
	g := newGrid(t)
	required := g.LineAt(pos(2, 1), pos(2, 2))
	g.SetLineConstraint(required, puzzle.RequiredTraversal)

	p := middle(g)
	for i, l := range p.Lines {
		p.Lines[i] = puzzle.LineIndex{A: l.B, B: l.A}
	}
	assert.NoError(t, solution.Check(g.Puzzle, p))
}

// TestCheck_ForbiddenExclusion: with only a forbidden line on the board, a
// line error is reported exactly when the path uses that line.
func TestCheck_ForbiddenExclusion(t *testing.T) {
	g := newGrid(t)
	forbidden := g.LineAt(pos(1, 2), pos(2, 2))
	g.SetLineConstraint(forbidden, puzzle.ForbiddenTraversal)

	lines := g.Lines()
	rng := rand.New(rand.NewSource(randomSeed))
	for round := 0; round < randomRounds; round++ {
		p := solution.Path{Dots: []puzzle.DotIndex{g.End()}, AtDot: true}
		uses := false
		for _, l := range lines {
			if rng.Intn(4) == 0 {
				p.Lines = append(p.Lines, l)
				uses = uses || l == forbidden
			}
		}
		err := solution.Check(g.Puzzle, p)
		if uses {
			assert.ErrorIs(t, err, solution.ErrLine)
		} else {
			assert.NoError(t, err)
		}
	}
}

// TestCheck_Regions covers the two-color scenario: a black and a white
// square in the two top-middle panes.
func TestCheck_Regions(t *testing.T) {
	g := newGrid(t)
	g.SetPaneConstraint(g.PaneAt(1, 3), puzzle.ColoredSquare(puzzle.Black))
	g.SetPaneConstraint(g.PaneAt(2, 3), puzzle.ColoredSquare(puzzle.White))

	assert.NoError(t, solution.Check(g.Puzzle, middle(g)), "middle column separates the squares")
	assert.ErrorIs(t, solution.Check(g.Puzzle, detour(g)), solution.ErrPane)
	assert.ErrorIs(t, solution.Check(g.Puzzle, frame(g)), solution.ErrPane)

	// Same colors never conflict.
	g.SetPaneConstraint(g.PaneAt(2, 3), puzzle.ColoredSquare(puzzle.Black))
	assert.NoError(t, solution.Check(g.Puzzle, frame(g)))
}

// TestCheck_FullScenario combines every constraint kind on the default board.
func TestCheck_FullScenario(t *testing.T) {
	g := newGrid(t)
	g.SetDotConstraint(g.DotAt(2, 2), puzzle.RequiredVisit)
	g.SetLineConstraint(g.LineAt(pos(2, 1), pos(2, 2)), puzzle.RequiredTraversal)
	g.SetLineConstraint(g.LineAt(pos(3, 0), pos(4, 0)), puzzle.ForbiddenTraversal)
	g.SetPaneConstraint(g.PaneAt(1, 3), puzzle.ColoredSquare(puzzle.Black))
	g.SetPaneConstraint(g.PaneAt(2, 3), puzzle.ColoredSquare(puzzle.White))

	assert.NoError(t, solution.Check(g.Puzzle, middle(g)))
	assert.ErrorIs(t, solution.Check(g.Puzzle, detour(g)), solution.ErrPane)
}

// TestCheck_OrderIndependence inserts the same constraints in different
// orders and compares verdicts over random paths.
func TestCheck_OrderIndependence(t *testing.T) {
	type edit func(*puzzle.Grid)
	edits := []edit{
		func(g *puzzle.Grid) { g.SetDotConstraint(g.DotAt(2, 2), puzzle.RequiredVisit) },
		func(g *puzzle.Grid) { g.SetDotConstraint(g.DotAt(1, 0), puzzle.RequiredVisit) },
		func(g *puzzle.Grid) {
			g.SetLineConstraint(g.LineAt(pos(2, 1), pos(2, 2)), puzzle.RequiredTraversal)
		},
		func(g *puzzle.Grid) {
			g.SetLineConstraint(g.LineAt(pos(3, 0), pos(4, 0)), puzzle.ForbiddenTraversal)
		},
		func(g *puzzle.Grid) { g.SetPaneConstraint(g.PaneAt(1, 3), puzzle.ColoredSquare(puzzle.Black)) },
		func(g *puzzle.Grid) { g.SetPaneConstraint(g.PaneAt(2, 3), puzzle.ColoredSquare(puzzle.White)) },
	}

	rng := rand.New(rand.NewSource(randomSeed))
	forward, shuffled := newGrid(t), newGrid(t)
	for _, e := range edits {
		e(forward)
	}
	for _, i := range rng.Perm(len(edits)) {
		edits[i](shuffled)
	}

	paths := []solution.Path{frame(forward), middle(forward), detour(forward)}
	lines := forward.Lines()
	for round := 0; round < randomRounds; round++ {
		p := solution.Path{Dots: []puzzle.DotIndex{forward.DotAt(2, 2), forward.DotAt(1, 0), forward.End()}, AtDot: true}
		for _, l := range lines {
			if rng.Intn(3) == 0 {
				p.Lines = append(p.Lines, l)
			}
		}
		paths = append(paths, p)
	}

	for i, p := range paths {
		a := solution.Check(forward.Puzzle, p)
		b := solution.Check(shuffled.Puzzle, p)
		assert.Equal(t, a == nil, b == nil, "path %d: %v vs %v", i, a, b)
		assert.Equal(t, a, b, "path %d: error order is deterministic too", i)
	}
}

func TestErrors_Messages(t *testing.T) {
	de := &solution.DotError{Dot: 3, Constraint: puzzle.RequiredVisit}
	assert.Equal(t, "solution: dot 3: RequiredVisit not satisfied", de.Error())
	le := &solution.LineError{Line: puzzle.NewLine(4, 2), Constraint: puzzle.ForbiddenTraversal}
	assert.Equal(t, "solution: line(2, 4): ForbiddenTraversal not satisfied", le.Error())
}
