// SPDX-License-Identifier: MIT
// grid.go — construction of the classic square board.
//
// Model:
//   • Size×Size dots, row-major: dot (col,row) has index row*Size+col.
//   • Lines are emitted per dot in row-major order, first to the right
//     neighbor, then to the upper neighbor; the end stub comes last.
//   • (Size-1)² panes, row-major; each lists its neighbors left, down,
//     right, up, each paired with the line lying between the two panes.
//   • One start dot, one end dot placed on a stub leaving the end corner
//     outwards. Rows grow upwards, matching puzzle space.

package puzzle

import (
	"fmt"

	"github.com/katalvlaran/witness/geom"
)

// Named defaults of DefaultGridConfig.
const (
	defaultGridSize      = 5
	defaultGridPadding   = 1.0
	defaultEndLineLength = 0.5
	defaultLineWidth     = 0.035
	minGridSize          = 2
)

// GridPos addresses a dot of the grid by column and row.
type GridPos struct {
	Col, Row int
}

// GridConfig holds the parameters of NewGrid.
type GridConfig struct {
	// Size is the number of dots per side.
	Size int
	// Padding is the margin around the grid, in cells.
	Padding float64
	// EndLineLength is the length of the end stub, in cells.
	EndLineLength float64
	// LineWidth is the drawn line width in puzzle space.
	LineWidth float64
	// Start is the start dot.
	Start GridPos
	// End is the dot the end stub leaves from. It must be on the border.
	End GridPos
}

// DefaultGridConfig returns the 5×5 board: padding of one cell, a half-cell
// end stub, start at the lower-left corner and end stub leaving the
// upper-right corner.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Size:          defaultGridSize,
		Padding:       defaultGridPadding,
		EndLineLength: defaultEndLineLength,
		LineWidth:     defaultLineWidth,
		Start:         GridPos{Col: 0, Row: 0},
		End:           GridPos{Col: defaultGridSize - 1, Row: defaultGridSize - 1},
	}
}

// Grid is a Puzzle built by NewGrid, with coordinate helpers.
type Grid struct {
	*Puzzle
	size int
	end  DotIndex
}

// NewGrid lays out a square board according to cfg.
// Complexity: O(Size²) time and memory.
func NewGrid(cfg GridConfig) (*Grid, error) {
	n := cfg.Size
	if n < minGridSize {
		return nil, fmt.Errorf("NewGrid: size=%d (must be ≥ %d): %w", n, minGridSize, ErrGridTooSmall)
	}
	if cfg.Padding < 0 || cfg.EndLineLength <= 0 {
		return nil, fmt.Errorf("NewGrid: padding=%g, end line=%g: %w", cfg.Padding, cfg.EndLineLength, ErrBadPadding)
	}
	inGrid := func(p GridPos) bool { return p.Col >= 0 && p.Col < n && p.Row >= 0 && p.Row < n }
	if !inGrid(cfg.Start) {
		return nil, fmt.Errorf("NewGrid: start %v: %w", cfg.Start, ErrCornerOutOfRange)
	}
	if !inGrid(cfg.End) {
		return nil, fmt.Errorf("NewGrid: end %v: %w", cfg.End, ErrCornerOutOfRange)
	}
	out, ok := outward(cfg.End, n)
	if !ok {
		return nil, fmt.Errorf("NewGrid: end %v is not on the border: %w", cfg.End, ErrCornerOutOfRange)
	}

	span := 2*cfg.Padding + float64(n-1)
	at := func(col, row float64) geom.Dot {
		return geom.Pt((cfg.Padding+col)/span, (cfg.Padding+row)/span)
	}
	dotAt := func(col, row int) DotIndex { return DotIndex(row*n + col) }

	l := Layout{
		Dots:      make([]geom.Dot, 0, n*n+1),
		Lines:     make([]LineIndex, 0, 2*n*(n-1)+1),
		LineWidth: cfg.LineWidth,
		CellSize:  1 / span,
	}

	// Dots, row-major.
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			l.Dots = append(l.Dots, at(float64(col), float64(row)))
		}
	}

	// Lines: right neighbor, then upper neighbor.
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col+1 < n {
				l.Lines = append(l.Lines, NewLine(dotAt(col, row), dotAt(col+1, row)))
			}
			if row+1 < n {
				l.Lines = append(l.Lines, NewLine(dotAt(col, row), dotAt(col, row+1)))
			}
		}
	}

	// Panes and their adjacency.
	m := n - 1
	paneAt := func(col, row int) PaneIndex { return PaneIndex(row*m + col) }
	l.Panes = make([]geom.Dot, 0, m*m)
	l.PaneNears = make([][]PaneNear, 0, m*m)
	for row := 0; row < m; row++ {
		for col := 0; col < m; col++ {
			l.Panes = append(l.Panes, at(float64(col)+0.5, float64(row)+0.5))

			var near []PaneNear
			if col > 0 { // left, across the pane's left side
				near = append(near, PaneNear{NewLine(dotAt(col, row), dotAt(col, row+1)), paneAt(col-1, row)})
			}
			if row > 0 { // down, across the bottom side
				near = append(near, PaneNear{NewLine(dotAt(col, row), dotAt(col+1, row)), paneAt(col, row-1)})
			}
			if col+1 < m { // right
				near = append(near, PaneNear{NewLine(dotAt(col+1, row), dotAt(col+1, row+1)), paneAt(col+1, row)})
			}
			if row+1 < m { // up
				near = append(near, PaneNear{NewLine(dotAt(col, row+1), dotAt(col+1, row+1)), paneAt(col, row+1)})
			}
			l.PaneNears = append(l.PaneNears, near)
		}
	}

	// Terminals: the end dot sits on a stub pointing away from the grid.
	corner := dotAt(cfg.End.Col, cfg.End.Row)
	end := DotIndex(len(l.Dots))
	l.Dots = append(l.Dots, at(
		float64(cfg.End.Col)+out[0]*cfg.EndLineLength,
		float64(cfg.End.Row)+out[1]*cfg.EndLineLength,
	))
	l.Lines = append(l.Lines, NewLine(end, corner))
	l.StartDots = []DotIndex{dotAt(cfg.Start.Col, cfg.Start.Row)}
	l.EndDots = []DotIndex{end}

	p, err := New(l)
	if err != nil {
		return nil, fmt.Errorf("NewGrid: %w", err)
	}

	return &Grid{Puzzle: p, size: n, end: end}, nil
}

// outward picks the stub direction for a border dot: east, north, west or
// south, in that order of preference.
func outward(p GridPos, n int) ([2]float64, bool) {
	switch {
	case p.Col == n-1:
		return [2]float64{1, 0}, true
	case p.Row == n-1:
		return [2]float64{0, 1}, true
	case p.Col == 0:
		return [2]float64{-1, 0}, true
	case p.Row == 0:
		return [2]float64{0, -1}, true
	}
	return [2]float64{}, false
}

// Size returns the number of dots per side.
func (g *Grid) Size() int { return g.size }

// DotAt returns the dot at (col,row). It panics outside the grid.
func (g *Grid) DotAt(col, row int) DotIndex {
	if col < 0 || col >= g.size || row < 0 || row >= g.size {
		panic(fmt.Sprintf("puzzle: grid dot (%d,%d) out of range", col, row))
	}
	return DotIndex(row*g.size + col)
}

// PaneAt returns the pane whose lower-left corner is dot (col,row).
// It panics outside the grid.
func (g *Grid) PaneAt(col, row int) PaneIndex {
	m := g.size - 1
	if col < 0 || col >= m || row < 0 || row >= m {
		panic(fmt.Sprintf("puzzle: grid pane (%d,%d) out of range", col, row))
	}
	return PaneIndex(row*m + col)
}

// LineAt returns the line between two grid dots. It panics if they are not
// neighbors.
func (g *Grid) LineAt(a, b GridPos) LineIndex {
	l, ok := g.Line(g.DotAt(a.Col, a.Row), g.DotAt(b.Col, b.Row))
	if !ok {
		panic(fmt.Sprintf("puzzle: no line between %v and %v", a, b))
	}
	return l
}

// End returns the end dot at the tip of the stub.
func (g *Grid) End() DotIndex { return g.end }
