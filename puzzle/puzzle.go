// SPDX-License-Identifier: MIT
package puzzle

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/witness/geom"
)

// degenerateAngle is the angular deviation under which two lines leaving the
// same dot are considered to point the same way.
const degenerateAngle = 1e-9

// Layout is the raw description of a board handed to New.
//
// Lines may list endpoints in either order; New canonicalizes them and keeps
// the given enumeration order, which is the tie-break order the tracer uses
// when two lines are equally close to the motion direction.
// PaneNears[i] is the adjacency list of Panes[i] and must be symmetric.
type Layout struct {
	Dots      []geom.Dot
	Lines     []LineIndex
	Panes     []geom.Dot
	PaneNears [][]PaneNear
	StartDots []DotIndex
	EndDots   []DotIndex
	LineWidth float64
	CellSize  float64
}

// Puzzle is an immutable board plus its sparse constraint maps.
// The geometry never changes after New; the constraint maps are edited only
// between solving sessions.
type Puzzle struct {
	dots      []geom.Dot
	lines     []LineIndex
	lineOrder map[LineIndex]int // line -> position in lines
	incident  [][]LineIndex     // dot -> lines touching it, in lines order

	panes     []geom.Dot
	paneNears [][]PaneNear

	startDots []DotIndex
	endDots   []DotIndex

	lineWidth float64
	cellSize  float64

	dotConstraints  map[DotIndex]DotConstraint
	lineConstraints map[LineIndex]LineConstraint
	paneConstraints map[PaneIndex]PaneConstraint
}

// New validates l and builds a Puzzle from a private copy of it.
// The returned Puzzle has empty constraint maps.
// Complexity: O(V + E + P + Σdeg²) time, O(V + E + P) memory.
func New(l Layout) (*Puzzle, error) {
	if len(l.Dots) == 0 {
		return nil, ErrNoDots
	}
	if l.LineWidth <= 0 {
		return nil, fmt.Errorf("New: line width %g: %w", l.LineWidth, ErrBadLineWidth)
	}

	p := &Puzzle{
		dots:            slices.Clone(l.Dots),
		lines:           make([]LineIndex, 0, len(l.Lines)),
		lineOrder:       make(map[LineIndex]int, len(l.Lines)),
		incident:        make([][]LineIndex, len(l.Dots)),
		panes:           slices.Clone(l.Panes),
		paneNears:       make([][]PaneNear, len(l.Panes)),
		lineWidth:       l.LineWidth,
		cellSize:        l.CellSize,
		dotConstraints:  make(map[DotIndex]DotConstraint),
		lineConstraints: make(map[LineIndex]LineConstraint),
		paneConstraints: make(map[PaneIndex]PaneConstraint),
	}

	if err := p.addLines(l.Lines); err != nil {
		return nil, err
	}
	if err := p.checkDirections(); err != nil {
		return nil, err
	}
	if err := p.addPaneNears(l.PaneNears); err != nil {
		return nil, err
	}

	var err error
	if p.startDots, err = p.copyTerminals("start", l.StartDots, ErrNoStart); err != nil {
		return nil, err
	}
	if p.endDots, err = p.copyTerminals("end", l.EndDots, ErrNoEnd); err != nil {
		return nil, err
	}

	return p, nil
}

// addLines canonicalizes and indexes every line, rejecting bad endpoints.
func (p *Puzzle) addLines(lines []LineIndex) error {
	for i, raw := range lines {
		if !p.hasDot(raw.A) || !p.hasDot(raw.B) {
			return fmt.Errorf("New: line #%d %s: %w", i, raw, ErrIndexOutOfRange)
		}
		if raw.A == raw.B {
			return fmt.Errorf("New: line #%d %s: %w", i, raw, ErrSelfLoop)
		}
		line := NewLine(raw.A, raw.B)
		if _, dup := p.lineOrder[line]; dup {
			return fmt.Errorf("New: line #%d %s: %w", i, line, ErrDuplicateLine)
		}
		if p.dots[line.A].Sub(p.dots[line.B]).Len2() == 0 {
			return fmt.Errorf("New: line #%d %s: %w", i, line, ErrZeroLengthLine)
		}
		p.lineOrder[line] = len(p.lines)
		p.lines = append(p.lines, line)
		p.incident[line.A] = append(p.incident[line.A], line)
		p.incident[line.B] = append(p.incident[line.B], line)
	}
	return nil
}

// checkDirections rejects dots with two lines pointing the same way: the
// tracer could not choose between them.
func (p *Puzzle) checkDirections() error {
	for d, lines := range p.incident {
		here := p.dots[d]
		for i := 0; i < len(lines); i++ {
			vi := p.dots[lines[i].Other(DotIndex(d))].Sub(here)
			for j := i + 1; j < len(lines); j++ {
				vj := p.dots[lines[j].Other(DotIndex(d))].Sub(here)
				if geom.AngleBetween(vi, vj) < degenerateAngle {
					return fmt.Errorf("New: dot %d, %s and %s: %w", d, lines[i], lines[j], ErrDegenerateLines)
				}
			}
		}
	}
	return nil
}

// addPaneNears copies the dual adjacency and checks it against the lines.
func (p *Puzzle) addPaneNears(nears [][]PaneNear) error {
	if len(nears) != len(p.panes) {
		return fmt.Errorf("New: %d adjacency lists for %d panes: %w", len(nears), len(p.panes), ErrIndexOutOfRange)
	}
	for i, list := range nears {
		out := make([]PaneNear, 0, len(list))
		for _, n := range list {
			if n.Pane < 0 || int(n.Pane) >= len(p.panes) {
				return fmt.Errorf("New: pane %d neighbor %d: %w", i, n.Pane, ErrIndexOutOfRange)
			}
			line := NewLine(n.Line.A, n.Line.B)
			if _, ok := p.lineOrder[line]; !ok {
				return fmt.Errorf("New: pane %d neighbor %d across %s: %w", i, n.Pane, line, ErrUnknownPaneLine)
			}
			out = append(out, PaneNear{Line: line, Pane: n.Pane})
		}
		p.paneNears[i] = out
	}
	for i, list := range p.paneNears {
		for _, n := range list {
			back := PaneNear{Line: n.Line, Pane: PaneIndex(i)}
			if !slices.Contains(p.paneNears[n.Pane], back) {
				return fmt.Errorf("New: pane %d lists %d across %s but not the reverse: %w",
					i, n.Pane, n.Line, ErrAsymmetricPanes)
			}
		}
	}
	return nil
}

func (p *Puzzle) copyTerminals(kind string, dots []DotIndex, empty error) ([]DotIndex, error) {
	if len(dots) == 0 {
		return nil, empty
	}
	for _, d := range dots {
		if !p.hasDot(d) {
			return nil, fmt.Errorf("New: %s dot %d: %w", kind, d, ErrIndexOutOfRange)
		}
	}
	return slices.Clone(dots), nil
}

func (p *Puzzle) hasDot(d DotIndex) bool {
	return d >= 0 && int(d) < len(p.dots)
}

func (p *Puzzle) mustDot(d DotIndex) {
	if !p.hasDot(d) {
		panic(fmt.Sprintf("puzzle: dot %d out of range [0,%d)", d, len(p.dots)))
	}
}

func (p *Puzzle) mustLine(l LineIndex) {
	if _, ok := p.lineOrder[l]; !ok {
		panic(fmt.Sprintf("puzzle: %s does not exist", l))
	}
}

func (p *Puzzle) mustPane(i PaneIndex) {
	if i < 0 || int(i) >= len(p.panes) {
		panic(fmt.Sprintf("puzzle: pane %d out of range [0,%d)", i, len(p.panes)))
	}
}

// Dot returns the position of dot d.
func (p *Puzzle) Dot(d DotIndex) geom.Dot {
	p.mustDot(d)
	return p.dots[d]
}

// DotCount returns the number of dots.
func (p *Puzzle) DotCount() int { return len(p.dots) }

// Dots returns a copy of all dot positions, indexed by DotIndex.
func (p *Puzzle) Dots() []geom.Dot { return slices.Clone(p.dots) }

// Lines returns a copy of all lines in enumeration order.
func (p *Puzzle) Lines() []LineIndex { return slices.Clone(p.lines) }

// LineCount returns the number of lines.
func (p *Puzzle) LineCount() int { return len(p.lines) }

// Line returns the line joining a and b, if there is one.
func (p *Puzzle) Line(a, b DotIndex) (LineIndex, bool) {
	l := NewLine(a, b)
	_, ok := p.lineOrder[l]
	return l, ok
}

// HasLine reports whether l is a line of the puzzle.
func (p *Puzzle) HasLine(l LineIndex) bool {
	_, ok := p.lineOrder[l]
	return ok
}

// IncidentLines returns the lines touching d, in enumeration order.
// The returned slice must not be modified.
func (p *Puzzle) IncidentLines(d DotIndex) []LineIndex {
	p.mustDot(d)
	return p.incident[d]
}

// Endpoints returns the positions of l.A and l.B.
func (p *Puzzle) Endpoints(l LineIndex) (a, b geom.Dot) {
	p.mustLine(l)
	return p.dots[l.A], p.dots[l.B]
}

// LineLength returns the Euclidean length of l.
func (p *Puzzle) LineLength(l LineIndex) float64 {
	a, b := p.Endpoints(l)
	return a.Dist(b)
}

// Pane returns the center of pane i.
func (p *Puzzle) Pane(i PaneIndex) geom.Dot {
	p.mustPane(i)
	return p.panes[i]
}

// Panes returns a copy of all pane centers, indexed by PaneIndex.
func (p *Puzzle) Panes() []geom.Dot { return slices.Clone(p.panes) }

// PaneCount returns the number of panes.
func (p *Puzzle) PaneCount() int { return len(p.panes) }

// PaneNeighbors returns the adjacency list of pane i.
// The returned slice must not be modified.
func (p *Puzzle) PaneNeighbors(i PaneIndex) []PaneNear {
	p.mustPane(i)
	return p.paneNears[i]
}

// StartDots returns a copy of the dots a trace may start from.
func (p *Puzzle) StartDots() []DotIndex { return slices.Clone(p.startDots) }

// EndDots returns a copy of the dots a trace may finish at.
func (p *Puzzle) EndDots() []DotIndex { return slices.Clone(p.endDots) }

// IsStart reports whether d is a start dot.
func (p *Puzzle) IsStart(d DotIndex) bool { return slices.Contains(p.startDots, d) }

// IsEnd reports whether d is an end dot.
func (p *Puzzle) IsEnd(d DotIndex) bool { return slices.Contains(p.endDots, d) }

// LineWidth is the drawn width of lines. The tracer uses it as its
// geometric threshold unit.
func (p *Puzzle) LineWidth() float64 { return p.lineWidth }

// CellSize is the side of a pane, used for pane hit-testing.
func (p *Puzzle) CellSize() float64 { return p.cellSize }

// DotConstraint returns the constraint on d, if any.
func (p *Puzzle) DotConstraint(d DotIndex) (DotConstraint, bool) {
	c, ok := p.dotConstraints[d]
	return c, ok
}

// LineConstraint returns the constraint on l, if any. l is canonicalized.
func (p *Puzzle) LineConstraint(l LineIndex) (LineConstraint, bool) {
	c, ok := p.lineConstraints[NewLine(l.A, l.B)]
	return c, ok
}

// PaneConstraint returns the constraint on pane i, if any.
func (p *Puzzle) PaneConstraint(i PaneIndex) (PaneConstraint, bool) {
	c, ok := p.paneConstraints[i]
	return c, ok
}

// ConstrainedDots returns the dots carrying a constraint, ascending.
func (p *Puzzle) ConstrainedDots() []DotIndex {
	out := make([]DotIndex, 0, len(p.dotConstraints))
	for d := range p.dotConstraints {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// ConstrainedLines returns the lines carrying a constraint, in enumeration order.
func (p *Puzzle) ConstrainedLines() []LineIndex {
	out := make([]LineIndex, 0, len(p.lineConstraints))
	for l := range p.lineConstraints {
		out = append(out, l)
	}
	slices.SortFunc(out, func(a, b LineIndex) int {
		return p.lineOrder[a] - p.lineOrder[b]
	})
	return out
}

// ConstrainedPanes returns the panes carrying a constraint, ascending.
func (p *Puzzle) ConstrainedPanes() []PaneIndex {
	out := make([]PaneIndex, 0, len(p.paneConstraints))
	for i := range p.paneConstraints {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}
