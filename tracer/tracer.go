// SPDX-License-Identifier: MIT
package tracer

import (
	"math"

	"github.com/katalvlaran/witness/geom"
	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/solution"
)

// epsilon is the magnitude under which a motion or a projection counts as zero.
const epsilon = 1e-9

// State is the traversal state of a Tracer.
type State int

const (
	Idle State = iota
	AtDot
	OnLine
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AtDot:
		return "AtDot"
	case OnLine:
		return "OnLine"
	default:
		return "State(?)"
	}
}

// Tracer follows the pointer over a puzzle and records the traced path.
//
// Invariants while drawing:
//   - at a dot, len(Dots) == len(Lines)+1;
//   - on a line, len(Dots) == len(Lines) and the cursor is on the last line;
//   - Lines[i] joins Dots[i] and Dots[i+1].
type Tracer struct {
	puzzle *puzzle.Puzzle
	cfg    config

	dots  []puzzle.DotIndex
	lines []puzzle.LineIndex

	atDot    bool
	offset   geom.Dot // cursor relative to the last dot, while atDot
	progress float64  // 0 at line.A, 1 at line.B, while on a line

	solving bool
	drawing bool
	solved  bool
}

// New returns an idle Tracer for p. Panics if p is nil.
func New(p *puzzle.Puzzle, opts ...Option) *Tracer {
	if p == nil {
		panic("tracer: nil puzzle")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tracer{puzzle: p, cfg: cfg}
}

// Puzzle returns the board the tracer runs on.
func (t *Tracer) Puzzle() *puzzle.Puzzle { return t.puzzle }

// Click handles a pointer press at pos and reports whether a trace is
// active afterwards.
//
// While idle, a click within the start radius of a start dot begins a new
// trace there (the first start dot in order wins); any other click is
// ignored. While solving, the click finishes the trace: the path is judged
// by solution.Check, a valid path stays on display as solved, an invalid
// one is cleared, and the verdict is returned and passed to the verdict
// hook.
func (t *Tracer) Click(pos geom.Dot) (bool, error) {
	if t.solving {
		err := solution.Check(t.puzzle, t.Path())
		if err == nil {
			t.solving = false
			t.solved = true
		} else {
			t.clear()
		}
		if t.cfg.onVerdict != nil {
			t.cfg.onVerdict(err)
		}
		return false, err
	}

	for _, d := range t.puzzle.StartDots() {
		if t.puzzle.Dot(d).Dist(pos) <= t.cfg.startRadius {
			t.startFrom(d)
			return true, nil
		}
	}
	return false, nil
}

// UpdateMouse moves the cursor by delta. It is a no-op when no trace is
// active or delta is zero.
//
// A single motion may cross several dots and lines; every crossing hands
// the rest of the motion to the new state. The number of crossings per
// call is capped at 2·E+2 for E lines on the board.
func (t *Tracer) UpdateMouse(delta geom.Dot) {
	if !t.solving || delta.IsZero(epsilon) {
		return
	}
	for n := 2*t.puzzle.LineCount() + 2; n > 0; n-- {
		if t.atDot {
			if !t.moveAtDot(delta) {
				return
			}
		} else {
			var crossed bool
			if delta, crossed = t.moveOnLine(delta); !crossed {
				return
			}
		}
		if delta.IsZero(epsilon) {
			return
		}
	}
}

// Reset abandons any trace, solved or not.
func (t *Tracer) Reset() { t.clear() }

// moveAtDot accumulates delta into the offset. It reports true once a line
// has been entered; the caller then applies the same delta on that line.
func (t *Tracer) moveAtDot(delta geom.Dot) bool {
	t.offset = t.offset.Add(delta)
	radius := t.puzzle.LineWidth() * t.cfg.leaveRadius
	dist := t.offset.Len()
	if dist <= radius {
		return false
	}

	l, ok := t.nearLine(delta)
	if !ok {
		// Absorbed: the cursor stays pinned at the rim of the dot.
		t.offset = t.offset.Scale(radius / dist)
		return false
	}
	here := t.lastDot()
	t.enterLine(l)
	if l.A == here {
		t.progress = 0
	} else {
		t.progress = 1
	}
	return true
}

// moveOnLine projects delta onto the current line. When an endpoint is
// reached it enters that dot and returns the unused part of delta with
// true.
func (t *Tracer) moveOnLine(delta geom.Dot) (geom.Dot, bool) {
	l := t.lines[len(t.lines)-1]
	a, b := t.puzzle.Endpoints(l)
	length := a.Dist(b)
	lw := t.puzzle.LineWidth()

	proj := t.projection(l, delta)
	if c, ok := t.puzzle.LineConstraint(l); ok && c == puzzle.ForbiddenTraversal {
		limit := t.cfg.breakWidth - lw/length*0.5
		if t.progress < 0.5 {
			if t.progress+proj > limit {
				proj = limit - t.progress
			}
		} else if t.progress+proj < 1-limit {
			proj = 1 - limit - t.progress
		}
	}
	if math.Abs(proj) <= epsilon {
		return geom.Zero, false
	}

	margin := lw * 0.5 / length * t.cfg.leaveRadius
	switch {
	case proj > 0 && t.progress+proj > 1-margin:
		used := clamp01((1 - margin - t.progress) / proj)
		t.enterDot(l.B)
		t.offset = a.Sub(b).Scale(margin)
		return delta.Scale(1 - used), true
	case proj < 0 && t.progress+proj < margin:
		used := clamp01((margin - t.progress) / proj)
		t.enterDot(l.A)
		t.offset = b.Sub(a).Scale(margin)
		return delta.Scale(1 - used), true
	}
	t.progress += proj
	return geom.Zero, false
}

// nearLine picks, among the lines at the last dot, the one whose direction
// deviates least from dir; ties go to the earlier line. It reports false
// when that line does not point along dir.
func (t *Tracer) nearLine(dir geom.Dot) (puzzle.LineIndex, bool) {
	here := t.lastDot()
	origin := t.puzzle.Dot(here)

	var best puzzle.LineIndex
	bestDev, found := math.Inf(1), false
	for _, l := range t.puzzle.IncidentLines(here) {
		far := t.puzzle.Dot(l.Other(here)).Sub(origin)
		if dev := geom.AngleBetween(far, dir); dev < bestDev {
			best, bestDev, found = l, dev, true
		}
	}
	if !found {
		return puzzle.LineIndex{}, false
	}
	if t.puzzle.Dot(best.Other(here)).Sub(origin).Scalar(dir) <= 0 {
		return puzzle.LineIndex{}, false
	}
	return best, true
}

// projection returns v measured in units of l's progress.
func (t *Tracer) projection(l puzzle.LineIndex, v geom.Dot) float64 {
	a, b := t.puzzle.Endpoints(l)
	edge := b.Sub(a)
	return v.Scalar(edge) / edge.Len2()
}

func (t *Tracer) enterLine(l puzzle.LineIndex) {
	if n := len(t.lines); n > 0 && t.lines[n-1] == l {
		t.dots = t.dots[:len(t.dots)-1]
	} else {
		t.lines = append(t.lines, l)
	}
	t.atDot = false
}

func (t *Tracer) enterDot(d puzzle.DotIndex) {
	if d == t.lastDot() {
		t.lines = t.lines[:len(t.lines)-1]
	} else {
		t.dots = append(t.dots, d)
	}
	t.atDot = true
	t.offset = geom.Zero
}

func (t *Tracer) startFrom(d puzzle.DotIndex) {
	t.clear()
	t.solving = true
	t.drawing = true
	t.dots = append(t.dots, d)
	t.atDot = true
}

func (t *Tracer) clear() {
	t.dots = t.dots[:0]
	t.lines = t.lines[:0]
	t.atDot = false
	t.offset = geom.Zero
	t.progress = 0
	t.solving = false
	t.drawing = false
	t.solved = false
}

func (t *Tracer) lastDot() puzzle.DotIndex {
	return t.dots[len(t.dots)-1]
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// State reports where the cursor is; Idle when no trace is active.
func (t *Tracer) State() State {
	switch {
	case !t.solving:
		return Idle
	case t.atDot:
		return AtDot
	default:
		return OnLine
	}
}

// IsSolving reports whether a trace is being dragged.
func (t *Tracer) IsSolving() bool { return t.solving }

// IsDrawing reports whether there is a path to display: an active trace or
// a solved one.
func (t *Tracer) IsDrawing() bool { return t.drawing }

// IsSolved reports whether the displayed path was accepted.
func (t *Tracer) IsSolved() bool { return t.solved }

// Dots returns a copy of the visited dots.
func (t *Tracer) Dots() []puzzle.DotIndex {
	out := make([]puzzle.DotIndex, len(t.dots))
	copy(out, t.dots)
	return out
}

// Lines returns a copy of the traversed lines.
func (t *Tracer) Lines() []puzzle.LineIndex {
	out := make([]puzzle.LineIndex, len(t.lines))
	copy(out, t.lines)
	return out
}

// Progress returns the position along the last line; meaningful OnLine.
func (t *Tracer) Progress() float64 { return t.progress }

// Offset returns the cursor relative to the last dot; meaningful AtDot.
func (t *Tracer) Offset() geom.Dot { return t.offset }

// Path returns the current trace in the form solution.Check takes.
func (t *Tracer) Path() solution.Path {
	return solution.Path{Dots: t.Dots(), Lines: t.Lines(), AtDot: t.atDot}
}
