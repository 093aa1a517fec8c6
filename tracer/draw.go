// SPDX-License-Identifier: MIT
package tracer

import "github.com/katalvlaran/witness/geom"

// Segment is a drawable piece of the path, oriented in tracing order.
type Segment struct {
	From, To geom.Dot
}

// StartPoint returns the position of the dot the trace began at.
// Panics if nothing is being drawn.
func (t *Tracer) StartPoint() geom.Dot {
	t.mustDraw()
	return t.puzzle.Dot(t.dots[0])
}

// Segments decomposes the path into one segment per committed line plus
// the partial segment under the cursor. At a dot the cursor offset is
// shown along the line it points into; when that is the line just
// traversed, the last segment is shortened instead.
// Panics if nothing is being drawn.
func (t *Tracer) Segments() []Segment {
	t.mustDraw()
	if !t.atDot {
		n := len(t.lines)
		segs := t.fullSegments(n - 1)
		l := t.lines[n-1]
		a, b := t.puzzle.Endpoints(l)
		return append(segs, Segment{From: t.puzzle.Dot(t.lastDot()), To: a.Lerp(b, t.progress)})
	}

	segs := t.fullSegments(len(t.lines))
	l, ok := t.nearLine(t.offset)
	if !ok {
		return segs
	}
	here := t.lastDot()
	proj := t.projection(l, t.offset)
	if here == l.B {
		proj++
	}
	a, b := t.puzzle.Endpoints(l)
	tip := a.Lerp(b, proj)
	if n := len(t.lines); n > 0 && t.lines[n-1] == l {
		segs[n-1].To = tip
		return segs
	}
	return append(segs, Segment{From: t.puzzle.Dot(here), To: tip})
}

// Head returns the cursor position on the board.
// Panics if nothing is being drawn.
func (t *Tracer) Head() geom.Dot {
	segs := t.Segments()
	if len(segs) == 0 {
		return t.StartPoint()
	}
	return segs[len(segs)-1].To
}

// fullSegments returns the first n committed lines as segments.
func (t *Tracer) fullSegments(n int) []Segment {
	segs := make([]Segment, 0, n+1)
	for i := 0; i < n; i++ {
		segs = append(segs, Segment{From: t.puzzle.Dot(t.dots[i]), To: t.puzzle.Dot(t.dots[i+1])})
	}
	return segs
}

func (t *Tracer) mustDraw() {
	if !t.drawing {
		panic("tracer: not drawing")
	}
}
