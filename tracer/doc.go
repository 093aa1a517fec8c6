// SPDX-License-Identifier: MIT
// Package tracer implements the interactive path-tracing state machine:
// pointer clicks and relative motion turn into a path of dots and lines on
// a puzzle.Puzzle, and a finishing click hands that path to solution.Check.
//
// What:
//
//   - Click(pos) starts a trace when pos is close to a start dot, or judges
//     the running trace when one is active.
//   - UpdateMouse(delta) moves the cursor along the board. At a dot the
//     motion accumulates until it leaves a small radius, then the line
//     closest in angle to the motion is entered. On a line the motion is
//     projected onto the line; approaching an endpoint enters that dot.
//     Moving back along the line just left is backtracking and shortens the
//     path instead of growing it.
//   - Segments(), StartPoint() and Head() decompose the trace for drawing.
//
// States:
//
//   - Idle:   no active trace (a solved trace may still be displayed)
//   - AtDot:  the cursor is anchored at the last dot of the path
//   - OnLine: the cursor is somewhere along the last line of the path
//
// Lines carrying puzzle.ForbiddenTraversal cannot be crossed: progress
// stops at the edge of the gap around their midpoint.
//
// Options:
//
//   - WithStartRadius(r)  capture distance of a start dot (default 0.045)
//   - WithLeaveRadius(k)  dot leave radius, in line widths (default 1.0)
//   - WithBreakWidth(f)   fraction of a line where a break gap begins (default 0.4)
//   - WithOnVerdict(fn)   hook called with the verdict of each finishing click
//
// Complexity:
//
//   - UpdateMouse: O(T·deg) for T boundary crossings in one motion; T is capped
//     at 2·E+2.
//   - Segments:    O(len(path)).
//
// A Tracer is owned by a single goroutine, and the puzzle's constraints must
// not be edited while a trace is active.
package tracer
