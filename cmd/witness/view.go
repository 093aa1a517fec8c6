// SPDX-License-Identifier: MIT
package main

import "github.com/katalvlaran/witness/geom"

// view maps puzzle space onto the largest centered square of the window.
// Screen y grows downwards, puzzle y upwards.
type view struct {
	left, top, size float64
}

func newView(w, h int) view {
	s := min(w, h)
	return view{
		left: float64(w-s) / 2,
		top:  float64(h-s) / 2,
		size: float64(s),
	}
}

func (v view) toPuzzle(x, y int) geom.Dot {
	return geom.Pt((float64(x)-v.left)/v.size, 1-(float64(y)-v.top)/v.size)
}

// delta converts a cursor motion in pixels into a puzzle-space motion.
func (v view) delta(dx, dy int) geom.Dot {
	return geom.Pt(float64(dx)/v.size, -float64(dy)/v.size)
}

func (v view) toScreen(d geom.Dot) (x, y float32) {
	return float32(v.left + d.X*v.size), float32(v.top + (1-d.Y)*v.size)
}

// px converts a puzzle-space length into pixels.
func (v view) px(l float64) float32 {
	return float32(l * v.size)
}
