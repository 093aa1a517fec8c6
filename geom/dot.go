// SPDX-License-Identifier: MIT
// Package geom provides the 2D point type shared by the puzzle model,
// the path tracer and the frontend.
//
// All coordinates live in normalized puzzle space: x and y are
// conventionally in [0,1], with y growing upwards.
package geom

import "math"

// Dot is a point (or a displacement) in normalized puzzle space.
// It is a value type; every method returns a new Dot.
type Dot struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Dot{}

// Pt is shorthand for Dot{X: x, Y: y}.
func Pt(x, y float64) Dot {
	return Dot{X: x, Y: y}
}

// Add returns d+o.
func (d Dot) Add(o Dot) Dot {
	return Dot{X: d.X + o.X, Y: d.Y + o.Y}
}

// Sub returns d-o.
func (d Dot) Sub(o Dot) Dot {
	return Dot{X: d.X - o.X, Y: d.Y - o.Y}
}

// Scale returns d multiplied by k.
func (d Dot) Scale(k float64) Dot {
	return Dot{X: d.X * k, Y: d.Y * k}
}

// Lerp interpolates linearly from d (t=0) to o (t=1).
func (d Dot) Lerp(o Dot, t float64) Dot {
	return Dot{X: d.X + (o.X-d.X)*t, Y: d.Y + (o.Y-d.Y)*t}
}

// Scalar returns the inner product of d and o.
func (d Dot) Scalar(o Dot) float64 {
	return d.X*o.X + d.Y*o.Y
}

// Len2 returns the squared Euclidean length of d.
func (d Dot) Len2() float64 {
	return d.X*d.X + d.Y*d.Y
}

// Len returns the Euclidean length of d.
func (d Dot) Len() float64 {
	return math.Hypot(d.X, d.Y)
}

// Dist returns the Euclidean distance between d and o.
func (d Dot) Dist(o Dot) float64 {
	return d.Sub(o).Len()
}

// Angle returns the direction of d in radians, in (-π, π].
func (d Dot) Angle() float64 {
	return math.Atan2(d.Y, d.X)
}

// IsZero reports whether both components are within eps of zero.
func (d Dot) IsZero(eps float64) bool {
	return math.Abs(d.X) < eps && math.Abs(d.Y) < eps
}

// AngleBetween returns the angular deviation between the directions of a
// and b, folded into [0, π].
func AngleBetween(a, b Dot) float64 {
	dev := math.Abs(a.Angle() - b.Angle())
	if dev > math.Pi {
		dev = 2*math.Pi - dev
	}
	return dev
}
