// SPDX-License-Identifier: MIT
package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/witness/geom"
)

const eps = 1e-12

func TestDot_Arithmetic(t *testing.T) {
	a := geom.Pt(1, 2)
	b := geom.Pt(4, -2)

	assert.Equal(t, geom.Pt(5, 0), a.Add(b))
	assert.Equal(t, geom.Pt(-3, 4), a.Sub(b))
	assert.Equal(t, geom.Pt(2, 4), a.Scale(2))
	assert.Equal(t, geom.Pt(2.5, 0), a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.InDelta(t, 0.0, a.Scalar(b), eps)
}

func TestDot_Lengths(t *testing.T) {
	d := geom.Pt(3, 4)
	assert.InDelta(t, 25.0, d.Len2(), eps)
	assert.InDelta(t, 5.0, d.Len(), eps)
	assert.InDelta(t, 5.0, geom.Zero.Dist(d), eps)
}

func TestDot_IsZero(t *testing.T) {
	assert.True(t, geom.Zero.IsZero(1e-9))
	assert.True(t, geom.Pt(1e-12, -1e-12).IsZero(1e-9))
	assert.False(t, geom.Pt(0, 1e-3).IsZero(1e-9))
}

// TestAngleBetween_FoldsAtPi checks that deviations never exceed π, including
// the wrap-around case across the ±π seam of atan2.
func TestAngleBetween_FoldsAtPi(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Dot
		want float64
	}{
		{"Same", geom.Pt(1, 0), geom.Pt(2, 0), 0},
		{"Right", geom.Pt(1, 0), geom.Pt(0, 1), math.Pi / 2},
		{"Opposite", geom.Pt(1, 0), geom.Pt(-1, 0), math.Pi},
		{"AcrossSeam", geom.Pt(-1, 0.1), geom.Pt(-1, -0.1), 2 * math.Atan(0.1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.AngleBetween(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 1e-9)
			assert.LessOrEqual(t, got, math.Pi)
			assert.InDelta(t, got, geom.AngleBetween(tc.b, tc.a), 1e-9)
		})
	}
}
