// SPDX-License-Identifier: MIT
package tracer

import "fmt"

// Defaults used by New when no Option overrides them.
const (
	// DefaultStartRadius is the distance from a start dot within which a
	// click begins a trace, in puzzle units.
	DefaultStartRadius = 0.045

	// DefaultLeaveRadius is how far the cursor may drift from a dot before a
	// line is entered, as a multiple of the puzzle's line width. The same
	// factor scales the margin near line endpoints that snaps to a dot.
	DefaultLeaveRadius = 1.0

	// DefaultBreakWidth is the fraction of a line, measured from either end,
	// where the gap of a ForbiddenTraversal break begins.
	DefaultBreakWidth = 0.4
)

// Option configures a Tracer.
type Option func(*config)

type config struct {
	startRadius float64
	leaveRadius float64
	breakWidth  float64
	onVerdict   func(err error)
}

func defaultConfig() config {
	return config{
		startRadius: DefaultStartRadius,
		leaveRadius: DefaultLeaveRadius,
		breakWidth:  DefaultBreakWidth,
	}
}

// WithStartRadius sets the capture distance of start dots.
// Panics if r is not positive.
func WithStartRadius(r float64) Option {
	if r <= 0 {
		panic(fmt.Sprintf("tracer: start radius must be positive, got %v", r))
	}
	return func(c *config) { c.startRadius = r }
}

// WithLeaveRadius sets the dot leave radius as a multiple of line width.
// Panics if k is not positive.
func WithLeaveRadius(k float64) Option {
	if k <= 0 {
		panic(fmt.Sprintf("tracer: leave radius must be positive, got %v", k))
	}
	return func(c *config) { c.leaveRadius = k }
}

// WithBreakWidth sets where a line break gap begins, as a fraction of the
// line. Panics unless 0 < f < 0.5.
func WithBreakWidth(f float64) Option {
	if f <= 0 || f >= 0.5 {
		panic(fmt.Sprintf("tracer: break width must be in (0, 0.5), got %v", f))
	}
	return func(c *config) { c.breakWidth = f }
}

// WithOnVerdict installs fn as a hook called after every finishing click
// with the verdict of solution.Check (nil on success). A nil fn removes
// the hook.
func WithOnVerdict(fn func(err error)) Option {
	return func(c *config) { c.onVerdict = fn }
}
