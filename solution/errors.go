// SPDX-License-Identifier: MIT
package solution

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/witness/puzzle"
)

// Sentinel errors for Check. DotError and LineError unwrap to ErrDot and
// ErrLine, so errors.Is works for every verdict.
var (
	// ErrIncomplete indicates the path is mid-line or does not stop on an end dot.
	ErrIncomplete = errors.New("solution: path does not finish at an end dot")

	// ErrDot indicates a violated dot constraint.
	ErrDot = errors.New("solution: dot constraint violated")

	// ErrLine indicates a violated line constraint.
	ErrLine = errors.New("solution: line constraint violated")

	// ErrPane indicates a region holding squares of more than one color.
	// It names no pane: the violation belongs to a whole region.
	ErrPane = errors.New("solution: region holds squares of different colors")
)

// DotError reports the dot whose constraint the path violates.
type DotError struct {
	Dot        puzzle.DotIndex
	Constraint puzzle.DotConstraint
}

func (e *DotError) Error() string {
	return fmt.Sprintf("solution: dot %d: %s not satisfied", e.Dot, e.Constraint)
}

func (e *DotError) Unwrap() error { return ErrDot }

// LineError reports the line whose constraint the path violates.
type LineError struct {
	Line       puzzle.LineIndex
	Constraint puzzle.LineConstraint
}

func (e *LineError) Error() string {
	return fmt.Sprintf("solution: %s: %s not satisfied", e.Line, e.Constraint)
}

func (e *LineError) Unwrap() error { return ErrLine }
