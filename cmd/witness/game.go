// SPDX-License-Identifier: MIT
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/katalvlaran/witness/geom"
	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/tracer"
)

type mode int

const (
	modeSolve mode = iota
	modeEdit
)

func (m mode) String() string {
	if m == modeEdit {
		return "edit"
	}
	return "solve"
}

// brush is the constraint placed by a click in edit mode.
type brush int

const (
	brushHexagon brush = iota
	brushBreak
	brushSquare
)

func (b brush) String() string {
	switch b {
	case brushBreak:
		return "line break"
	case brushSquare:
		return "square"
	default:
		return "hexagon"
	}
}

const (
	pulseDuration = 0.8 // seconds per half cycle of the solved glow
	fadeDuration  = 0.6 // seconds for a rejected path to fade out
)

type game struct {
	grid   *puzzle.Grid
	tracer *tracer.Tracer
	logger *log.Logger
	view   view

	mode  mode
	brush brush
	color puzzle.Color
	hover puzzle.Selection

	cursorX, cursorY int

	pulse *gween.Tween
	glow  float32

	fade      *gween.Tween
	fadeAlpha float32
	rejected  []tracer.Segment
	rejStart  geom.Dot
}

func newGame(g *puzzle.Grid, logger *log.Logger, m mode) *game {
	gm := &game{grid: g, logger: logger, mode: m, color: puzzle.Black}
	gm.tracer = tracer.New(g.Puzzle, tracer.WithOnVerdict(gm.verdict))
	gm.cursorX, gm.cursorY = ebiten.CursorPosition()
	return gm
}

func (g *game) verdict(err error) {
	if err != nil {
		g.logger.Printf("rejected: %v", err)
		return
	}
	g.logger.Printf("solved in %d lines", len(g.tracer.Lines()))
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	x, y := ebiten.CursorPosition()
	dx, dy := x-g.cursorX, y-g.cursorY
	g.cursorX, g.cursorY = x, y

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.abandon()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab) && !g.tracer.IsSolving():
		g.tracer.Reset()
		g.pulse, g.glow = nil, 0
		if g.mode == modeSolve {
			g.mode = modeEdit
		} else {
			g.mode = modeSolve
		}
		g.logger.Printf("%s mode", g.mode)
	}

	switch g.mode {
	case modeSolve:
		g.updateSolve(x, y, dx, dy)
	case modeEdit:
		g.updateEdit(x, y)
	}
	g.stepTweens(dt)
	return nil
}

func (g *game) updateSolve(x, y, dx, dy int) {
	if g.tracer.IsSolving() && (dx != 0 || dy != 0) {
		g.tracer.UpdateMouse(g.view.delta(dx, dy))
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}

	wasSolving := g.tracer.IsSolving()
	var segs []tracer.Segment
	var start geom.Dot
	if wasSolving {
		segs, start = g.tracer.Segments(), g.tracer.StartPoint()
	}

	solving, err := g.tracer.Click(g.view.toPuzzle(x, y))
	switch {
	case solving:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
		g.pulse, g.glow = nil, 0
		g.fade, g.rejected = nil, nil
	case wasSolving && err == nil:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.pulse = gween.New(0, 1, pulseDuration, ease.InOutSine)
	case wasSolving:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		g.rejected, g.rejStart = segs, start
		g.fade = gween.New(1, 0, fadeDuration, ease.OutQuad)
	}
}

func (g *game) updateEdit(x, y int) {
	g.hover = g.grid.Pick(g.view.toPuzzle(x, y))

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.brush = brushHexagon
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.brush = brushBreak
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.brush = brushSquare
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		colors := puzzle.Colors()
		g.color = colors[(int(g.color)+1)%len(colors)]
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.apply(g.hover)
	}
}

// apply toggles the current brush on sel. Brushes that do not fit the
// selected kind of element are ignored.
func (g *game) apply(sel puzzle.Selection) {
	var on bool
	switch {
	case g.brush == brushHexagon && sel.Kind == puzzle.SelectDot:
		on = g.grid.ToggleDotConstraint(sel.Dot, puzzle.RequiredVisit)
		g.logger.Printf("dot %d hexagon: %t", sel.Dot, on)
	case g.brush == brushHexagon && sel.Kind == puzzle.SelectLine:
		on = g.grid.ToggleLineConstraint(sel.Line, puzzle.RequiredTraversal)
		g.logger.Printf("%s hexagon: %t", sel.Line, on)
	case g.brush == brushBreak && sel.Kind == puzzle.SelectLine:
		on = g.grid.ToggleLineConstraint(sel.Line, puzzle.ForbiddenTraversal)
		g.logger.Printf("%s break: %t", sel.Line, on)
	case g.brush == brushSquare && sel.Kind == puzzle.SelectPane:
		on = g.grid.TogglePaneConstraint(sel.Pane, puzzle.ColoredSquare(g.color))
		g.logger.Printf("pane %d %s square: %t", sel.Pane, g.color, on)
	}
}

func (g *game) abandon() {
	if !g.tracer.IsDrawing() {
		return
	}
	g.tracer.Reset()
	g.pulse, g.glow = nil, 0
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

func (g *game) stepTweens(dt float32) {
	if g.pulse != nil {
		if !g.tracer.IsSolved() {
			g.pulse, g.glow = nil, 0
		} else {
			v, done := g.pulse.Update(dt)
			g.glow = v
			if done {
				g.pulse = gween.New(v, 1-v, pulseDuration, ease.InOutSine)
			}
		}
	}
	if g.fade != nil {
		v, done := g.fade.Update(dt)
		g.fadeAlpha = v
		if done {
			g.fade, g.rejected = nil, nil
		}
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view = newView(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
