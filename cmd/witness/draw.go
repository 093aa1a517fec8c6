// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/witness/geom"
	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/tracer"
)

const (
	startDotScale = 3.0
	squareScale   = 2.0
	hexagonScale  = 0.45
)

var (
	backgroundColor = color.RGBA{R: 228, G: 165, A: 255}
	boardColor      = color.RGBA{R: 61, G: 46, B: 3, A: 255}
	pathColor       = color.RGBA{R: 255, G: 234, B: 84, A: 255}
	hexagonColor    = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	hoverColor      = color.RGBA{R: 80, G: 160, B: 255, A: 255}
)

func squareColor(c puzzle.Color) color.Color {
	if c == puzzle.White {
		return color.White
	}
	return color.Black
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawBoard(screen)

	if g.rejected != nil {
		c := color.NRGBA{R: pathColor.R, G: pathColor.G, B: pathColor.B, A: uint8(255 * g.fadeAlpha)}
		g.drawPath(screen, g.rejStart, g.rejected, c)
	}
	if g.tracer.IsDrawing() {
		g.drawPath(screen, g.tracer.StartPoint(), g.tracer.Segments(), g.pathTint())
	}
	if g.mode == modeEdit {
		g.drawHover(screen)
	}

	status := fmt.Sprintf("mode: %s (Tab)", g.mode)
	if g.mode == modeEdit {
		status += fmt.Sprintf("  brush: %s (1/2/3)  color: %s (C)", g.brush, g.color)
	}
	ebitenutil.DebugPrint(screen, status)
}

// pathTint brightens the path color towards white as the solved glow rises.
func (g *game) pathTint() color.Color {
	mix := func(a uint8) uint8 {
		return uint8(float32(a) + (255-float32(a))*g.glow)
	}
	return color.RGBA{R: mix(pathColor.R), G: mix(pathColor.G), B: mix(pathColor.B), A: 255}
}

func (g *game) drawBoard(screen *ebiten.Image) {
	p := g.grid.Puzzle
	w := g.view.px(p.LineWidth())

	for _, l := range p.Lines() {
		a, b := p.Endpoints(l)
		g.line(screen, a, b, w, boardColor)
	}
	for _, d := range p.Dots() {
		g.dot(screen, d, w, boardColor)
	}
	for _, d := range p.StartDots() {
		g.dot(screen, p.Dot(d), w*startDotScale, boardColor)
	}

	for _, l := range p.ConstrainedLines() {
		c, _ := p.LineConstraint(l)
		a, b := p.Endpoints(l)
		switch c {
		case puzzle.RequiredTraversal:
			g.hexagon(screen, a.Lerp(b, 0.5), w)
		case puzzle.ForbiddenTraversal:
			g.line(screen, a.Lerp(b, tracer.DefaultBreakWidth), a.Lerp(b, 1-tracer.DefaultBreakWidth), w+2, backgroundColor)
		}
	}
	for _, d := range p.ConstrainedDots() {
		g.hexagon(screen, p.Dot(d), w)
	}
	for _, i := range p.ConstrainedPanes() {
		c, _ := p.PaneConstraint(i)
		if c.Kind == puzzle.Square {
			g.square(screen, p.Pane(i), w*squareScale, squareColor(c.Color))
		}
	}
}

func (g *game) drawPath(screen *ebiten.Image, start geom.Dot, segs []tracer.Segment, c color.Color) {
	w := g.view.px(g.grid.LineWidth())
	g.dot(screen, start, w*startDotScale, c)
	for _, s := range segs {
		g.line(screen, s.From, s.To, w, c)
		g.dot(screen, s.From, w, c)
		g.dot(screen, s.To, w, c)
	}
}

func (g *game) drawHover(screen *ebiten.Image) {
	p := g.grid.Puzzle
	w := g.view.px(p.LineWidth())
	switch g.hover.Kind {
	case puzzle.SelectDot:
		x, y := g.view.toScreen(p.Dot(g.hover.Dot))
		vector.StrokeCircle(screen, x, y, w, 2, hoverColor, true)
	case puzzle.SelectLine:
		a, b := p.Endpoints(g.hover.Line)
		g.line(screen, a, b, w/3, hoverColor)
	case puzzle.SelectPane:
		x, y := g.view.toScreen(p.Pane(g.hover.Pane))
		half := g.view.px(p.CellSize()) / 2
		vector.StrokeRect(screen, x-half, y-half, 2*half, 2*half, 2, hoverColor, false)
	}
}

func (g *game) line(screen *ebiten.Image, a, b geom.Dot, width float32, c color.Color) {
	x0, y0 := g.view.toScreen(a)
	x1, y1 := g.view.toScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, c, true)
}

func (g *game) dot(screen *ebiten.Image, d geom.Dot, width float32, c color.Color) {
	x, y := g.view.toScreen(d)
	vector.DrawFilledCircle(screen, x, y, width/2, c, true)
}

func (g *game) square(screen *ebiten.Image, d geom.Dot, side float32, c color.Color) {
	x, y := g.view.toScreen(d)
	vector.DrawFilledRect(screen, x-side/2, y-side/2, side, side, c, false)
}

// hexagon outlines a small hexagon centered on d.
func (g *game) hexagon(screen *ebiten.Image, d geom.Dot, width float32) {
	x, y := g.view.toScreen(d)
	r := float64(width) * hexagonScale
	for i := 0; i < 6; i++ {
		a0 := math.Pi / 3 * float64(i)
		a1 := math.Pi / 3 * float64(i+1)
		vector.StrokeLine(screen,
			x+float32(r*math.Cos(a0)), y+float32(r*math.Sin(a0)),
			x+float32(r*math.Cos(a1)), y+float32(r*math.Sin(a1)),
			width/5, hexagonColor, true)
	}
}
