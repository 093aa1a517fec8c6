// SPDX-License-Identifier: MIT
// Command witness is a playable frontend for the line-tracing puzzle.
//
// Solve mode: click the large start dot, move the mouse to trace a path,
// click again to submit it. Edit mode (Tab): 1, 2 and 3 choose the hexagon,
// line break and square brush, C cycles the square color, and a click
// toggles the brush on the element under the cursor. Esc abandons a trace.
//
// Usage:
//
//	witness [-size 5] [-edit] [-empty]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/witness/puzzle"
)

const (
	windowTitle = "Witness"
	screenW     = 720
	screenH     = 720
)

func main() {
	size := flag.Int("size", puzzle.DefaultGridConfig().Size, "dots per side of the board")
	edit := flag.Bool("edit", false, "start in edit mode")
	empty := flag.Bool("empty", false, "start from a board without constraints")
	flag.Parse()

	logger := log.New(os.Stderr, "witness: ", log.LstdFlags)

	cfg := puzzle.DefaultGridConfig()
	cfg.Size = *size
	cfg.End = puzzle.GridPos{Col: *size - 1, Row: *size - 1}
	g, err := puzzle.NewGrid(cfg)
	if err != nil {
		logger.Fatalf("build board: %v", err)
	}
	if !*empty {
		seed(g)
	}

	m := modeSolve
	if *edit {
		m = modeEdit
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(newGame(g, logger, m)); err != nil {
		logger.Fatal(err)
	}
}

// seed places a small starter puzzle on boards large enough to hold it.
func seed(g *puzzle.Grid) {
	if g.Size() < 4 {
		return
	}
	mid := g.Size() / 2
	g.SetDotConstraint(g.DotAt(mid, mid), puzzle.RequiredVisit)
	g.SetLineConstraint(g.LineAt(puzzle.GridPos{Col: mid, Row: mid - 1}, puzzle.GridPos{Col: mid, Row: mid}), puzzle.RequiredTraversal)
	g.SetLineConstraint(g.LineAt(puzzle.GridPos{Col: g.Size() - 2, Row: 0}, puzzle.GridPos{Col: g.Size() - 1, Row: 0}), puzzle.ForbiddenTraversal)
	top := g.Size() - 2
	g.SetPaneConstraint(g.PaneAt(mid-1, top), puzzle.ColoredSquare(puzzle.Black))
	g.SetPaneConstraint(g.PaneAt(mid, top), puzzle.ColoredSquare(puzzle.White))
}
