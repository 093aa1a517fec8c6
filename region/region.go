// SPDX-License-Identifier: MIT
package region

import (
	"fmt"

	"github.com/katalvlaran/witness/puzzle"
)

// Graph is the dual graph Split walks. *puzzle.Puzzle satisfies it.
type Graph interface {
	PaneCount() int
	PaneNeighbors(pane puzzle.PaneIndex) []puzzle.PaneNear
}

// Cut reports whether a line separates the two panes on either side of it.
type Cut func(line puzzle.LineIndex) bool

// NoCut keeps every adjacency.
func NoCut(puzzle.LineIndex) bool { return false }

// CutLines returns a Cut that separates panes across any of lines.
func CutLines(lines []puzzle.LineIndex) Cut {
	set := make(map[puzzle.LineIndex]struct{}, len(lines))
	for _, l := range lines {
		set[puzzle.NewLine(l.A, l.B)] = struct{}{}
	}
	return func(l puzzle.LineIndex) bool {
		_, ok := set[l]
		return ok
	}
}

// Partition is the result of Split.
type Partition struct {
	comps [][]puzzle.PaneIndex
	owner []int // pane -> component
}

// Flood-fill marks.
const (
	unseen = iota
	queued
	done
)

// Split computes the connected components of g where adjacencies across cut
// lines are removed. Components are numbered in order of their lowest pane;
// panes inside a component appear in visiting order.
func Split(g Graph, cut Cut) *Partition {
	if cut == nil {
		cut = NoCut
	}
	n := g.PaneCount()
	mark := make([]uint8, n)
	p := &Partition{owner: make([]int, n)}

	for start := 0; start < n; start++ {
		if mark[start] != unseen {
			continue
		}
		id := len(p.comps)
		var comp []puzzle.PaneIndex

		stack := []int{start}
		mark[start] = queued
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			mark[u] = done
			p.owner[u] = id
			comp = append(comp, puzzle.PaneIndex(u))

			for _, near := range g.PaneNeighbors(puzzle.PaneIndex(u)) {
				v := int(near.Pane)
				if mark[v] != unseen || cut(near.Line) {
					continue
				}
				mark[v] = queued
				stack = append(stack, v)
			}
		}
		p.comps = append(p.comps, comp)
	}

	return p
}

// Len returns the number of components.
func (p *Partition) Len() int { return len(p.comps) }

// Component returns the panes of component i. The slice must not be modified.
func (p *Partition) Component(i int) []puzzle.PaneIndex {
	if i < 0 || i >= len(p.comps) {
		panic(fmt.Sprintf("region: component %d out of range [0,%d)", i, len(p.comps)))
	}
	return p.comps[i]
}

// Components returns every component. The slices must not be modified.
func (p *Partition) Components() [][]puzzle.PaneIndex { return p.comps }

// Owner returns the component holding pane.
func (p *Partition) Owner(pane puzzle.PaneIndex) int {
	if pane < 0 || int(pane) >= len(p.owner) {
		panic(fmt.Sprintf("region: pane %d out of range [0,%d)", pane, len(p.owner)))
	}
	return p.owner[pane]
}

// Together reports whether a and b lie in the same component.
func (p *Partition) Together(a, b puzzle.PaneIndex) bool {
	return p.Owner(a) == p.Owner(b)
}
