// SPDX-License-Identifier: MIT
package region_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/witness/puzzle"
	"github.com/katalvlaran/witness/region"
)

const (
	randomRounds = 200
	randomSeed   = 7
)

func grid(t *testing.T) *puzzle.Grid {
	t.Helper()
	g, err := puzzle.NewGrid(puzzle.DefaultGridConfig())
	require.NoError(t, err)
	return g
}

func pos(col, row int) puzzle.GridPos { return puzzle.GridPos{Col: col, Row: row} }

// assertTotal checks that every pane belongs to exactly one component and
// that Owner agrees with the component lists.
func assertTotal(t *testing.T, g region.Graph, p *region.Partition) {
	t.Helper()
	seen := make(map[puzzle.PaneIndex]int, g.PaneCount())
	for i, comp := range p.Components() {
		assert.NotEmpty(t, comp)
		for _, pane := range comp {
			seen[pane]++
			assert.Equal(t, i, p.Owner(pane))
		}
	}
	require.Len(t, seen, g.PaneCount())
	for pane, n := range seen {
		assert.Equal(t, 1, n, "pane %d", pane)
	}
}

func sizes(p *region.Partition) []int {
	out := make([]int, 0, p.Len())
	for _, c := range p.Components() {
		out = append(out, len(c))
	}
	sort.Ints(out)
	return out
}

func TestSplit_EmptyPathIsOneRegion(t *testing.T) {
	g := grid(t)
	for _, cut := range []region.Cut{nil, region.NoCut, region.CutLines(nil)} {
		p := region.Split(g, cut)
		require.Equal(t, 1, p.Len())
		assert.Len(t, p.Component(0), g.PaneCount())
		assertTotal(t, g, p)
	}
}

// TestSplit_ColumnCut walls off the two left pane columns from the two right
// ones with the vertical lines at col=2.
func TestSplit_ColumnCut(t *testing.T) {
	g := grid(t)
	var wall []puzzle.LineIndex
	for row := 0; row < 4; row++ {
		wall = append(wall, g.LineAt(pos(2, row), pos(2, row+1)))
	}

	p := region.Split(g, region.CutLines(wall))
	assert.Equal(t, []int{8, 8}, sizes(p))
	assertTotal(t, g, p)
	assert.True(t, p.Together(g.PaneAt(0, 0), g.PaneAt(1, 3)))
	assert.False(t, p.Together(g.PaneAt(1, 1), g.PaneAt(2, 1)))

	// Dropping one wall segment merges both halves again.
	p = region.Split(g, region.CutLines(wall[1:]))
	assert.Equal(t, 1, p.Len())
}

func TestSplit_CornerPane(t *testing.T) {
	g := grid(t)
	box := []puzzle.LineIndex{
		g.LineAt(pos(1, 0), pos(1, 1)),
		g.LineAt(pos(0, 1), pos(1, 1)),
	}
	p := region.Split(g, region.CutLines(box))
	assert.Equal(t, []int{1, 15}, sizes(p))
	assert.Equal(t, []puzzle.PaneIndex{g.PaneAt(0, 0)}, p.Component(0))
	assertTotal(t, g, p)
}

// TestSplit_BoundaryLinesCutNothing uses lines on the frame of the board;
// they border a single pane and so never separate anything.
func TestSplit_BoundaryLinesCutNothing(t *testing.T) {
	g := grid(t)
	frame := []puzzle.LineIndex{
		g.LineAt(pos(0, 0), pos(1, 0)),
		g.LineAt(pos(0, 0), pos(0, 1)),
		g.LineAt(pos(4, 3), pos(4, 4)),
	}
	p := region.Split(g, region.CutLines(frame))
	assert.Equal(t, 1, p.Len())
}

// TestSplit_RandomCutsAreTotal drives Split with random line subsets.
func TestSplit_RandomCutsAreTotal(t *testing.T) {
	g := grid(t)
	lines := g.Lines()
	rng := rand.New(rand.NewSource(randomSeed))

	for round := 0; round < randomRounds; round++ {
		var cut []puzzle.LineIndex
		for _, l := range lines {
			if rng.Intn(3) == 0 {
				cut = append(cut, l)
			}
		}
		p := region.Split(g, region.CutLines(cut))
		assertTotal(t, g, p)
		assert.LessOrEqual(t, p.Len(), g.PaneCount())
	}
}

func TestPartition_PanicsOutOfRange(t *testing.T) {
	g := grid(t)
	p := region.Split(g, nil)
	assert.Panics(t, func() { p.Component(1) })
	assert.Panics(t, func() { p.Owner(16) })
}
