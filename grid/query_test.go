package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexworld/hex"
)

func TestNeighbors(t *testing.T) {
	t.Parallel()

	g := NewHexagon(1, Options{})
	center := hex.Cube{}

	t.Run("full ring in direction order", func(t *testing.T) {
		got := g.Neighbors(center, false)
		require.Len(t, got, 6)
		for i, dir := range hex.Directions {
			assert.Equal(t, center.Add(dir), got[i])
		}
	})

	t.Run("grid edge truncates", func(t *testing.T) {
		corner := hex.Cube{X: 1, Y: -1, Z: 0}
		got := g.Neighbors(corner, false)
		assert.Len(t, got, 3) // only the in-grid side survives
	})

	t.Run("passable only", func(t *testing.T) {
		blocked := center.Add(hex.Directions[0])
		g2 := g.SetPassable(blocked, false)
		got := g2.Neighbors(center, true)
		assert.Len(t, got, 5)
		assert.NotContains(t, got, blocked)
	})
}

func TestRange(t *testing.T) {
	t.Parallel()

	g := NewHexagon(3, Options{})
	center := hex.Cube{}

	assert.Len(t, g.Range(center, 0), 1)
	assert.Len(t, g.Range(center, 1), 7)
	assert.Len(t, g.Range(center, 2), 19)
	// Capped by grid extent.
	assert.Len(t, g.Range(center, 10), 37)

	// Range ignores obstacles.
	g2 := g.SetPassable(hex.Cube{X: 1, Y: -1, Z: 0}, false)
	assert.Len(t, g2.Range(center, 1), 7)
}

func TestRing(t *testing.T) {
	t.Parallel()

	g := NewHexagon(2, Options{})
	center := hex.Cube{}

	t.Run("radius zero is the center", func(t *testing.T) {
		got := g.Ring(center, 0)
		assert.Equal(t, []hex.Cube{center}, got)
	})

	t.Run("exact distance only", func(t *testing.T) {
		got := g.Ring(center, 2)
		assert.Len(t, got, 12)
		for _, c := range got {
			assert.Equal(t, 2, hex.Distance(center, c))
		}
	})

	t.Run("beyond grid is empty", func(t *testing.T) {
		assert.Empty(t, g.Ring(center, 5))
	})
}

func TestSpiral(t *testing.T) {
	t.Parallel()

	g := NewHexagon(3, Options{})
	center := hex.Cube{}

	got := g.Spiral(center, 2)
	require.Len(t, got, 19)
	assert.Equal(t, center, got[0])

	// Rings appear in increasing-radius order.
	for i, c := range got {
		d := hex.Distance(center, c)
		switch {
		case i == 0:
			assert.Equal(t, 0, d)
		case i <= 6:
			assert.Equal(t, 1, d)
		default:
			assert.Equal(t, 2, d)
		}
	}

	// Same set as the union of the rings.
	want := append(g.Ring(center, 0), g.Ring(center, 1)...)
	want = append(want, g.Ring(center, 2)...)
	assert.ElementsMatch(t, want, got)
}

func TestReachable(t *testing.T) {
	t.Parallel()

	t.Run("open grid matches range", func(t *testing.T) {
		g := NewHexagon(3, Options{})
		start := hex.Cube{}
		got := g.Reachable(start, 2)
		assert.ElementsMatch(t, g.Range(start, 2), got)
		assert.Equal(t, start, got[0])
	})

	t.Run("obstacles force detours", func(t *testing.T) {
		// Block the three cells between start and the far side so the
		// flood fill has to walk around them.
		g := NewHexagon(2, Options{})
		start := hex.Cube{X: -2, Y: 2, Z: 0}
		for _, c := range []hex.Cube{
			{X: -1, Y: 1, Z: 0},
			{X: -1, Y: 2, Z: -1},
			{X: -1, Y: 0, Z: 1},
		} {
			g = g.SetPassable(c, false)
		}

		got := g.Reachable(start, 2)
		// Only the rim cells on the open side are attainable in two hops.
		assert.ElementsMatch(t, []hex.Cube{
			start,
			{X: -2, Y: 1, Z: 1},
			{X: -2, Y: 0, Z: 2},
		}, got)
		assert.NotContains(t, got, hex.Cube{})
	})

	t.Run("layers are in hop order", func(t *testing.T) {
		g := NewRectangle(5, 5, Options{})
		start := hex.FromOffset(hex.Offset{Col: 2, Row: 2}, hex.Pointy)
		got := g.Reachable(start, 3)

		last := 0
		for _, c := range got {
			d := hopCount(g, start, c)
			require.GreaterOrEqual(t, d, last)
			require.LessOrEqual(t, d, 3)
			last = d
		}
	})

	t.Run("walled-in start reaches nothing", func(t *testing.T) {
		g := NewHexagon(2, Options{})
		start := hex.Cube{}
		for _, n := range start.Neighbors() {
			g = g.SetPassable(n, false)
		}
		got := g.Reachable(start, 2)
		assert.Equal(t, []hex.Cube{start}, got)
	})

	t.Run("contains exactly the hop-bounded set", func(t *testing.T) {
		g := NewRectangle(4, 4, Options{})
		start := hex.FromOffset(hex.Offset{Col: 0, Row: 0}, hex.Pointy)
		g = g.SetPassable(hex.FromOffset(hex.Offset{Col: 1, Row: 0}, hex.Pointy), false)
		g = g.SetPassable(hex.FromOffset(hex.Offset{Col: 1, Row: 1}, hex.Pointy), false)

		const budget = 2
		got := g.Reachable(start, budget)

		want := []hex.Cube{start}
		g.ForEach(func(c Cell) {
			if c.Coord == start || !c.Passable {
				return
			}
			if d := hopCount(g, start, c.Coord); d > 0 && d <= budget {
				want = append(want, c.Coord)
			}
		})
		assert.ElementsMatch(t, want, got)
	})
}

// hopCount is an independent breadth-first shortest passable hop count,
// -1 when unreachable. Used to cross-check Reachable and the pathfinder.
func hopCount(g Grid, start, end hex.Cube) int {
	if start == end {
		return 0
	}
	dist := map[hex.Cube]int{start: 0}
	queue := []hex.Cube{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur, true) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == end {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}
