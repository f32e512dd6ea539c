package worldgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexworld/grid"
	"github.com/talgya/hexworld/hex"
	"github.com/talgya/hexworld/pathfind"
)

func TestGenerateShape(t *testing.T) {
	t.Parallel()

	cfg := SmallConfig()
	g := Generate(cfg)

	// A radius-5 hexagon: 1 + 3*5*6 cells.
	assert.Equal(t, 91, g.Len())
	g.ForEach(func(c grid.Cell) {
		assert.LessOrEqual(t, hex.Distance(hex.Cube{}, c.Coord), cfg.Radius)
	})
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	cfg := SmallConfig()
	a := Generate(cfg)
	b := Generate(cfg)

	snapA := make(map[hex.Cube]grid.Cell)
	a.ForEach(func(c grid.Cell) { snapA[c.Coord] = c })
	snapB := make(map[hex.Cube]grid.Cell)
	b.ForEach(func(c grid.Cell) { snapB[c.Coord] = c })

	assert.Empty(t, cmp.Diff(snapA, snapB))
}

func TestGenerateClassifiesEveryCell(t *testing.T) {
	t.Parallel()

	g := Generate(SmallConfig())
	g.ForEach(func(c grid.Cell) {
		terrain, ok := c.Data[TerrainKey].(Terrain)
		require.True(t, ok, "cell without terrain data")

		// Passability follows the terrain class.
		blockedTerrain := terrain == TerrainWater || terrain == TerrainMountain
		assert.Equal(t, !blockedTerrain, c.Passable)
	})
}

func TestDeriveTerrainThresholds(t *testing.T) {
	t.Parallel()

	cfg := SmallConfig()
	tests := []struct {
		name              string
		elev, moist, temp float64
		want              Terrain
	}{
		{"below sea level", 0.1, 0.5, 0.5, TerrainWater},
		{"above mountain level", 0.9, 0.5, 0.5, TerrainMountain},
		{"high ground", 0.6, 0.3, 0.5, TerrainHills},
		{"wet and warm lowland", 0.4, 0.8, 0.6, TerrainSwamp},
		{"moderate moisture", 0.4, 0.5, 0.5, TerrainForest},
		{"dry lowland", 0.4, 0.2, 0.5, TerrainPlains},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveTerrain(tt.elev, tt.moist, tt.temp, cfg))
		})
	}
}

func TestMoveCost(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, MoveCost(TerrainPlains))
	assert.Equal(t, 1.5, MoveCost(TerrainForest))
	assert.Equal(t, 2.0, MoveCost(TerrainHills))
	assert.Equal(t, 2.5, MoveCost(TerrainSwamp))
	assert.Zero(t, MoveCost(TerrainWater))
	assert.Zero(t, MoveCost(TerrainMountain))
}

func TestCostFnFeedsPathfinder(t *testing.T) {
	t.Parallel()

	// Hand-built grid: the shortest hop route crosses a swamp, the
	// detour stays on plains. The terrain cost must steer the search.
	g := grid.NewHexagon(2, grid.Options{})
	swamps := []hex.Cube{
		{X: 1, Y: -1, Z: 0},
	}
	g = g.MapCells(func(c grid.Cell) grid.Cell {
		terrain := TerrainPlains
		for _, s := range swamps {
			if c.Coord == s {
				terrain = TerrainSwamp
			}
		}
		if c.Data == nil {
			c.Data = make(map[string]any, 1)
		}
		c.Data[TerrainKey] = terrain
		return c
	})

	start := hex.Cube{}
	end := hex.Cube{X: 2, Y: -2, Z: 0}

	path := pathfind.Find(g, start, end, pathfind.Options{Cost: CostFn(g)})
	require.NotNil(t, path)
	assert.NotContains(t, path, hex.Cube{X: 1, Y: -1, Z: 0})
	assert.Equal(t, 3.0, pathfind.Cost(path, CostFn(g)))
}

func TestTerrainAtDefaults(t *testing.T) {
	t.Parallel()

	g := grid.NewHexagon(1, grid.Options{})
	assert.Equal(t, TerrainPlains, TerrainAt(g, hex.Cube{}))
	assert.Equal(t, TerrainPlains, TerrainAt(g, hex.Cube{X: 9, Y: -9, Z: 0}))
}

func TestTerrainCountsAndNames(t *testing.T) {
	t.Parallel()

	g := Generate(SmallConfig())
	counts := TerrainCounts(g)

	total := 0
	for terrain, n := range counts {
		total += n
		assert.NotEqual(t, "Unknown", TerrainName(terrain))
	}
	assert.Equal(t, g.Len(), total)
}
