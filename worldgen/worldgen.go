// Package worldgen builds playable hex grids from layered simplex noise.
// Elevation, moisture, and temperature fields are sampled per hex, a
// terrain class is derived from them, and the terrain drives each cell's
// passability and movement cost.
package worldgen

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexworld/grid"
	"github.com/talgya/hexworld/hex"
	"github.com/talgya/hexworld/pathfind"
)

// TerrainKey is the payload key the generator stores each cell's Terrain
// under.
const TerrainKey = "terrain"

// Terrain classes derived from the noise fields.
type Terrain uint8

const (
	TerrainPlains   Terrain = iota // Open ground, cheapest to cross
	TerrainForest                  // Slows movement
	TerrainHills                   // Slows movement further
	TerrainSwamp                   // Slowest passable ground
	TerrainMountain                // Impassable
	TerrainWater                   // Impassable
)

// Config holds generation parameters.
type Config struct {
	Radius      int        // Hexagon radius of the generated grid
	Seed        int64      // Noise seed (0 = random)
	Layout      hex.Layout // Orientation of the generated grid
	SeaLevel    float64    // Elevation threshold for water (0.0-1.0)
	MountainLvl float64    // Elevation threshold for mountains (0.0-1.0)
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Radius:      22,
		Seed:        0,
		SeaLevel:    0.25,
		MountainLvl: 0.72,
	}
}

// SmallConfig returns a tiny deterministic world for rapid iteration.
func SmallConfig() Config {
	return Config{
		Radius:      5,
		Seed:        42,
		SeaLevel:    0.30,
		MountainLvl: 0.75,
	}
}

// Generate builds a hexagonal grid of cfg.Radius, classifies every cell's
// terrain from the noise fields, and marks water and mountain cells
// impassable. Deterministic for a fixed non-zero seed.
func Generate(cfg Config) grid.Grid {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent noise layers per field.
	elevNoise := opensimplex.NewNormalized(seed)
	moistNoise := opensimplex.NewNormalized(seed + 1)
	tempNoise := opensimplex.NewNormalized(seed + 2)

	g := grid.NewHexagon(cfg.Radius, grid.Options{Layout: cfg.Layout})

	return g.MapCells(func(c grid.Cell) grid.Cell {
		// Sample noise in pixel space so the fields are isotropic.
		x, y := hex.ToPixel(c.Coord, cfg.Layout, 1)

		elev := octaveNoise(elevNoise, x, y, 4, 0.08, 0.5)
		moist := octaveNoise(moistNoise, x, y, 3, 0.06, 0.5)
		temp := octaveNoise(tempNoise, x, y, 3, 0.05, 0.5)

		// Continental shaping: lower elevation toward the rim so the
		// world ends in water rather than a hard edge.
		distFromCenter := math.Sqrt(x*x+y*y) / (float64(cfg.Radius) + 1)
		edgeFalloff := 1.0 - math.Pow(distFromCenter, 3.5)
		if edgeFalloff < 0 {
			edgeFalloff = 0
		}
		elev *= edgeFalloff

		terrain := deriveTerrain(elev, moist, temp, cfg)

		c.Passable = terrain != TerrainWater && terrain != TerrainMountain
		if c.Data == nil {
			c.Data = make(map[string]any, 1)
		}
		c.Data[TerrainKey] = terrain
		return c
	})
}

// deriveTerrain determines the terrain class from the field values.
func deriveTerrain(elev, moist, temp float64, cfg Config) Terrain {
	if elev < cfg.SeaLevel {
		return TerrainWater
	}
	if elev > cfg.MountainLvl {
		return TerrainMountain
	}
	if elev > 0.55 {
		return TerrainHills
	}
	if moist > 0.7 && temp > 0.4 {
		return TerrainSwamp
	}
	if moist > 0.45 {
		return TerrainForest
	}
	return TerrainPlains
}

// moveCosts is the per-terrain step cost entering a cell. Impassable
// terrains never appear on a search frontier, the zero entries are
// placeholders.
var moveCosts = [...]float64{
	TerrainPlains:   1.0,
	TerrainForest:   1.5,
	TerrainHills:    2.0,
	TerrainSwamp:    2.5,
	TerrainMountain: 0,
	TerrainWater:    0,
}

// MoveCost returns the cost of stepping onto the given terrain.
func MoveCost(t Terrain) float64 {
	if int(t) < len(moveCosts) {
		return moveCosts[t]
	}
	return 1.0
}

// CostFn returns a pathfind cost function charging the destination
// cell's terrain cost per step. Cells without terrain data cost 1.
func CostFn(g grid.Grid) pathfind.CostFn {
	return func(_, to hex.Cube) float64 {
		return MoveCost(TerrainAt(g, to))
	}
}

// TerrainAt returns the terrain stored at coord, defaulting to plains
// for cells without terrain data.
func TerrainAt(g grid.Grid, coord hex.Cube) Terrain {
	c, ok := g.Cell(coord)
	if !ok {
		return TerrainPlains
	}
	t, ok := c.Data[TerrainKey].(Terrain)
	if !ok {
		return TerrainPlains
	}
	return t
}

// TerrainCounts returns the terrain class distribution of a grid.
func TerrainCounts(g grid.Grid) map[Terrain]int {
	counts := make(map[Terrain]int)
	g.ForEach(func(c grid.Cell) {
		counts[TerrainAt(g, c.Coord)]++
	})
	return counts
}

// TerrainName returns a human-readable name for a terrain class.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainPlains:
		return "Plains"
	case TerrainForest:
		return "Forest"
	case TerrainHills:
		return "Hills"
	case TerrainSwamp:
		return "Swamp"
	case TerrainMountain:
		return "Mountain"
	case TerrainWater:
		return "Water"
	default:
		return "Unknown"
	}
}
