// Command hexmap generates a procedural hex world and runs the library's
// queries over it: terrain distribution, reachability from the center,
// visibility, and a sample A* route.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/talgya/hexworld/grid"
	"github.com/talgya/hexworld/hex"
	"github.com/talgya/hexworld/pathfind"
	"github.com/talgya/hexworld/worldgen"
)

func main() {
	radius := flag.Int("radius", 22, "hexagon radius of the generated world")
	seed := flag.Int64("seed", 42, "noise seed (0 = random)")
	flat := flag.Bool("flat", false, "use flat-top orientation instead of pointy")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := worldgen.DefaultConfig()
	cfg.Radius = *radius
	cfg.Seed = *seed
	if *flat {
		cfg.Layout = hex.Flat
	}

	slog.Info("generating world",
		"radius", cfg.Radius,
		"seed", cfg.Seed,
		"layout", hex.LayoutName(cfg.Layout),
	)
	world := worldgen.Generate(cfg)

	counts := worldgen.TerrainCounts(world)
	for t, c := range counts {
		slog.Info("terrain", "type", worldgen.TerrainName(t), "count", c)
	}
	slog.Info("world ready", "cells", world.Len(), "obstacles", len(world.Obstacles()))

	start, ok := nearestPassable(world, hex.Cube{})
	if !ok {
		slog.Error("no passable cells in generated world")
		os.Exit(1)
	}

	reach := world.Reachable(start, cfg.Radius)
	slog.Info("reachability", "from", start, "hops", cfg.Radius, "cells", len(reach))

	visible := world.VisibleCells(start, 8)
	slog.Info("visibility", "from", start, "range", 8, "cells", len(visible))

	end := reach[len(reach)-1]
	path := pathfind.Find(world, start, end, pathfind.Options{
		Cost: worldgen.CostFn(world),
	})
	if path == nil {
		slog.Info("no route", "from", start, "to", end)
		return
	}
	slog.Info("route",
		"from", start,
		"to", end,
		"cells", pathfind.Length(path),
		"cost", fmt.Sprintf("%.1f", pathfind.Cost(path, worldgen.CostFn(world))),
	)
}

// nearestPassable returns the passable cell closest to want, scanning
// the whole grid.
func nearestPassable(g grid.Grid, want hex.Cube) (hex.Cube, bool) {
	best := hex.Cube{}
	bestDist := -1
	g.ForEach(func(c grid.Cell) {
		if !c.Passable {
			return
		}
		d := hex.Distance(want, c.Coord)
		if bestDist < 0 || d < bestDist {
			best = c.Coord
			bestDist = d
		}
	})
	return best, bestDist >= 0
}
