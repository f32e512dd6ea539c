// Package grid provides an immutable hex-grid store with copy-on-write
// mutation, plus the spatial queries (neighbors, ranges, rings,
// reachability, line of sight) built on top of it.
//
// A Grid is a value: every mutator returns a new Grid and leaves the
// receiver untouched, so any Grid a caller holds is a frozen snapshot.
// Cells are keyed by their cube coordinate; the canonical "x,y,z" string
// form (hex.Cube.Hash) remains the stable interchange key.
package grid

import (
	"maps"

	"github.com/talgya/hexworld/hex"
)

// Cell is a single grid position: its coordinate, whether it can be
// traversed, and an opaque payload the core copies but never interprets.
type Cell struct {
	Coord    hex.Cube       `json:"coord"`
	Passable bool           `json:"passable"`
	Data     map[string]any `json:"data,omitempty"`
}

// clone returns a copy of the cell with its own Data map.
func (c Cell) clone() Cell {
	c.Data = maps.Clone(c.Data)
	return c
}

// Grid holds a set of cells in a fixed layout. The zero value is an
// empty pointy-layout grid.
type Grid struct {
	cells  map[hex.Cube]Cell
	layout hex.Layout
}

// Options configures grid construction. The zero value means a pointy
// layout with an empty payload template.
type Options struct {
	Layout hex.Layout
	// DefaultData is the payload template, shallow-copied into every
	// cell so cells never alias the same map.
	DefaultData map[string]any
}

// New builds a grid containing exactly the coordinates enumerated by the
// shape, each passable and carrying a copy of the payload template.
func New(shape Shape, opts Options) Grid {
	cells := make(map[hex.Cube]Cell)
	shape.each(opts.Layout, func(c hex.Cube) {
		cells[c] = Cell{
			Coord:    c,
			Passable: true,
			Data:     maps.Clone(opts.DefaultData),
		}
	})
	return Grid{cells: cells, layout: opts.Layout}
}

// NewRectangle builds a width x height grid addressed in offset rows.
func NewRectangle(width, height int, opts Options) Grid {
	return New(Rectangle{Width: width, Height: height}, opts)
}

// NewHexagon builds a hexagonal grid of the given radius around the
// origin: 1 + 3*r*(r+1) cells.
func NewHexagon(radius int, opts Options) Grid {
	return New(Hexagon{Radius: radius}, opts)
}

// Layout returns the grid's hex orientation.
func (g Grid) Layout() hex.Layout {
	return g.layout
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at coord. The second result is false if the
// coordinate is not part of the grid.
func (g Grid) Cell(coord hex.Cube) (Cell, bool) {
	c, ok := g.cells[coord]
	return c, ok
}

// Has reports whether coord is part of the grid.
func (g Grid) Has(coord hex.Cube) bool {
	_, ok := g.cells[coord]
	return ok
}

// Set returns a grid with the cell stored at coord. The cell's
// coordinate is forced to match the key, and its payload is shallow-
// copied so the stored cell never aliases the caller's map.
func (g Grid) Set(coord hex.Cube, c Cell) Grid {
	c = c.clone()
	c.Coord = coord
	cells := maps.Clone(g.cells)
	if cells == nil {
		cells = make(map[hex.Cube]Cell)
	}
	cells[coord] = c
	g.cells = cells
	return g
}

// Update applies fn to the cell at coord and stores the result. Returns
// the grid unchanged if the coordinate is absent. fn receives a payload
// copy, so mutating it cannot leak into the receiver generation.
func (g Grid) Update(coord hex.Cube, fn func(Cell) Cell) Grid {
	c, ok := g.cells[coord]
	if !ok {
		return g
	}
	return g.Set(coord, fn(c.clone()))
}

// Remove returns a grid without the cell at coord. Returns the grid
// unchanged if the coordinate is absent.
func (g Grid) Remove(coord hex.Cube) Grid {
	if _, ok := g.cells[coord]; !ok {
		return g
	}
	cells := maps.Clone(g.cells)
	delete(cells, coord)
	g.cells = cells
	return g
}

// SetPassable returns a grid with the cell's passability set. No-op for
// absent coordinates.
func (g Grid) SetPassable(coord hex.Cube, passable bool) Grid {
	return g.Update(coord, func(c Cell) Cell {
		c.Passable = passable
		return c
	})
}

// IsPassable reports whether coord exists and can be traversed. Absent
// cells read as not passable.
func (g Grid) IsPassable(coord hex.Cube) bool {
	c, ok := g.cells[coord]
	return ok && c.Passable
}

// Obstacles returns the coordinates of every impassable cell.
func (g Grid) Obstacles() []hex.Cube {
	var result []hex.Cube
	for coord, c := range g.cells {
		if !c.Passable {
			result = append(result, coord)
		}
	}
	return result
}

// MapCells returns a grid with fn applied to every cell. Keys are
// unchanged; each result's coordinate is forced back to its key. As with
// Update, fn receives a payload copy.
func (g Grid) MapCells(fn func(Cell) Cell) Grid {
	cells := make(map[hex.Cube]Cell, len(g.cells))
	for coord, c := range g.cells {
		nc := fn(c.clone())
		nc.Coord = coord
		cells[coord] = nc
	}
	g.cells = cells
	return g
}

// Filter returns the coordinates of every cell satisfying pred.
func (g Grid) Filter(pred func(Cell) bool) []hex.Cube {
	var result []hex.Cube
	for coord, c := range g.cells {
		if pred(c) {
			result = append(result, coord)
		}
	}
	return result
}

// ForEach calls fn for every cell, in map iteration order.
func (g Grid) ForEach(fn func(Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}
