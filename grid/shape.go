package grid

import "github.com/talgya/hexworld/hex"

// Shape enumerates the coordinates a grid is built from. The three
// variants cover offset-addressed rectangles, origin-centered hexagons,
// and arbitrary predicate-carved regions.
type Shape interface {
	each(layout hex.Layout, visit func(hex.Cube))
}

// Rectangle is a width x height region addressed in offset rows and
// columns, converted to cube coordinates per the grid's layout.
type Rectangle struct {
	Width, Height int
}

func (s Rectangle) each(layout hex.Layout, visit func(hex.Cube)) {
	for row := 0; row < s.Height; row++ {
		for col := 0; col < s.Width; col++ {
			visit(hex.FromOffset(hex.Offset{Col: col, Row: row}, layout))
		}
	}
}

// Hexagon is the set of coordinates within Radius of the origin:
// 1 + 3*r*(r+1) cells.
type Hexagon struct {
	Radius int
}

func (s Hexagon) each(_ hex.Layout, visit func(hex.Cube)) {
	r := s.Radius
	for x := -r; x <= r; x++ {
		// y ranges over the band keeping z = -x-y within [-r, r].
		lo, hi := max(-r, -x-r), min(r, -x+r)
		for y := lo; y <= hi; y++ {
			visit(hex.Cube{X: x, Y: y, Z: -x - y})
		}
	}
}

// Bounds is an inclusive x/y bounding box for Custom shapes.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Custom carves a region out of a bounding box: every coordinate with
// x in [MinX, MaxX] and y in [MinY, MaxY] (z derived) for which Keep
// returns true. A nil Keep keeps everything.
type Custom struct {
	Bounds Bounds
	Keep   func(hex.Cube) bool
}

func (s Custom) each(_ hex.Layout, visit func(hex.Cube)) {
	for x := s.Bounds.MinX; x <= s.Bounds.MaxX; x++ {
		for y := s.Bounds.MinY; y <= s.Bounds.MaxY; y++ {
			c := hex.Cube{X: x, Y: y, Z: -x - y}
			if s.Keep == nil || s.Keep(c) {
				visit(c)
			}
		}
	}
}
