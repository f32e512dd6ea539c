package grid

import "github.com/talgya/hexworld/hex"

// HasLineOfSight reports whether every hex on the straight line from a to
// b (endpoints included) exists in the grid and is passable. A missing or
// blocked sample means no line of sight, never an error.
func (g Grid) HasLineOfSight(a, b hex.Cube) bool {
	for _, coord := range hex.Line(a, b) {
		c, ok := g.cells[coord]
		if !ok || !c.Passable {
			return false
		}
	}
	return true
}

// VisibleCells returns the coordinates of every cell within maxRange of
// origin that has an unobstructed line of sight from it. A negative
// maxRange means unbounded. Each candidate recomputes its own line, so
// cost grows with cell count times average line length.
func (g Grid) VisibleCells(origin hex.Cube, maxRange int) []hex.Cube {
	var result []hex.Cube
	for coord := range g.cells {
		if maxRange >= 0 && hex.Distance(origin, coord) > maxRange {
			continue
		}
		if g.HasLineOfSight(origin, coord) {
			result = append(result, coord)
		}
	}
	return result
}
