package grid

import "github.com/talgya/hexworld/hex"

// Neighbors returns the coordinates adjacent to coord that exist in the
// grid, in the fixed direction order of hex.Directions. With passableOnly
// set, impassable neighbors are filtered out as well.
func (g Grid) Neighbors(coord hex.Cube, passableOnly bool) []hex.Cube {
	result := make([]hex.Cube, 0, 6)
	for _, dir := range hex.Directions {
		n := coord.Add(dir)
		c, ok := g.cells[n]
		if !ok {
			continue
		}
		if passableOnly && !c.Passable {
			continue
		}
		result = append(result, n)
	}
	return result
}

// Range returns every existing coordinate within hex distance r of
// center, obstacles ignored. Unordered.
func (g Grid) Range(center hex.Cube, r int) []hex.Cube {
	var result []hex.Cube
	for coord := range g.cells {
		if hex.Distance(center, coord) <= r {
			result = append(result, coord)
		}
	}
	return result
}

// Ring returns every existing coordinate at exactly hex distance r from
// center. Ring(center, 0) is [center] when the center exists.
func (g Grid) Ring(center hex.Cube, r int) []hex.Cube {
	var result []hex.Cube
	for coord := range g.cells {
		if hex.Distance(center, coord) == r {
			result = append(result, coord)
		}
	}
	return result
}

// Spiral returns the center followed by each ring of radius 1..maxRadius
// in increasing-radius order. Within a ring the order is unspecified.
func (g Grid) Spiral(center hex.Cube, maxRadius int) []hex.Cube {
	var result []hex.Cube
	for r := 0; r <= maxRadius; r++ {
		result = append(result, g.Ring(center, r)...)
	}
	return result
}

// Reachable flood-fills outward from start through passable neighbors,
// expanding one hop layer at a time up to maxDistance layers. The result
// is the concatenation of the layers, so start is always first and
// coordinates appear in nondecreasing hop order. Unlike Range, the result
// reflects actual passable connectivity rather than pure distance.
func (g Grid) Reachable(start hex.Cube, maxDistance int) []hex.Cube {
	visited := map[hex.Cube]bool{start: true}
	result := []hex.Cube{start}
	frontier := []hex.Cube{start}

	for d := 1; d <= maxDistance; d++ {
		var next []hex.Cube
		for _, coord := range frontier {
			for _, n := range g.Neighbors(coord, true) {
				if visited[n] {
					continue
				}
				visited[n] = true
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			break
		}
		result = append(result, next...)
		frontier = next
	}
	return result
}
