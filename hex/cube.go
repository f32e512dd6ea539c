// Package hex provides cube-coordinate arithmetic for hexagonal grids:
// distances, neighbor directions, interpolation and rounding, and the
// conversions between cube, offset, and pixel space.
//
// A cube coordinate holds three axes with x + y + z = 0. The invariant is
// not enforced; callers are trusted to supply valid coordinates, and only
// Lerp produces transient fractional values that break it (restored by
// Round).
package hex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cube is an integer position on a hex grid in cube coordinates.
type Cube struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Frac is a cube coordinate with float64 axes, used during interpolation.
// It may violate x + y + z = 0 until passed through Round.
type Frac struct {
	X, Y, Z float64
}

// Directions lists the six unit vectors to adjacent hexes. The order is
// fixed and is the canonical neighbor enumeration order everywhere a
// result depends on it.
var Directions = [6]Cube{
	{X: 1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 1},
	{X: 0, Y: -1, Z: 1},
}

// Add returns the componentwise sum c + o.
func (c Cube) Add(o Cube) Cube {
	return Cube{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the componentwise difference c - o.
func (c Cube) Sub(o Cube) Cube {
	return Cube{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Scale returns c with each axis multiplied by k.
func (c Cube) Scale(k int) Cube {
	return Cube{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

// Neighbor returns the adjacent hex in direction i, i in [0, 5].
func (c Cube) Neighbor(i int) Cube {
	return c.Add(Directions[i])
}

// Neighbors returns the six adjacent hex coordinates in direction order.
func (c Cube) Neighbors() [6]Cube {
	var result [6]Cube
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Distance returns the hex distance between a and b: the minimum number
// of single-hex steps between them. Symmetric, zero iff a == b, and
// satisfies the triangle inequality.
func Distance(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	return (dx + dy + dz) / 2
}

// Lerp interpolates each axis independently; t outside {0, 1} generally
// yields a fractional coordinate off the x+y+z=0 plane.
func Lerp(a, b Cube, t float64) Frac {
	return Frac{
		X: float64(a.X) + (float64(b.X)-float64(a.X))*t,
		Y: float64(a.Y) + (float64(b.Y)-float64(a.Y))*t,
		Z: float64(a.Z) + (float64(b.Z)-float64(a.Z))*t,
	}
}

// Round maps a fractional coordinate to the nearest valid cube coordinate.
// Each axis rounds to the nearest integer, then the axis with the strictly
// greatest rounding error is recomputed from the other two to restore
// x + y + z = 0. On ties z is recomputed. The precedence x, then y, then z
// keeps line rasterization deterministic.
func Round(f Frac) Cube {
	rx := math.Round(f.X)
	ry := math.Round(f.Y)
	rz := math.Round(f.Z)

	dx := math.Abs(rx - f.X)
	dy := math.Abs(ry - f.Y)
	dz := math.Abs(rz - f.Z)

	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dx && dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}

	return Cube{X: int(rx), Y: int(ry), Z: int(rz)}
}

// Line returns the hexes crossed by the straight segment from a to b,
// inclusive of both endpoints: Distance(a,b)+1 evenly spaced samples,
// each rounded to a valid coordinate.
func Line(a, b Cube) []Cube {
	n := Distance(a, b)
	result := make([]Cube, 0, n+1)
	for i := 0; i <= n; i++ {
		t := 0.0
		if n > 0 {
			t = float64(i) / float64(n)
		}
		result = append(result, Round(Lerp(a, b, t)))
	}
	return result
}

// Hash returns the canonical string key "x,y,z" for the coordinate.
func (c Cube) Hash() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// Unhash parses a key produced by Hash back into a coordinate.
func Unhash(key string) (Cube, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return Cube{}, fmt.Errorf("unhash %q: want 3 components, got %d", key, len(parts))
	}
	var axes [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Cube{}, fmt.Errorf("unhash %q: %w", key, err)
		}
		axes[i] = v
	}
	return Cube{X: axes[0], Y: axes[1], Z: axes[2]}, nil
}

// String implements fmt.Stringer using the canonical hash form.
func (c Cube) String() string {
	return c.Hash()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
