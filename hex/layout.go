package hex

import "math"

// Layout selects the hex orientation, which governs the pixel and offset
// conversion formulas.
type Layout uint8

const (
	Pointy Layout = iota // vertex up
	Flat                 // edge up
)

// LayoutName returns a human-readable name for a layout.
func LayoutName(l Layout) string {
	switch l {
	case Pointy:
		return "pointy"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

// Offset is a 2-component (column, row) position used for array-style
// grid addressing.
type Offset struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

var sqrt3 = math.Sqrt(3)

// ToPixel returns the center of hex c in pixel space for the given
// layout and hex size (center-to-corner radius).
func ToPixel(c Cube, layout Layout, size float64) (px, py float64) {
	q := float64(c.X)
	r := float64(c.Z)
	if layout == Flat {
		px = size * (3.0 / 2.0 * q)
		py = size * (sqrt3/2.0*q + sqrt3*r)
		return px, py
	}
	px = size * (sqrt3*q + sqrt3/2.0*r)
	py = size * (3.0 / 2.0 * r)
	return px, py
}

// FromPixel returns the hex containing the pixel-space point (px, py).
// Inverse of ToPixel up to floating-point tolerance; always concludes
// with Round.
func FromPixel(px, py float64, layout Layout, size float64) Cube {
	var q, r float64
	if layout == Flat {
		q = (2.0 / 3.0 * px) / size
		r = (-1.0/3.0*px + sqrt3/3.0*py) / size
	} else {
		q = (sqrt3/3.0*px - 1.0/3.0*py) / size
		r = (2.0 / 3.0 * py) / size
	}
	return Round(Frac{X: q, Y: -q - r, Z: r})
}

// ToOffset converts a cube coordinate to (column, row) form. Pointy
// layouts use row parity (odd-r), flat layouts column parity (odd-q).
func ToOffset(c Cube, layout Layout) Offset {
	if layout == Flat {
		return Offset{Col: c.X, Row: c.Z + parityHalf(c.X)}
	}
	return Offset{Col: c.X + parityHalf(c.Z), Row: c.Z}
}

// FromOffset converts (column, row) form back to a cube coordinate.
// Exact inverse of ToOffset for all integer inputs.
func FromOffset(o Offset, layout Layout) Cube {
	var x, z int
	if layout == Flat {
		x = o.Col
		z = o.Row - parityHalf(o.Col)
	} else {
		x = o.Col - parityHalf(o.Row)
		z = o.Row
	}
	return Cube{X: x, Y: -x - z, Z: z}
}

// parityHalf is the shared correction term (n - (n & 1)) / 2, a floored
// halving that keeps the offset conversions exactly invertible for
// negative coordinates too.
func parityHalf(n int) int {
	return (n - (n & 1)) / 2
}
