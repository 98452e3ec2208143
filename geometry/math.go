// Package geometry has the small numeric helpers shared by the editor and
// the renderer.
package geometry

import "math"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Dot returns the dot product of (ax, ay) and (bx, by).
func Dot(ax, ay, bx, by float64) float64 {
	return ax*bx + ay*by
}

// Length returns the Euclidean length of (x, y).
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// CellSpan returns the half-open range of cells [first, last) whose centers
// fall inside [min, max) when each cell is size units wide.
func CellSpan(min, max, size float64) (first, last int) {
	first = int(math.Ceil(min/size - 0.5))
	last = int(math.Ceil(max/size - 0.5))
	return first, last
}
