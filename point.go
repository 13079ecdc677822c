// 2D point-cloud geometry: distance metrics, angular relationships,
// line and segment predicates, projection, and reflection of point
// clouds about an arbitrary line.
//
// Every operation is a pure function over Point values. Degenerate
// inputs degrade numerically (NaN, Inf, or a documented fallback value)
// instead of raising errors; callers that care can test the result.
// The package makes no attempt to be robust against float64
// overflow or underflow.
package geom2d

import "fmt"

// Point is a 2D coordinate, or equivalently a vector anchored at the
// origin.
//
// Points are passed by pointer so that degenerate fallbacks can hand
// the caller's own point back unchanged, and so clouds can share
// points without loss of precision. No operation in this package ever
// modifies a point it is given; treat points as immutable once built.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
