package geom2d

import "math"

// L2Norm returns the Euclidean distance between p0 and p1. A nil
// argument yields 0 rather than a panic, so callers can feed optional
// points straight through.
func L2Norm(p0, p1 *Point) float64 {
	if p0 == nil || p1 == nil {
		return 0
	}
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// L1Norm returns the Manhattan norm of p treated as a vector from the
// origin.
func L1Norm(p *Point) float64 {
	return math.Abs(p.X) + math.Abs(p.Y)
}

// LInfNorm returns the Chebyshev norm of p treated as a vector from
// the origin.
func LInfNorm(p *Point) float64 {
	return math.Max(math.Abs(p.X), math.Abs(p.Y))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b *Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Dot returns the inner product of a and b as vectors.
func Dot(a, b *Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the scalar magnitude of the 2D cross product of a and
// b as vectors. Positive when b is counterclockwise of a.
func Cross(a, b *Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Angle returns the direction of the vector from p0 to p1, in degrees
// when toDegree is true, radians otherwise. Coincident points yield
// atan2(0, 0) = 0.
func Angle(p0, p1 *Point, toDegree bool) float64 {
	a := math.Atan2(p1.Y-p0.Y, p1.X-p0.X)
	if toDegree {
		a *= 180 / math.Pi
	}
	return a
}

// Ratio returns the distance from p0 to p2 divided by the distance
// from p0 to p1. The division is not guarded: if p0 and p1 coincide
// the result is +Inf, or NaN when p2 also coincides with p0.
func Ratio(p0, p1, p2 *Point) float64 {
	return L2Norm(p0, p2) / L2Norm(p0, p1)
}
