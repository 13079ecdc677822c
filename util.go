package geom2d

import "math"

const (
	// Epsilon is the exact tolerance for coincidence tests: two
	// coordinates within Epsilon of each other are the same coordinate.
	// It is also the squared-length cutoff below which Reflect treats
	// its mirror line as degenerate.
	Epsilon = 1e-8

	// CompareTolerance is the default relative tolerance for Compare.
	CompareTolerance = 0.001

	// ParallelTolerance is the relative tolerance on line angles used
	// by IsParallel.
	ParallelTolerance = 0.0001

	// minSegmentLengthSq is the squared segment length below which
	// PointSegmentProjection treats the segment as a single point.
	minSegmentLengthSq = 1e-7
)

// Compare reports whether a and b are equal up to the given relative
// tolerance. NaN compares unequal to everything, including itself.
// Exactly equal values always compare equal, so zero-against-zero works
// without dividing. Otherwise the difference is divided by whichever
// value has the larger magnitude, which keeps the quotient stable when
// the two magnitudes are far apart.
func Compare(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	if math.Abs(b) > math.Abs(a) {
		return math.Abs((a-b)/b) <= tol
	}
	return math.Abs((a-b)/a) <= tol
}

// coincident is the exact-epsilon test for two points being the same
// location.
func coincident(a, b *Point) bool {
	return math.Abs(a.X-b.X) < Epsilon && math.Abs(a.Y-b.Y) < Epsilon
}
