package geom2d

import "math"

// Lines and segments are defined transiently by a pair of points: the
// "line" through p0 and p1 is infinite, the "segment" is the closed
// portion between them.

// IsParallel reports whether the line through p0,p1 and the line
// through p2,p3 point in approximately the same direction, comparing
// their degree angles within ParallelTolerance.
func IsParallel(p0, p1, p2, p3 *Point) bool {
	return Compare(Angle(p0, p1, true), Angle(p2, p3, true), ParallelTolerance)
}

// PointOnLine reports whether p lies on the closed segment from p0 to
// p1, endpoints included. Coincidence with an endpoint is checked
// first with the exact Epsilon test. A segment with extent along only
// one axis is handled by parameterizing that axis and matching the
// fixed coordinate; otherwise the two parametric values must agree
// within CompareTolerance. A degenerate segment contains only its own
// endpoint.
func PointOnLine(p0, p1, p *Point) bool {
	if coincident(p, p0) || coincident(p, p1) {
		return true
	}

	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	switch {
	case math.Abs(dx) < Epsilon && math.Abs(dy) < Epsilon:
		return false
	case math.Abs(dx) < Epsilon:
		t := (p.Y - p0.Y) / dy
		return Compare(p.X, p0.X, CompareTolerance) && t >= 0 && t <= 1
	case math.Abs(dy) < Epsilon:
		t := (p.X - p0.X) / dx
		return Compare(p.Y, p0.Y, CompareTolerance) && t >= 0 && t <= 1
	}

	tx := (p.X - p0.X) / dx
	ty := (p.Y - p0.Y) / dy
	return Compare(tx, ty, CompareTolerance) && tx >= 0 && tx <= 1
}

// IsLeft reports whether p2 is strictly to the left of the directed
// line from p0 to p1. Collinear points are not left.
func IsLeft(p0, p1, p2 *Point) bool {
	return (p1.X-p0.X)*(p2.Y-p0.Y)-(p2.X-p0.X)*(p1.Y-p0.Y) > 0
}

// Project returns the point at signed distance d from p0 along the
// direction from p0 toward p1. Negative d projects backward. If p0 and
// p1 coincide the direction defaults to angle zero, i.e. rightward
// along the x axis.
func Project(p0, p1 *Point, d float64) *Point {
	theta := Angle(p0, p1, false)
	return &Point{
		X: p0.X + d*math.Cos(theta),
		Y: p0.Y + d*math.Sin(theta),
	}
}

// PointToLineDistance returns the perpendicular distance from p to the
// infinite line through p0 and p1, by scalar projection onto the line
// direction. The projection divides by the squared segment length, so
// a degenerate line propagates NaN rather than being guarded.
func PointToLineDistance(p0, p1, p *Point) float64 {
	vx := p1.X - p0.X
	vy := p1.Y - p0.Y
	t := ((p.X-p0.X)*vx + (p.Y-p0.Y)*vy) / (vx*vx + vy*vy)
	return Distance(p, &Point{X: p0.X + t*vx, Y: p0.Y + t*vy})
}

// PointToSegmentDistance returns the distance from p to the closed
// segment from p0 to p1. If the perpendicular foot falls before p0 the
// result is the distance to p0; past p1, the distance to p1; otherwise
// it equals the perpendicular distance to the line. The result is
// never less than PointToLineDistance for the same non-degenerate
// line.
func PointToSegmentDistance(p0, p1, p *Point) float64 {
	vx := p1.X - p0.X
	vy := p1.Y - p0.Y

	c1 := (p.X-p0.X)*vx + (p.Y-p0.Y)*vy
	if c1 <= 0 {
		return Distance(p, p0)
	}
	c2 := vx*vx + vy*vy
	if c2 <= c1 {
		return Distance(p, p1)
	}

	t := c1 / c2
	return Distance(p, &Point{X: p0.X + t*vx, Y: p0.Y + t*vy})
}

// PointSegmentProjection returns the point on the segment from p0 to
// p1 closest to p: the projection of p onto the infinite line, clamped
// to the segment. If the segment is degenerate (squared length below
// 1e-7) the result is p0 itself, not a copy.
func PointSegmentProjection(p0, p1, p *Point) *Point {
	vx := p1.X - p0.X
	vy := p1.Y - p0.Y
	lenSq := vx*vx + vy*vy
	if lenSq < minSegmentLengthSq {
		return p0
	}

	t := ((p.X-p0.X)*vx + (p.Y-p0.Y)*vy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return &Point{X: p0.X + t*vx, Y: p0.Y + t*vy}
}
