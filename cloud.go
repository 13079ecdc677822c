package geom2d

import "math"

// Cloud is an ordered collection of points treated as one geometric
// dataset. Order only matters for index correspondence: Reflect maps
// input index i to output index i.
type Cloud []*Point

// BottomLeft returns the index of the point with minimum Y, breaking
// ties by minimum X. Assumes a y-up coordinate convention. The cloud
// must be nonempty.
func BottomLeft(points Cloud) int {
	best := 0
	for i := 1; i < len(points); i++ {
		p, q := points[i], points[best]
		if p.Y < q.Y || (p.Y == q.Y && p.X < q.X) {
			best = i
		}
	}
	return best
}

// BottomRight returns the index of the point with minimum Y, breaking
// ties by maximum X. The cloud must be nonempty.
func BottomRight(points Cloud) int {
	best := 0
	for i := 1; i < len(points); i++ {
		p, q := points[i], points[best]
		if p.Y < q.Y || (p.Y == q.Y && p.X > q.X) {
			best = i
		}
	}
	return best
}

// ClosestPointToLine returns the index of the cloud point nearest the
// infinite line through p0 and p1, measured by the magnitude of the
// implicit line equation a·x + b·y + c (an unnormalized signed
// distance, so relative order is preserved without a sqrt). Ties keep
// the lowest index. The cloud must be nonempty.
func ClosestPointToLine(points Cloud, p0, p1 *Point) int {
	a := p0.Y - p1.Y
	b := p1.X - p0.X
	c := p0.X*p1.Y - p1.X*p0.Y

	best := 0
	min := math.Inf(1)
	for i, p := range points {
		d := math.Abs(a*p.X + b*p.Y + c)
		if d < min {
			min = d
			best = i
		}
	}
	return best
}

// Reflect returns a new cloud in which each point is the mirror image
// of the corresponding input point across the infinite line through p0
// and p1. Input points are never modified. If the line is degenerate
// (squared length below Epsilon) there is no mirror axis, and the
// original cloud is returned unchanged as a documented fallback.
//
// The reflection is the closed-form Householder transform about the
// line direction (dx, dy): with d = dx²+dy², the matrix entries are
// a = (dx²−dy²)/d and b = 2·dx·dy/d. Each point is translated so p0 is
// the origin, multiplied through, and translated back. No trig calls.
func Reflect(points Cloud, p0, p1 *Point) Cloud {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	d := dx*dx + dy*dy
	if d < Epsilon {
		return points
	}

	a := (dx*dx - dy*dy) / d
	b := 2 * dx * dy / d

	reflected := make(Cloud, len(points))
	for i, p := range points {
		u := p.X - p0.X
		v := p.Y - p0.Y
		reflected[i] = &Point{
			X: a*u + b*v + p0.X,
			Y: b*u - a*v + p0.Y,
		}
	}
	return reflected
}
