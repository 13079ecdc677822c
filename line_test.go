package geom2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsParallel(t *testing.T) {
	t.Run("identical direction", func(t *testing.T) {
		assert.True(t, IsParallel(Pt(0, 0), Pt(1, 1), Pt(5, 5), Pt(6, 6)))
	})

	t.Run("perpendicular", func(t *testing.T) {
		assert.False(t, IsParallel(Pt(0, 0), Pt(1, 0), Pt(0, 0), Pt(0, 1)))
	})

	t.Run("nearly parallel", func(t *testing.T) {
		assert.True(t, IsParallel(Pt(0, 0), Pt(10, 10), Pt(0, 1), Pt(10, 11.0000001)))
		assert.False(t, IsParallel(Pt(0, 0), Pt(10, 10), Pt(0, 1), Pt(10, 12)))
	})
}

func TestPointOnLine(t *testing.T) {
	p0 := Pt(1, 1)
	p1 := Pt(5, 9)

	t.Run("endpoints are included", func(t *testing.T) {
		assert.True(t, PointOnLine(p0, p1, p0))
		assert.True(t, PointOnLine(p0, p1, p1))
	})

	t.Run("interior point", func(t *testing.T) {
		assert.True(t, PointOnLine(p0, p1, Pt(3, 5)))
	})

	t.Run("off the line", func(t *testing.T) {
		assert.False(t, PointOnLine(p0, p1, Pt(3, 6)))
	})

	t.Run("on the line but outside the segment", func(t *testing.T) {
		assert.False(t, PointOnLine(p0, p1, Pt(7, 13)))
		assert.False(t, PointOnLine(p0, p1, Pt(-1, -3)))
	})

	t.Run("vertical segment", func(t *testing.T) {
		v0 := Pt(2, 0)
		v1 := Pt(2, 10)
		assert.True(t, PointOnLine(v0, v1, Pt(2, 5)))
		assert.False(t, PointOnLine(v0, v1, Pt(3, 5)))
		assert.False(t, PointOnLine(v0, v1, Pt(2, 11)))
	})

	t.Run("horizontal segment", func(t *testing.T) {
		h0 := Pt(0, 3)
		h1 := Pt(10, 3)
		assert.True(t, PointOnLine(h0, h1, Pt(4, 3)))
		assert.False(t, PointOnLine(h0, h1, Pt(4, 4)))
		assert.False(t, PointOnLine(h0, h1, Pt(-1, 3)))
	})

	t.Run("degenerate segment", func(t *testing.T) {
		p := Pt(4, 4)
		assert.True(t, PointOnLine(p, p, Pt(4, 4)))
		assert.False(t, PointOnLine(p, p, Pt(4, 5)))
	})
}

func TestIsLeft(t *testing.T) {
	p0 := Pt(0, 0)
	p1 := Pt(10, 0)

	assert.True(t, IsLeft(p0, p1, Pt(5, 1)))
	assert.False(t, IsLeft(p0, p1, Pt(5, -1)))

	t.Run("collinear is not left", func(t *testing.T) {
		assert.False(t, IsLeft(p0, p1, Pt(5, 0)))
		assert.False(t, IsLeft(p0, p1, Pt(20, 0)))
	})
}

func TestProject(t *testing.T) {
	t.Run("along the axis", func(t *testing.T) {
		got := Project(Pt(1, 1), Pt(9, 1), 3)
		assert.InDelta(t, 4, got.X, testEpsilon)
		assert.InDelta(t, 1, got.Y, testEpsilon)
	})

	t.Run("diagonal", func(t *testing.T) {
		got := Project(Pt(0, 0), Pt(1, 1), math.Sqrt2)
		assert.InDelta(t, 1, got.X, testEpsilon)
		assert.InDelta(t, 1, got.Y, testEpsilon)
	})

	t.Run("negative distance projects backward", func(t *testing.T) {
		got := Project(Pt(0, 0), Pt(0, 1), -2)
		assert.InDelta(t, 0, got.X, testEpsilon)
		assert.InDelta(t, -2, got.Y, testEpsilon)
	})

	t.Run("projected point is at the requested distance", func(t *testing.T) {
		p0 := Pt(3, -2)
		got := Project(p0, Pt(-7, 11), 6.5)
		assert.InDelta(t, 6.5, Distance(p0, got), testEpsilon)
	})

	t.Run("degenerate direction points rightward", func(t *testing.T) {
		p := Pt(2, 3)
		got := Project(p, p, 5)
		assert.InDelta(t, 7, got.X, testEpsilon)
		assert.InDelta(t, 3, got.Y, testEpsilon)
	})
}

func TestPointToLineDistance(t *testing.T) {
	t.Run("horizontal line", func(t *testing.T) {
		d := PointToLineDistance(Pt(0, 5), Pt(10, 5), Pt(3, 9))
		assert.InDelta(t, 4, d, testEpsilon)
	})

	t.Run("distance is to the infinite line", func(t *testing.T) {
		// Perpendicular foot falls far outside the segment
		d := PointToLineDistance(Pt(0, 0), Pt(1, 0), Pt(100, 2))
		assert.InDelta(t, 2, d, testEpsilon)
	})

	t.Run("degenerate line propagates NaN", func(t *testing.T) {
		p := Pt(1, 1)
		assert.True(t, math.IsNaN(PointToLineDistance(p, p, Pt(5, 5))))
	})
}

func TestPointToSegmentDistance(t *testing.T) {
	p0 := Pt(0, 0)
	p1 := Pt(10, 0)

	t.Run("clamps before the start", func(t *testing.T) {
		assert.InDelta(t, 5, PointToSegmentDistance(p0, p1, Pt(-3, 4)), testEpsilon)
	})

	t.Run("clamps past the end", func(t *testing.T) {
		assert.InDelta(t, 5, PointToSegmentDistance(p0, p1, Pt(13, 4)), testEpsilon)
	})

	t.Run("perpendicular in the middle", func(t *testing.T) {
		assert.InDelta(t, 4, PointToSegmentDistance(p0, p1, Pt(5, 4)), testEpsilon)
	})

	t.Run("never less than the line distance", func(t *testing.T) {
		probes := Cloud{
			Pt(-5, 3), Pt(0, 0), Pt(2, -7), Pt(5, 1),
			Pt(10, 10), Pt(15, -2), Pt(100, 0),
		}
		for _, p := range probes {
			lineDist := PointToLineDistance(p0, p1, p)
			segDist := PointToSegmentDistance(p0, p1, p)
			assert.GreaterOrEqual(t, segDist+testEpsilon, lineDist)
		}
	})
}

func TestPointSegmentProjection(t *testing.T) {
	p0 := Pt(0, 0)
	p1 := Pt(10, 0)

	t.Run("interior projection", func(t *testing.T) {
		got := PointSegmentProjection(p0, p1, Pt(4, 7))
		assert.InDelta(t, 4, got.X, testEpsilon)
		assert.InDelta(t, 0, got.Y, testEpsilon)
	})

	t.Run("clamped to the start", func(t *testing.T) {
		got := PointSegmentProjection(p0, p1, Pt(-3, 2))
		assert.InDelta(t, 0, got.X, testEpsilon)
		assert.InDelta(t, 0, got.Y, testEpsilon)
	})

	t.Run("clamped to the end", func(t *testing.T) {
		got := PointSegmentProjection(p0, p1, Pt(14, -2))
		assert.InDelta(t, 10, got.X, testEpsilon)
		assert.InDelta(t, 0, got.Y, testEpsilon)
	})

	t.Run("degenerate segment returns p0 itself", func(t *testing.T) {
		p := Pt(3, 3)
		got := PointSegmentProjection(p, Pt(3+1e-5, 3), Pt(50, 50))
		assert.Same(t, p, got)
	})

	t.Run("arguments are not mutated", func(t *testing.T) {
		a := Pt(1, 2)
		b := Pt(5, 6)
		p := Pt(9, -1)
		PointSegmentProjection(a, b, p)
		assert.Equal(t, Pt(1, 2), a)
		assert.Equal(t, Pt(5, 6), b)
		assert.Equal(t, Pt(9, -1), p)
	})
}
