package geom2d

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const (
	drawPadding    = 20
	drawPointSize  = 4
	drawLineWidth  = 2
	drawLineExtent = 10000 // mirror line is infinite; overshoot the canvas
)

// cloudColors cycles per cloud; the first entry matches the original
// cloud, the second its reflection.
var cloudColors = [][3]float64{
	{0, 1, 1},
	{0, 1, 0},
	{1, 0.5, 0},
	{1, 0, 1},
}

// DrawClouds renders the clouds and the mirror line through p0,p1 to a
// PNG at path. Bounds are fit to the clouds and line endpoints, with
// the origin at the bottom left so the image matches the y-up
// convention of the geometry.
func DrawClouds(path string, scale float64, p0, p1 *Point, clouds ...Cloud) error {
	minX := math.Inf(1)
	minY := math.Inf(1)
	maxX := math.Inf(-1)
	maxY := math.Inf(-1)
	expand := func(p *Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, cloud := range clouds {
		for _, p := range cloud {
			expand(p)
		}
	}
	expand(p0)
	expand(p1)
	if math.IsInf(minX, 1) {
		return errors.New("nothing to draw")
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Mirror line, extended well past the canvas in both directions
	if !coincident(p0, p1) {
		a := Project(p0, p1, -drawLineExtent)
		b := Project(p0, p1, drawLineExtent)
		c.SetRGB(0.5, 0.5, 0.5)
		c.SetLineWidth(drawLineWidth / scale)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.Stroke()
	}

	for i, cloud := range clouds {
		rgb := cloudColors[i%len(cloudColors)]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		for _, p := range cloud {
			c.DrawCircle(p.X, p.Y, drawPointSize/scale)
			c.Fill()
		}
	}

	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %q", path)
	}
	return nil
}
