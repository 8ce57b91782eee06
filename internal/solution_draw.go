package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the plot so points on the circle don't touch the border
const dbgDrawPadding = 40

// Largest width or height of a plot, in pixels
const dbgMaxPlotSize = 4096

// Plot of a solution, seen face on. The points are projected into the plane of
// the first three of them, where the circle through them is a true circle. For
// four points on a sphere, the circle drawn is the sphere's section by that
// plane. If the first three points are collinear there is no such plane, and
// the top (XY) view is used instead.
type SolutionPlot struct {
	Points []Point
	Center Point
	Scale  float64 // Pixels per unit
}

// Project p into 2D plot coordinates.
type projection struct {
	origin, u, v, normal Point
}

func newProjection(points []Point) projection {
	p := projection{
		origin: points[0],
		u:      Point{1, 0, 0},
		v:      Point{0, 1, 0},
		normal: Point{0, 0, 1},
	}
	if len(points) < 3 {
		return p
	}
	e1 := points[1].Sub(points[0])
	n := e1.Cross(points[2].Sub(points[0]))
	if e1.Len() < Tolerance || n.Len() < Tolerance {
		return p
	}
	p.u = e1.Normalize()
	p.normal = n.Normalize()
	p.v = p.normal.Cross(p.u)
	return p
}

func (p projection) project(q Point) (x, y float64) {
	d := q.Sub(p.origin)
	return d.Dot(p.u), d.Dot(p.v)
}

// Radius of the circle to draw: the sphere's section by the projection plane.
func (plot *SolutionPlot) circleRadius(p projection) float64 {
	r := Distance(plot.Center, plot.Points[0])
	h := plot.Center.Sub(p.origin).Dot(p.normal)
	return math.Sqrt(math.Max(r*r-h*h, 0))
}

// Render the plot to a PNG file.
func (plot *SolutionPlot) SavePNG(path string) error {
	if len(plot.Points) == 0 {
		return errors.New("nothing to plot")
	}
	scale := plot.Scale
	if scale <= 0 {
		scale = 50
	}

	proj := newProjection(plot.Points)
	cx, cy := proj.project(plot.Center)
	radius := plot.circleRadius(proj)

	// Bounds cover the points and the whole circle
	minX, minY := cx-radius, cy-radius
	maxX, maxY := cx+radius, cy+radius
	for _, q := range plot.Points {
		x, y := proj.project(q)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}

	spanX, spanY := maxX-minX, maxY-minY
	if math.IsNaN(spanX+spanY) || math.IsInf(spanX+spanY, 0) {
		return errors.New("plot bounds are not finite")
	}
	// Nearly collinear points put the center very far away. Zoom out rather
	// than allocate a canvas the size of the circle.
	if span := math.Max(spanX, spanY); scale*span > dbgMaxPlotSize-dbgDrawPadding*2 {
		scale = (dbgMaxPlotSize - dbgDrawPadding*2) / span
	}

	width := int(scale*spanX) + dbgDrawPadding*2
	height := int(scale*spanY) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale for them
	c.SetLineWidth(2 / scale)
	c.DrawCircle(cx, cy, radius)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, q := range plot.Points {
		x, y := proj.project(q)
		c.DrawLine(cx, cy, x, y)
	}
	c.SetRGBA(1, 1, 1, 0.3)
	c.Stroke()

	for _, q := range plot.Points {
		x, y := proj.project(q)
		c.DrawCircle(x, y, 4/scale)
	}
	c.SetRGB(0, 1, 0)
	c.Fill()

	c.DrawCircle(cx, cy, 5/scale)
	c.SetRGB(1, 0, 0)
	c.Fill()

	return errors.Wrapf(c.SavePNG(path), "saving plot to %s", path)
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
