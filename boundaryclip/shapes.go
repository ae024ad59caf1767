package boundaryclip

import (
	"math"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"seehuhn.de/go/geom/rect"
)

// Shape is a boundary region a swept polygon can be clipped against. The
// interface is sealed: segments is unexported, so Circle, Rectangle, and
// Polygon (below) are the only implementations — the same closed-variant
// technique the engine spec's design notes recommend for SweepPoint, applied
// here to keep boundary shapes an exhaustive switch rather than an open one.
type Shape interface {
	// segments returns the shape's boundary as a closed, clockwise polygon
	// (first and last points not duplicated). density controls how finely
	// curved shapes are approximated; straight-edged shapes ignore it.
	segments(density int) []geomprim.Point
}

// Circle is a boundary shape centered at Center with the given Radius,
// approximated by a regular polygon of `density` segments when clipped.
type Circle struct {
	Center geomprim.Point
	Radius float64
}

func (c Circle) segments(density int) []geomprim.Point {
	if density < 3 {
		density = 3
	}
	pts := make([]geomprim.Point, density)
	for i := 0; i < density; i++ {
		theta := 2 * math.Pi * float64(i) / float64(density)
		pts[i] = geomprim.Point{
			X: c.Center.X + c.Radius*math.Cos(theta),
			Y: c.Center.Y + c.Radius*math.Sin(theta),
		}
	}
	return pts
}

// Rectangle is an axis-aligned boundary shape backed by seehuhn.de/go/geom's
// rect.Rect (the same rectangle type the example pack's rasterizer uses for
// its device-space clip bound), expressed in lower-left/upper-right corners.
type Rectangle struct {
	Bounds rect.Rect
}

// NewRectangle builds a Rectangle from two opposite corners, normalizing
// them into the LLx/LLy/URx/URy form rect.Rect expects.
func NewRectangle(a, b geomprim.Point) Rectangle {
	llx, urx := math.Min(a.X, b.X), math.Max(a.X, b.X)
	lly, ury := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rectangle{Bounds: rect.Rect{LLx: llx, LLy: lly, URx: urx, URy: ury}}
}

func (r Rectangle) segments(int) []geomprim.Point {
	// Clockwise in screen coordinates (y increasing downward): top-left,
	// top-right, bottom-right, bottom-left.
	return []geomprim.Point{
		{X: r.Bounds.LLx, Y: r.Bounds.LLy},
		{X: r.Bounds.URx, Y: r.Bounds.LLy},
		{X: r.Bounds.URx, Y: r.Bounds.URy},
		{X: r.Bounds.LLx, Y: r.Bounds.URy},
	}
}

// Polygon is an arbitrary closed boundary shape given as a clockwise vertex
// list (first and last points not duplicated).
type Polygon struct {
	Points []geomprim.Point
}

func (p Polygon) segments(int) []geomprim.Point {
	return p.Points
}
