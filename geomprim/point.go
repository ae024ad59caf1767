package geomprim

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a location in scene-local coordinates. It is an alias for
// vec.Vec2 so values flow directly into seehuhn.de/go/geom code (and
// alongside the boundaryclip package's rect.Rect) without a conversion layer.
type Point = vec.Vec2

// NewPoint constructs a Point from plain coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceSquared returns the squared Euclidean distance between a and b.
// The sweep never needs the true distance, only comparisons between
// distances, so every caller works in squared units to avoid a sqrt.
func DistanceSquared(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Finite reports whether both coordinates of p are finite (not NaN or ±Inf).
func Finite(p Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Equal reports whether a and b are exactly the same coordinates. Vertex
// identity in sweepgraph is by rounded integer key, not by this equality;
// Equal is used only for small local checks (e.g. degenerate edges).
func Equal(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}
