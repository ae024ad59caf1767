package sweepgraph

import (
	"math"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
)

// KeyScale chooses a K large enough that round(x)*K + round(y) cannot
// collide for any two distinct rounded coordinates within [-bound, bound].
// The design notes call for "K exceeds the largest possible coordinate
// under rotation/translation"; four times the padded bound is larger than
// the 2*bound+1 distinct rounded y values, and keeps the key well within
// int64 range for any tabletop-scene-scale bound (tens of thousands of
// units).
func KeyScale(bound float64) int64 {
	b := int64(math.Ceil(math.Abs(bound))) + 1
	return 4 * b
}

// PointKey derives the integer identity key for p: geometrically coincident
// points (after rounding) share this key, which is how VertexGraph folds
// them into a single Vertex (§3).
func PointKey(p geomprim.Point, scale int64) int64 {
	rx := int64(math.Round(p.X))
	ry := int64(math.Round(p.Y))
	return rx*scale + ry
}
