package boundaryclip

import "github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"

// DefaultCircleSegments is used when a caller does not specify a segment
// density for Circle boundary shapes.
const DefaultCircleSegments = 64

// Clip intersects subject (the sweep's output polygon) with each shape in
// shapes, in order. An empty shapes list is a documented no-op: Clip
// returns subject unchanged. Each shape is approximated to a polygon via
// its segments method (density controls circle fidelity only) and the
// running polygon is clipped against it with Sutherland-Hodgman.
//
// Clipping a polygon by a boundary that already contains it is also a
// no-op: Sutherland-Hodgman against a superset region returns the original
// vertex sequence (up to the point where it re-enters the clip edges,
// which for a containing convex region is everywhere).
func Clip(subject []geomprim.Point, shapes []Shape, density int) []geomprim.Point {
	if len(shapes) == 0 {
		return subject
	}
	if density <= 0 {
		density = DefaultCircleSegments
	}

	out := subject
	for _, shape := range shapes {
		out = sutherlandHodgman(out, shape.segments(density))
		if len(out) == 0 {
			return out
		}
	}
	return out
}

// sutherlandHodgman clips subject against the convex region bounded by the
// clockwise polygon clip. Degenerate clip polygons (fewer than 3 points)
// leave subject unchanged.
func sutherlandHodgman(subject, clip []geomprim.Point) []geomprim.Point {
	if len(clip) < 3 {
		return subject
	}

	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		edgeA := clip[i]
		edgeB := clip[(i+1)%n]
		input := output
		output = nil

		for j, curr := range input {
			prev := input[(j-1+len(input))%len(input)]
			currInside := insideClipEdge(edgeA, edgeB, curr)
			prevInside := insideClipEdge(edgeA, edgeB, prev)

			if currInside {
				if !prevInside {
					if ipt, ok := geomprim.LineLineIntersect(prev, curr, edgeA, edgeB); ok {
						output = append(output, ipt)
					}
				}
				output = append(output, curr)
			} else if prevInside {
				if ipt, ok := geomprim.LineLineIntersect(prev, curr, edgeA, edgeB); ok {
					output = append(output, ipt)
				}
			}
		}
	}
	return output
}

// insideClipEdge reports whether p lies on the interior side of the
// directed clip edge (a,b). The clip polygon is clockwise in screen
// coordinates (y down), so its interior lies clockwise of each edge,
// i.e. where Orient2D(a, b, p) >= 0 (the same sign sweepsort reads as
// "clockwise" when ordering vertices).
func insideClipEdge(a, b, p geomprim.Point) bool {
	return geomprim.Orient2D(a, b, p) >= 0
}
