package sweepengine

import (
	"sort"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// Execute runs the radial sweep over sorted (already produced by
// sweepsort.Sort) and returns the resulting polygon points in emission
// order, plus a debug ray per step when debug is true. It holds no state
// beyond what a single call needs (§5: each invocation owns its own active
// set and output).
func Execute(g *sweepgraph.Graph, sorted []*sweepgraph.Vertex, maxRadius2 float64, debug bool) (points []geomprim.Point, rays []Ray) {
	active := initialActiveEdges(g, maxRadius2)
	consumed := make(map[sweepgraph.VertexID]bool, len(sorted))

	for _, v := range sorted {
		if consumed[v.ID] {
			continue
		}

		group := expandCollinearGroup(g, v)
		consumed[v.ID] = true
		members := make([]sweepgraph.VertexID, 0, len(group))
		for id := range group {
			consumed[id] = true
			members = append(members, id)
		}

		// Apply the group's toggles in ascending id order: the order changes
		// which edges stay active, so map iteration order must not leak in.
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		for _, id := range members {
			active.update(g.Vertex(id))
		}
		active.update(v)

		hasCollinear := len(v.CollinearVertices) > 0

		behind := isVertexBehindActiveEdges(g, active, v)
		if behind.isBehind {
			continue
		}

		switch {
		case len(v.CCWEdges) == 0:
			pts := switchEdge(g, active, maxRadius2, v, group)
			points = append(points, pts...)
			if debug {
				rays = append(rays, newRay(g.Origin, v, pts))
			}

		case !hasCollinear && g.IsLimitingCW(v) && g.IsLimitingCCW(v) && !behind.wasLimited:
			// Fully limited notch: v closes it without contributing a point.

		case !g.IsLimitingCW(v) && !g.IsLimitingCCW(v) && len(v.CWEdges) > 0 && len(v.CCWEdges) > 0:
			pt := v.SortKey()
			points = append(points, pt)
			if debug {
				rays = append(rays, newRay(g.Origin, v, []geomprim.Point{pt}))
			}

		default:
			pts := switchEdge(g, active, maxRadius2, v, group)
			points = append(points, pts...)
			if debug {
				rays = append(rays, newRay(g.Origin, v, pts))
			}
		}
	}

	return points, rays
}

func newRay(origin geomprim.Point, v *sweepgraph.Vertex, pts []geomprim.Point) Ray {
	return Ray{Origin: origin, Target: v.SortKey(), Points: pts}
}
