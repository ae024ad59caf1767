package sweepengine

import (
	"math"
	"sort"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// candidate is one point switchEdge considers while walking outward along
// the ray through v: either a true vertex (v itself or a collinear group
// member) or a synthetic internal collision where the ray crosses some
// other active edge.
type candidate struct {
	pos geomprim.Point
	d2  float64

	isInternal bool

	// Populated for true-vertex candidates.
	isLimitingCW, isLimitingCCW bool
	isBlockingCW, isBlockingCCW bool
	vertexID                    sweepgraph.VertexID

	// Populated for internal-collision candidates.
	isLimited bool
	edgeID    sweepgraph.EdgeID
}

// buildCandidates assembles switchEdge's candidate list for vertex v: v
// itself, every member of its (already-expanded) collinear group, and an
// internal-collision candidate for every active edge not incident to any of
// those vertices, per §4.5's switchEdge step 2.
func buildCandidates(g *sweepgraph.Graph, active *activeSet, v *sweepgraph.Vertex, group map[sweepgraph.VertexID]struct{}, maxRadius2 float64) []candidate {
	members := make([]sweepgraph.VertexID, 0, len(group)+1)
	members = append(members, v.ID)
	for id := range group {
		members = append(members, id)
	}

	incident := make(map[sweepgraph.EdgeID]struct{})
	candidates := make([]candidate, 0, len(members))
	for _, id := range members {
		u := g.Vertex(id)
		for _, eid := range u.CWEdges {
			incident[eid] = struct{}{}
		}
		for _, eid := range u.CCWEdges {
			incident[eid] = struct{}{}
		}
		candidates = append(candidates, candidate{
			pos:           u.SortKey(),
			d2:            g.DistanceSquared2(u),
			isLimitingCW:  g.IsLimitingCW(u),
			isLimitingCCW: g.IsLimitingCCW(u),
			isBlockingCW:  g.IsBlockingCW(u),
			isBlockingCCW: g.IsBlockingCCW(u),
			vertexID:      id,
		})
	}

	origin := g.Origin
	dir := v.SortKey()
	length := math.Sqrt(maxRadius2)
	far := rayPoint(origin, dir, length)

	for _, eid := range active.snapshot() {
		if _, ok := incident[eid]; ok {
			continue
		}
		e := g.Edge(eid)
		a := g.Vertex(e.A).SortKey()
		b := g.Vertex(e.B).SortKey()

		res, ok := geomprim.SegmentSegmentIntersect(origin, far, a, b)
		if !ok {
			continue
		}

		candidates = append(candidates, candidate{
			pos:        res.Point,
			d2:         geomprim.DistanceSquared(origin, res.Point),
			isInternal: true,
			isLimited:  e.IsLimited,
			edgeID:     eid,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].d2 != candidates[j].d2 {
			return candidates[i].d2 < candidates[j].d2
		}
		// Deterministic tie-break: true vertices before internal collisions,
		// then by the underlying id.
		if candidates[i].isInternal != candidates[j].isInternal {
			return !candidates[i].isInternal
		}
		if candidates[i].isInternal {
			return candidates[i].edgeID < candidates[j].edgeID
		}
		return candidates[i].vertexID < candidates[j].vertexID
	})

	return candidates
}

// rayPoint returns the point at distance length from origin, in the
// direction of dir (origin itself if dir coincides with origin).
func rayPoint(origin, dir geomprim.Point, length float64) geomprim.Point {
	dx := dir.X - origin.X
	dy := dir.Y - origin.Y
	norm := math.Hypot(dx, dy)
	if norm == 0 {
		return origin
	}
	scale := length / norm
	return geomprim.NewPoint(origin.X+dx*scale, origin.Y+dy*scale)
}
