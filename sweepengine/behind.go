package sweepengine

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// behindResult is the outcome of isVertexBehindActiveEdges.
type behindResult struct {
	isBehind   bool
	wasLimited bool
}

// isIncident reports whether eid is attached to v on either side — true
// both for v's own wall/boundary endpoints and for edges it was attached to
// as a wall-wall intersection vertex (§4.3's attachAt).
func isIncident(v *sweepgraph.Vertex, eid sweepgraph.EdgeID) bool {
	for _, id := range v.CWEdges {
		if id == eid {
			return true
		}
	}
	for _, id := range v.CCWEdges {
		if id == eid {
			return true
		}
	}
	return false
}

// isVertexBehindActiveEdges implements §4.5's classification step. It scans
// the active set for an edge that hides v from the origin: a non-limited
// edge closer than v hides it outright, while a single limited edge merely
// marks the approach as "already limited" so a second occluder is needed.
func isVertexBehindActiveEdges(g *sweepgraph.Graph, active *activeSet, v *sweepgraph.Vertex) behindResult {
	wasLimited := false
	target := v.SortKey()

	for _, eid := range active.snapshot() {
		if isIncident(v, eid) {
			continue
		}
		e := g.Edge(eid)
		a := g.Vertex(e.A).SortKey()
		b := g.Vertex(e.B).SortKey()

		if geomprim.Orient2D(a, b, target) > 0 {
			if e.IsLimited && !wasLimited {
				wasLimited = true
				continue
			}
			return behindResult{isBehind: true, wasLimited: wasLimited}
		}
	}

	return behindResult{isBehind: false, wasLimited: wasLimited}
}
