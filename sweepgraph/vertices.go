package sweepgraph

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeperr"
)

// intern returns the VertexID for p, creating a new Vertex if no existing
// one shares p's key (§3: "two vertices are considered the same iff their
// keys match").
func (g *Graph) intern(p geomprim.Point, scale int64) VertexID {
	key := PointKey(p, scale)
	if id, ok := g.keyIndex[key]; ok {
		return id
	}
	v := g.newVertex(p, key)
	return v.ID
}

// normalizeOrientation swaps a and b, if necessary, so that b ends up
// clockwise of a as seen from the origin (orient2d(origin,a,b) <= 0),
// per §4.2.
func normalizeOrientation(origin, a, b geomprim.Point) (aOut, bOut geomprim.Point, swapped bool) {
	if geomprim.Orient2D(origin, a, b) > 0 {
		return b, a, true
	}
	return a, b, false
}

// IdentifyVertices interns every raw edge's endpoints into g, normalizes
// each edge's orientation relative to g.Origin, and attaches it to its
// endpoints' CW/CCW adjacency lists (§4.3's identifyVertices, composing
// §4.2's normalizeOrientation/attachToVertices). It fails with
// ErrInvalidGeometry if the origin sits exactly on any endpoint.
func (g *Graph) IdentifyVertices(raw []rawEdge, keyScale int64) error {
	for _, re := range raw {
		if geomprim.Equal(g.Origin, re.A) || geomprim.Equal(g.Origin, re.B) {
			return sweeperr.NewGeometryError("origin coincides with a wall endpoint", g.Origin.X, g.Origin.Y)
		}

		a, b, _ := normalizeOrientation(g.Origin, re.A, re.B)
		aID := g.intern(a, keyScale)
		bID := g.intern(b, keyScale)

		e := g.newEdge(aID, bID, re.WallID, re.Type, re.IsBoundary)
		g.attachToVertices(e)
	}
	return nil
}

// attachToVertices adds e to A's CCW list and B's CW list, per §4.2.
func (g *Graph) attachToVertices(e *Edge) {
	av := g.Vertex(e.A)
	bv := g.Vertex(e.B)
	av.CCWEdges = append(av.CCWEdges, e.ID)
	bv.CWEdges = append(bv.CWEdges, e.ID)
}
