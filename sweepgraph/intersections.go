package sweepgraph

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
)

// side classifies how an intersection vertex sees a crossing edge: as the
// edge's effective clockwise endpoint, its effective counter-clockwise
// endpoint, or both when the edge straddles the origin ray through the
// vertex. It is intentionally unexported — IdentifyIntersections is the
// only place that needs to name it.
type side int

const (
	sideCW side = iota
	sideCCW
	sideBoth
)

// classifySide implements §4.3's three-way test for how vertex v, sitting
// at a wall-wall crossing, relates to edge e (whose real endpoints are at
// positions eaPos and ebPos).
func classifySide(origin, eaPos, ebPos, v geomprim.Point) side {
	if geomprim.Orient2D(origin, ebPos, v) < 0 {
		return sideCW
	}
	if geomprim.Orient2D(origin, eaPos, v) > 0 {
		return sideCCW
	}
	return sideBoth
}

// attachAt attaches e to vertex v's adjacency per side, in addition to e's
// original attachment to its own A/B endpoints. This is how an intersection
// point becomes an extra toggle point for e in the active-edge-set walk,
// without splitting e into two edges.
func (g *Graph) attachAt(v *Vertex, e *Edge, s side) {
	switch s {
	case sideCW:
		v.CWEdges = append(v.CWEdges, e.ID)
	case sideCCW:
		v.CCWEdges = append(v.CCWEdges, e.ID)
	case sideBoth:
		v.CWEdges = append(v.CWEdges, e.ID)
		v.CCWEdges = append(v.CCWEdges, e.ID)
	}
}

type wallPairKey struct{ a, b string }

func canonicalPair(a, b string) wallPairKey {
	if a <= b {
		return wallPairKey{a, b}
	}
	return wallPairKey{b, a}
}

// IdentifyIntersections registers a graph vertex for every wall-wall
// crossing reported between two walls that both participate in this sweep
// (§4.3's identifyIntersections). Each crossing is processed at most once,
// even though it is reachable from both walls' Intersections() maps.
func (g *Graph) IdentifyIntersections(walls []sweepconfig.Wall, sense sweepconfig.SenseType, keyScale int64) error {
	edgeByWall := make(map[string]EdgeID, len(walls))
	for _, e := range g.edges {
		if e.WallID != "" {
			edgeByWall[e.WallID] = e.ID
		}
	}

	processed := make(map[wallPairKey]struct{})

	for _, w := range walls {
		if !w.RestrictionFor(sense).Blocks() {
			continue
		}
		eid, ok := edgeByWall[w.ID()]
		if !ok {
			continue
		}

		for otherID, pt := range w.Intersections() {
			otherEID, ok := edgeByWall[otherID]
			if !ok {
				continue // other wall does not participate in this sweep
			}
			pair := canonicalPair(w.ID(), otherID)
			if _, done := processed[pair]; done {
				continue
			}
			processed[pair] = struct{}{}

			if !geomprim.Finite(pt) {
				continue
			}

			vID := g.intern(pt, keyScale)
			v := g.Vertex(vID)
			if v.IntersectionCoordinates == nil {
				p := pt
				v.IntersectionCoordinates = &p
			}

			g.attachPair(v, eid, otherEID)
		}
	}

	return nil
}

// attachPair classifies and attaches both crossing edges to intersection
// vertex v.
func (g *Graph) attachPair(v *Vertex, e1, e2 EdgeID) {
	for _, eid := range [2]EdgeID{e1, e2} {
		e := g.Edge(eid)
		av := g.Vertex(e.A)
		bv := g.Vertex(e.B)
		s := classifySide(g.Origin, av.Pos, bv.Pos, v.SortKey())
		g.attachAt(v, e, s)
	}
}
