package sweepgraph

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeperr"
)

// rawEdge is a candidate edge before its endpoints are interned into a
// Graph (§4.2's fromWall, before normalizeOrientation/attachToVertices run).
type rawEdge struct {
	A, B       geomprim.Point
	WallID     string
	Type       sweepconfig.Restriction
	IsBoundary bool
}

// fromWall builds a rawEdge from a wall's endpoints and its restriction for
// the requested sense, per §4.2. It fails with ErrInvalidGeometry if the
// wall's endpoints coincide or are non-finite.
func fromWall(w sweepconfig.Wall, sense sweepconfig.SenseType) (rawEdge, error) {
	a, b := w.Endpoints()
	if !geomprim.Finite(a) || !geomprim.Finite(b) {
		return rawEdge{}, sweeperr.NewGeometryError("non-finite wall endpoint", a.X, a.Y)
	}
	if geomprim.Equal(a, b) {
		return rawEdge{}, sweeperr.NewGeometryError("zero-length wall", a.X, a.Y)
	}
	return rawEdge{
		A:      a,
		B:      b,
		WallID: w.ID(),
		Type:   w.RestrictionFor(sense),
	}, nil
}

// boundaryRawEdges builds the four synthetic edges for the canvas boundary
// ring selected by useInner. Every boundary edge is RestrictionNormal,
// whatever the requested sense: the boundary always blocks.
func boundaryRawEdges(bounds sweepconfig.BoundsSource, useInner bool) []rawEdge {
	var tl, tr, br, bl geomprim.Point
	if useInner {
		tl, tr, br, bl = bounds.InnerBounds()
	} else {
		tl, tr, br, bl = bounds.OuterBounds()
	}
	corners := [4]geomprim.Point{tl, tr, br, bl}
	edges := make([]rawEdge, 0, 4)
	for i := 0; i < 4; i++ {
		a := corners[i]
		b := corners[(i+1)%4]
		if geomprim.Equal(a, b) {
			continue
		}
		edges = append(edges, rawEdge{A: a, B: b, Type: sweepconfig.RestrictionNormal, IsBoundary: true})
	}
	return edges
}

// IdentifyEdges assembles the candidate edge list for one sweep: every wall
// whose restriction for sense is not RestrictionNone, plus the selected
// canvas boundary ring (§4.3's identifyEdges). Walls with degenerate
// geometry are reported via ErrInvalidGeometry rather than silently
// skipped — a malformed wall is a data-integrity problem the caller must
// see, not one the sweep should paper over.
func IdentifyEdges(walls []sweepconfig.Wall, bounds sweepconfig.BoundsSource, sense sweepconfig.SenseType, useInner bool) ([]rawEdge, error) {
	edges := boundaryRawEdges(bounds, useInner)

	for _, w := range walls {
		restriction := w.RestrictionFor(sense)
		if !restriction.Blocks() {
			continue
		}
		re, err := fromWall(w, sense)
		if err != nil {
			return nil, err
		}
		edges = append(edges, re)
	}

	return edges, nil
}
