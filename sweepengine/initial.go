package sweepengine

import (
	"math"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// initialActiveEdges collects every edge that crosses the ray from the
// graph's origin pointing due west to a far point at distance
// sqrt(maxRadius2), per §4.5's active-edge initialization. Due west is the
// sweep's starting angle (sweepsort.Sort begins there too), so this set is
// exactly what should already be "open" as the sweep begins.
func initialActiveEdges(g *sweepgraph.Graph, maxRadius2 float64) *activeSet {
	active := newActiveSet()
	far := geomprim.NewPoint(g.Origin.X-math.Sqrt(maxRadius2), g.Origin.Y)

	for _, e := range g.Edges() {
		a := g.Vertex(e.A).SortKey()
		b := g.Vertex(e.B).SortKey()
		if geomprim.SegmentsIntersect(g.Origin, far, a, b) {
			active.add(e.ID)
		}
	}

	return active
}
