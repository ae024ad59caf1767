package sweepsort

import (
	"sort"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeperr"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeplog"
)

// sector buckets p into one of four quadrants around origin, in the order
// the spec requires: NW=0, NE=1, SE=2, SW=3, so that sorting by (sector,
// within-sector order) starts at due west and proceeds clockwise
// (screen convention: y increases downward).
func sector(origin, p geomprim.Point) int {
	north := p.Y <= origin.Y
	if north {
		if p.X < origin.X {
			return 0 // NW
		}
		return 1 // NE
	}
	if p.X >= origin.X {
		return 2 // SE
	}
	return 3 // SW
}

// Sort returns g's vertices in clockwise order around g.Origin starting
// from due west (§4.4). As a side effect of the comparisons it performs, it
// registers every collinear pair it discovers in each vertex's
// CollinearVertices set — sortVertices is the only place in the spec that
// discovers these pairs, so recording them here (rather than in a second
// pass) avoids a redundant O(V^2) scan. logger may be nil.
func Sort(g *sweepgraph.Graph, logger sweeplog.Logger) []*sweepgraph.Vertex {
	logger = sweeplog.Or(logger)
	verts := append([]*sweepgraph.Vertex(nil), g.Vertices()...)

	sort.SliceStable(verts, func(i, j int) bool {
		return less(g, verts[i], verts[j], logger)
	})

	return verts
}

func less(g *sweepgraph.Graph, a, b *sweepgraph.Vertex, logger sweeplog.Logger) bool {
	origin := g.Origin
	pa := a.SortKey()
	pb := b.SortKey()

	if sa, sb := sector(origin, pa), sector(origin, pb); sa != sb {
		return sa < sb
	}

	switch o := geomprim.Orient2D(origin, pa, pb); {
	case o > 0:
		return true
	case o < 0:
		return false
	}

	// Collinear with the origin: record the pair, then the closer vertex
	// sorts first.
	registerCollinear(a, b)

	da := g.DistanceSquared2(a)
	db := g.DistanceSquared2(b)
	if da != db {
		return da < db
	}

	// Exact numeric tie (§7's NumericTie): resolve deterministically by the
	// smaller integer key rather than leaving sort order to chance.
	logger.Debugf("%v: vertices %d and %d at distance %v, resolving by key", sweeperr.ErrNumericTie, a.ID, b.ID, da)
	return a.Key < b.Key
}

func registerCollinear(a, b *sweepgraph.Vertex) {
	a.CollinearVertices[b.ID] = struct{}{}
	b.CollinearVertices[a.ID] = struct{}{}
}
