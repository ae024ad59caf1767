package sweepgraph

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
)

// VertexID indexes into Graph's vertex arena.
type VertexID int

// EdgeID indexes into Graph's edge arena.
type EdgeID int

// invalidVertexID marks "no vertex" (e.g. a not-yet-interned point).
const invalidVertexID VertexID = -1

// Edge is a candidate sight/light/sound line, normalized so that B is
// clockwise of A as seen from the owning Graph's origin (§4.2).
type Edge struct {
	ID EdgeID
	A  VertexID
	B  VertexID

	// WallID back-references the wall this edge was built from, empty for
	// synthetic boundary edges.
	WallID string

	// Type is this edge's sense restriction.
	Type sweepconfig.Restriction

	// IsLimited is a cached Type.IsLimited(), checked on every sweep step.
	IsLimited bool

	// IsBoundary marks a synthetic canvas-boundary edge rather than one
	// backed by a scene wall.
	IsBoundary bool
}

// Vertex is a graph node: either an interned wall/boundary endpoint or a
// wall-wall intersection point, folded by integer key so coincident
// endpoints share one identity (§3).
type Vertex struct {
	ID  VertexID
	Pos geomprim.Point
	Key int64

	// CWEdges holds edges for which this vertex is the clockwise endpoint
	// (endpoint B under the orientation rule). CCWEdges holds edges for
	// which it is the counter-clockwise endpoint (endpoint A). An edge
	// attached to both sides of an intersection vertex (the straddling
	// case in IdentifyIntersections) appears in both slices; the
	// active-edge-set update in sweepengine relies on that — removing the
	// CCW occurrence and then adding the CW occurrence leaves such an edge
	// active, the "Both" case the design notes call out.
	CWEdges  []EdgeID
	CCWEdges []EdgeID

	// CollinearVertices holds other vertices discovered, during sorting, to
	// lie on the same ray from the origin as this one.
	CollinearVertices map[VertexID]struct{}

	// IntersectionCoordinates holds the exact wall-wall crossing point when
	// this vertex was created by IdentifyIntersections, for sort stability
	// (it is preferred over the rounded Pos during ordering).
	IntersectionCoordinates *geomprim.Point

	d2    float64
	d2Set bool
}

// SortKey returns the coordinate sweepsort should use: the exact
// intersection point when present, otherwise the interned position.
func (v *Vertex) SortKey() geomprim.Point {
	if v.IntersectionCoordinates != nil {
		return *v.IntersectionCoordinates
	}
	return v.Pos
}

// Graph is the arena owning every vertex and edge built for one sweep
// invocation. It is single-shot: callers build a fresh Graph per compute()
// call (§5 — no shared mutable state between invocations).
type Graph struct {
	Origin geomprim.Point

	vertices []*Vertex
	edges    []*Edge
	keyIndex map[int64]VertexID
}

// NewGraph creates an empty Graph rooted at origin.
func NewGraph(origin geomprim.Point) *Graph {
	return &Graph{
		Origin:   origin,
		keyIndex: make(map[int64]VertexID),
	}
}

// Vertex returns the vertex for id.
func (g *Graph) Vertex(id VertexID) *Vertex { return g.vertices[id] }

// Edge returns the edge for id.
func (g *Graph) Edge(id EdgeID) *Edge { return g.edges[id] }

// Vertices returns every vertex in the graph, in allocation (VertexID) order.
func (g *Graph) Vertices() []*Vertex { return g.vertices }

// Edges returns every edge in the graph, in allocation (EdgeID) order.
func (g *Graph) Edges() []*Edge { return g.edges }

// VertexCount returns the number of interned vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// DistanceSquared2 returns the squared distance from the graph's origin to
// v, computed once and cached (§3's "cached squared distance _d2, lazy").
func (g *Graph) DistanceSquared2(v *Vertex) float64 {
	if !v.d2Set {
		v.d2 = geomprim.DistanceSquared(g.Origin, v.SortKey())
		v.d2Set = true
	}
	return v.d2
}

func (g *Graph) newVertex(pos geomprim.Point, key int64) *Vertex {
	v := &Vertex{
		ID:                invalidVertexID,
		Pos:               pos,
		Key:               key,
		CollinearVertices: make(map[VertexID]struct{}),
	}
	v.ID = VertexID(len(g.vertices))
	g.vertices = append(g.vertices, v)
	g.keyIndex[key] = v.ID
	return v
}

func (g *Graph) newEdge(a, b VertexID, wallID string, typ sweepconfig.Restriction, isBoundary bool) *Edge {
	e := &Edge{
		ID:         EdgeID(len(g.edges)),
		A:          a,
		B:          b,
		WallID:     wallID,
		Type:       typ,
		IsLimited:  typ.IsLimited(),
		IsBoundary: isBoundary,
	}
	g.edges = append(g.edges, e)
	return e
}
