package sweepsort_test

import (
	"testing"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepsort"
)

type fixtureWall struct {
	id          string
	a, b        geomprim.Point
	restriction sweepconfig.Restriction
}

func (w *fixtureWall) ID() string                                 { return w.id }
func (w *fixtureWall) Endpoints() (geomprim.Point, geomprim.Point) { return w.a, w.b }
func (w *fixtureWall) Intersections() map[string]geomprim.Point    { return nil }
func (w *fixtureWall) RestrictionFor(sweepconfig.SenseType) sweepconfig.Restriction {
	return w.restriction
}

type fixtureBounds struct {
	tl, tr, br, bl geomprim.Point
}

func (b *fixtureBounds) OuterBounds() (tl, tr, br, bl geomprim.Point) {
	return b.tl, b.tr, b.br, b.bl
}

func (b *fixtureBounds) InnerBounds() (tl, tr, br, bl geomprim.Point) {
	return b.tl, b.tr, b.br, b.bl
}

func squareBounds(minX, minY, maxX, maxY float64) *fixtureBounds {
	return &fixtureBounds{
		tl: geomprim.NewPoint(minX, minY),
		tr: geomprim.NewPoint(maxX, minY),
		br: geomprim.NewPoint(maxX, maxY),
		bl: geomprim.NewPoint(minX, maxY),
	}
}

func buildGraph(t *testing.T, origin geomprim.Point, walls []sweepconfig.Wall, bounds sweepconfig.BoundsSource) *sweepgraph.Graph {
	t.Helper()
	raw, err := sweepgraph.IdentifyEdges(walls, bounds, sweepconfig.SenseSight, false)
	if err != nil {
		t.Fatalf("IdentifyEdges: %v", err)
	}
	g := sweepgraph.NewGraph(origin)
	if err := g.IdentifyVertices(raw, sweepgraph.KeyScale(2000)); err != nil {
		t.Fatalf("IdentifyVertices: %v", err)
	}
	return g
}

func TestSort_MonotoneQuadrantOrder(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)
	g := buildGraph(t, origin, nil, bounds)

	sorted := sweepsort.Sort(g, nil)
	if len(sorted) != 4 {
		t.Fatalf("expected 4 boundary vertices, got %d", len(sorted))
	}

	// The rectangle's corners relative to origin (500,500), in the sector
	// order NW, NE, SE, SW: (0,0), (1000,0), (1000,1000), (0,1000).
	want := []geomprim.Point{
		geomprim.NewPoint(0, 0),
		geomprim.NewPoint(1000, 0),
		geomprim.NewPoint(1000, 1000),
		geomprim.NewPoint(0, 1000),
	}
	for i, v := range sorted {
		if !geomprim.Equal(v.Pos, want[i]) {
			t.Fatalf("position %d: got %v, want %v", i, v.Pos, want[i])
		}
	}
}

func TestSort_CollinearGroupRegistered(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 450, 2000, 550)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "w1", a: geomprim.NewPoint(600, 500), b: geomprim.NewPoint(700, 500), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "w2", a: geomprim.NewPoint(800, 500), b: geomprim.NewPoint(900, 500), restriction: sweepconfig.RestrictionNormal},
	}
	g := buildGraph(t, origin, walls, bounds)

	sorted := sweepsort.Sort(g, nil)

	any := false
	for _, v := range sorted {
		if len(v.CollinearVertices) > 0 {
			any = true
			break
		}
	}
	if !any {
		t.Fatal("expected at least one vertex to have a registered collinear group")
	}
}

func TestSort_CloserVertexBreaksCollinearTie(t *testing.T) {
	origin := geomprim.NewPoint(0, 0)
	bounds := squareBounds(-10, -10, 2000, 2000)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "near", a: geomprim.NewPoint(100, 0), b: geomprim.NewPoint(100, 1), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "far", a: geomprim.NewPoint(200, 0), b: geomprim.NewPoint(200, 1), restriction: sweepconfig.RestrictionNormal},
	}
	g := buildGraph(t, origin, walls, bounds)

	sorted := sweepsort.Sort(g, nil)

	idx := make(map[geomprim.Point]int)
	for i, v := range sorted {
		idx[v.Pos] = i
	}
	near := geomprim.NewPoint(100, 0)
	far := geomprim.NewPoint(200, 0)
	if idx[near] >= idx[far] {
		t.Fatalf("expected the closer collinear vertex to sort first: near=%d far=%d", idx[near], idx[far])
	}
}
