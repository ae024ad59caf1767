package sweepengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepengine"
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

type fixtureBounds struct{ tl, tr, br, bl geomprim.Point }

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

const testMaxRadius2 = 100_000.0 * 100_000.0

func run(t *testing.T, origin geomprim.Point, walls []sweepconfig.Wall, bounds sweepconfig.BoundsSource) []geomprim.Point {
	t.Helper()
	raw, err := sweepgraph.IdentifyEdges(walls, bounds, sweepconfig.SenseSight, false)
	require.NoError(t, err)

	g := sweepgraph.NewGraph(origin)
	scale := sweepgraph.KeyScale(2000)
	require.NoError(t, g.IdentifyVertices(raw, scale))
	require.NoError(t, g.IdentifyIntersections(walls, sweepconfig.SenseSight, scale))

	sorted := sweepsort.Sort(g, nil)
	points, _ := sweepengine.Execute(g, sorted, testMaxRadius2, false)
	return points
}

func containsPoint(points []geomprim.Point, want geomprim.Point) bool {
	for _, p := range points {
		if geomprim.Equal(p, want) {
			return true
		}
	}
	return false
}

// S1 — empty room: the polygon is exactly the boundary rectangle, in
// clockwise order starting from the top-left corner.
func TestExecute_EmptyRoom(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)

	points := run(t, origin, nil, bounds)

	require.Equal(t, []geomprim.Point{
		geomprim.NewPoint(0, 0),
		geomprim.NewPoint(1000, 0),
		geomprim.NewPoint(1000, 1000),
		geomprim.NewPoint(0, 1000),
	}, points)
}

// S6 — a closed box fully surrounding the origin yields exactly its own
// four corners; no boundary-rectangle vertex should appear.
func TestExecute_ClosedInteriorBox(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "n", a: geomprim.NewPoint(400, 400), b: geomprim.NewPoint(600, 400), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "e", a: geomprim.NewPoint(600, 400), b: geomprim.NewPoint(600, 600), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "s", a: geomprim.NewPoint(600, 600), b: geomprim.NewPoint(400, 600), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "w", a: geomprim.NewPoint(400, 600), b: geomprim.NewPoint(400, 400), restriction: sweepconfig.RestrictionNormal},
	}

	points := run(t, origin, walls, bounds)

	require.Len(t, points, 4)
	for _, corner := range []geomprim.Point{
		geomprim.NewPoint(400, 400),
		geomprim.NewPoint(600, 400),
		geomprim.NewPoint(600, 600),
		geomprim.NewPoint(400, 600),
	} {
		require.True(t, containsPoint(points, corner), "expected corner %v in polygon", corner)
	}
	for _, outer := range []geomprim.Point{
		geomprim.NewPoint(0, 0),
		geomprim.NewPoint(1000, 0),
		geomprim.NewPoint(1000, 1000),
		geomprim.NewPoint(0, 1000),
	} {
		require.False(t, containsPoint(points, outer), "did not expect boundary-rectangle vertex %v in polygon", outer)
	}
}

// S5 — two collinear segments east of the origin: switchEdge must emit the
// outermost terminations only, never the inner endpoints.
func TestExecute_CollinearEndpointsEmitOutermostOnly(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 2000, 1000)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "w1", a: geomprim.NewPoint(600, 500), b: geomprim.NewPoint(700, 500), restriction: sweepconfig.RestrictionNormal},
		&fixtureWall{id: "w2", a: geomprim.NewPoint(800, 500), b: geomprim.NewPoint(900, 500), restriction: sweepconfig.RestrictionNormal},
	}

	points := run(t, origin, walls, bounds)

	require.True(t, containsPoint(points, geomprim.NewPoint(600, 500)), "expected the near outermost termination")
	require.True(t, containsPoint(points, geomprim.NewPoint(900, 500)), "expected the far outermost termination")
	require.False(t, containsPoint(points, geomprim.NewPoint(700, 500)), "did not expect an inner endpoint")
	require.False(t, containsPoint(points, geomprim.NewPoint(800, 500)), "did not expect an inner endpoint")
}

// Determinism: recomputing with identical inputs yields an identical
// polygon (§8).
func TestExecute_Deterministic(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "w1", a: geomprim.NewPoint(400, 0), b: geomprim.NewPoint(400, 1000), restriction: sweepconfig.RestrictionNormal},
	}

	first := run(t, origin, walls, bounds)
	second := run(t, origin, walls, bounds)

	require.Equal(t, first, second)
}
