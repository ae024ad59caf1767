package sweepgraph

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
)

// testWall is a minimal sweepconfig.Wall fixture for this package's tests.
type testWall struct {
	id            string
	a, b          geomprim.Point
	restriction   sweepconfig.Restriction
	intersections map[string]geomprim.Point
}

func (w *testWall) ID() string                                  { return w.id }
func (w *testWall) Endpoints() (geomprim.Point, geomprim.Point)  { return w.a, w.b }
func (w *testWall) Intersections() map[string]geomprim.Point     { return w.intersections }
func (w *testWall) RestrictionFor(sweepconfig.SenseType) sweepconfig.Restriction {
	return w.restriction
}

// testBounds is a minimal sweepconfig.BoundsSource fixture.
type testBounds struct {
	tl, tr, br, bl geomprim.Point
}

func (b *testBounds) OuterBounds() (tl, tr, br, bl geomprim.Point) {
	return b.tl, b.tr, b.br, b.bl
}

func (b *testBounds) InnerBounds() (tl, tr, br, bl geomprim.Point) {
	return b.tl, b.tr, b.br, b.bl
}

func squareBounds(minX, minY, maxX, maxY float64) *testBounds {
	return &testBounds{
		tl: geomprim.NewPoint(minX, minY),
		tr: geomprim.NewPoint(maxX, minY),
		br: geomprim.NewPoint(maxX, maxY),
		bl: geomprim.NewPoint(minX, maxY),
	}
}
