package visibility_test

import (
	"errors"
	"testing"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/boundaryclip"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeperr"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/visibility"
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

func TestCompute_EmptyRoomMatchesBoundary(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)
	cfg := sweepconfig.NewConfig()

	res, err := visibility.Compute(origin, cfg, nil, bounds, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	want := []geomprim.Point{
		geomprim.NewPoint(0, 0),
		geomprim.NewPoint(1000, 0),
		geomprim.NewPoint(1000, 1000),
		geomprim.NewPoint(0, 1000),
	}
	if len(res.Points) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(res.Points), res.Points)
	}
	for i, p := range res.Points {
		if !geomprim.Equal(p, want[i]) {
			t.Fatalf("point %d: got %v, want %v", i, p, want[i])
		}
	}
}

func TestCompute_OriginOnWallEndpointIsInvalidGeometry(t *testing.T) {
	origin := geomprim.NewPoint(400, 400)
	bounds := squareBounds(0, 0, 1000, 1000)
	walls := []sweepconfig.Wall{
		&fixtureWall{id: "w1", a: geomprim.NewPoint(400, 400), b: geomprim.NewPoint(400, 600), restriction: sweepconfig.RestrictionNormal},
	}
	cfg := sweepconfig.NewConfig()

	_, err := visibility.Compute(origin, cfg, walls, bounds, nil)
	if err == nil {
		t.Fatal("expected an InvalidGeometry error when the origin sits on a wall endpoint")
	}
}

func TestCompute_EmptyEnvironmentReturnsSentinel(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	point := geomprim.NewPoint(500, 500)
	bounds := squareBounds(point.X, point.Y, point.X, point.Y)
	cfg := sweepconfig.NewConfig()

	res, err := visibility.Compute(origin, cfg, nil, bounds, nil)
	if !errors.Is(err, sweeperr.ErrEmptyEnvironment) {
		t.Fatalf("expected ErrEmptyEnvironment, got %v", err)
	}
	if len(res.Points) != 0 {
		t.Fatalf("expected an empty polygon, got %v", res.Points)
	}
}

func TestCompute_ClipsAgainstBoundaryShape(t *testing.T) {
	origin := geomprim.NewPoint(500, 500)
	bounds := squareBounds(0, 0, 1000, 1000)
	clip := boundaryclip.NewRectangle(geomprim.NewPoint(200, 200), geomprim.NewPoint(800, 800))
	cfg := sweepconfig.NewConfig(sweepconfig.WithBoundaryShapes(clip))

	res, err := visibility.Compute(origin, cfg, nil, bounds, nil)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for _, p := range res.Points {
		if p.X < 200 || p.X > 800 || p.Y < 200 || p.Y > 800 {
			t.Fatalf("point %v falls outside the clip rectangle", p)
		}
	}
}
