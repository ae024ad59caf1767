package visibility

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/boundaryclip"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepengine"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeperr"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweeplog"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepsort"
)

// Result is one compute() invocation's output, per §6: the final polygon
// points (closed, no duplicated first/last point) plus the per-step debug
// rays, present only when cfg.Debug() is true.
type Result struct {
	Points []geomprim.Point
	Rays   []sweepengine.Ray
}

// Compute runs the full pipeline for one origin/config/wall-collection
// invocation (§2, §5): it builds a fresh vertex graph, orders its vertices,
// sweeps, and clips the result against any configured boundary shapes. It
// owns no state beyond the call — concurrent calls with distinct origins
// share nothing and may run on separate goroutines.
//
// If the environment has no walls and a degenerate (zero-area) boundary, it
// returns a zero Result alongside sweeperr.ErrEmptyEnvironment; callers that
// only care about the polygon can ignore that sentinel with errors.Is, since
// the zero Result is already the correct (empty) answer.
func Compute(origin geomprim.Point, cfg *sweepconfig.Config, walls []sweepconfig.Wall, bounds sweepconfig.BoundsSource, logger sweeplog.Logger) (Result, error) {
	logger = sweeplog.Or(logger)

	raw, err := sweepgraph.IdentifyEdges(walls, bounds, cfg.Sense(), cfg.UseInnerBounds())
	if err != nil {
		return Result{}, err
	}

	keyScale := sweepgraph.KeyScale(boundsMagnitude(bounds))

	g := sweepgraph.NewGraph(origin)
	if err := g.IdentifyVertices(raw, keyScale); err != nil {
		return Result{}, err
	}
	if err := g.IdentifyIntersections(walls, cfg.Sense(), keyScale); err != nil {
		return Result{}, err
	}

	if g.EdgeCount() == 0 {
		logger.Debugf("empty environment: no edges and no boundary to sweep")
		return Result{}, sweeperr.ErrEmptyEnvironment
	}

	sorted := sweepsort.Sort(g, logger)
	points, rays := sweepengine.Execute(g, sorted, cfg.MaxRadius2(), cfg.Debug())

	if shapes := cfg.BoundaryShapes(); len(shapes) > 0 {
		points = boundaryclip.Clip(points, shapes, cfg.CircleSegments())
	}

	return Result{Points: points, Rays: rays}, nil
}

// boundsMagnitude estimates the largest coordinate magnitude the canvas
// bounds reach, used to size the vertex-folding key scale (§3's K).
func boundsMagnitude(bounds sweepconfig.BoundsSource) float64 {
	tl, tr, br, bl := bounds.OuterBounds()
	max := 0.0
	for _, p := range [4]geomprim.Point{tl, tr, br, bl} {
		for _, v := range [2]float64{p.X, p.Y} {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
	}
	return max
}
