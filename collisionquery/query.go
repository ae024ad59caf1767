package collisionquery

import (
	"sort"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepconfig"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// Mode selects which of §4.7's three query shapes to run.
type Mode int

const (
	// ModeAny reports only whether the ray is blocked at all.
	ModeAny Mode = iota
	// ModeAll collects every distinct hit along the ray, nearest first.
	ModeAll
	// ModeClosest returns only the nearest hit, if any.
	ModeClosest
)

// Hit is one wall crossing found along a queried ray.
type Hit struct {
	Point     geomprim.Point
	Distance2 float64
	WallID    string
	Limited   bool
}

// Result holds the outcome of a Query call. Only the field matching the
// requested Mode is meaningful: Blocked for ModeAny, Hits for ModeAll and
// ModeClosest (at most one element for ModeClosest).
type Result struct {
	Blocked bool
	Hits    []Hit
}

// Query runs one of §4.7's three ray-collision modes against walls, the
// single entry point a caller picks a Mode for instead of calling
// Any/All/Closest directly.
func Query(mode Mode, origin, target geomprim.Point, walls []sweepconfig.Wall, sense sweepconfig.SenseType) Result {
	switch mode {
	case ModeAny:
		return Result{Blocked: Any(origin, target, walls, sense)}
	case ModeAll:
		return Result{Hits: All(origin, target, walls, sense)}
	case ModeClosest:
		if hit, ok := Closest(origin, target, walls, sense); ok {
			return Result{Hits: []Hit{hit}}
		}
		return Result{}
	default:
		return Result{}
	}
}

// Any reports whether the ray from origin to target is blocked: true on
// the first non-limited hit, or after two limited hits; false otherwise
// (a single limited wall only marks the ray "limited", it does not block
// it — the same rule the sweep engine's isVertexBehindActiveEdges applies).
func Any(origin, target geomprim.Point, walls []sweepconfig.Wall, sense sweepconfig.SenseType) bool {
	limitedSeen := 0
	for _, w := range walls {
		restriction := w.RestrictionFor(sense)
		if !restriction.Blocks() {
			continue
		}
		a, b := w.Endpoints()
		if _, ok := geomprim.SegmentSegmentIntersect(origin, target, a, b); !ok {
			continue
		}
		if restriction.IsLimited() {
			limitedSeen++
			if limitedSeen >= 2 {
				return true
			}
			continue
		}
		return true
	}
	return false
}

// All collects every distinct hit along the ray from origin to target,
// sorted by squared distance from origin, with a leading limited hit
// dropped (it does not block the ray, so it is not a collision the caller
// needs to react to — only a second hit behind it would be).
func All(origin, target geomprim.Point, walls []sweepconfig.Wall, sense sweepconfig.SenseType) []Hit {
	scale := sweepgraph.KeyScale(maxCoordinate(origin, target))
	seen := make(map[int64]Hit)
	var order []int64

	for _, w := range walls {
		restriction := w.RestrictionFor(sense)
		if !restriction.Blocks() {
			continue
		}
		a, b := w.Endpoints()
		res, ok := geomprim.SegmentSegmentIntersect(origin, target, a, b)
		if !ok {
			continue
		}

		key := sweepgraph.PointKey(res.Point, scale)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = Hit{
			Point:     res.Point,
			Distance2: geomprim.DistanceSquared(origin, res.Point),
			WallID:    w.ID(),
			Limited:   restriction.IsLimited(),
		}
		order = append(order, key)
	}

	hits := make([]Hit, 0, len(order))
	for _, k := range order {
		hits = append(hits, seen[k])
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance2 < hits[j].Distance2 })

	if len(hits) > 0 && hits[0].Limited {
		hits = hits[1:]
	}

	return hits
}

// Closest returns the nearest hit along the ray from origin to target, if
// any.
func Closest(origin, target geomprim.Point, walls []sweepconfig.Wall, sense sweepconfig.SenseType) (Hit, bool) {
	hits := All(origin, target, walls, sense)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

func maxCoordinate(pts ...geomprim.Point) float64 {
	max := 0.0
	for _, p := range pts {
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
