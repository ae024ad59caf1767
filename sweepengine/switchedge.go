package sweepengine

import (
	"github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"
	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// switchEdge implements §4.5's emission subroutine: it walks v's candidate
// list (v, its collinear group, and internal collisions with the rest of
// the active set) outward from the origin, tracking which side — CW or CCW
// — first becomes blocked, and prepends/appends the point that blocked it.
func switchEdge(g *sweepgraph.Graph, active *activeSet, maxRadius2 float64, v *sweepgraph.Vertex, group map[sweepgraph.VertexID]struct{}) []geomprim.Point {
	candidates := buildCandidates(g, active, v, group, maxRadius2)
	firstTrue, lastTrue := trueVertexBounds(candidates)

	var out []geomprim.Point
	blockedCW, blockedCCW := false, false
	limitedCW, limitedCCW := false, false

	for i, c := range candidates {
		// An interior endpoint of a collinear run (every member lies on the
		// same ray from the origin) never terminates a side: the run's
		// outermost members are its only real CW/CCW terminations, so a
		// middle one passes through inertly.
		if !c.isInternal && i != firstTrue && i != lastTrue {
			continue
		}

		var newBlockedCW, newBlockedCCW bool

		if c.isInternal {
			if !blockedCW && !blockedCCW && !c.isLimited {
				return out
			}
			newBlockedCW = blockedCW || !c.isLimited || limitedCW
			newBlockedCCW = blockedCCW || !c.isLimited || limitedCCW
			limitedCW, limitedCCW = true, true
		} else {
			newBlockedCW = blockedCW || (limitedCW && c.isLimitingCW) || c.isBlockingCW
			newBlockedCCW = blockedCCW || (limitedCCW && c.isLimitingCCW) || c.isBlockingCCW
			limitedCW = limitedCW || c.isLimitingCW
			limitedCCW = limitedCCW || c.isLimitingCCW
		}

		if newBlockedCW && !blockedCW {
			out = append([]geomprim.Point{c.pos}, out...)
		}
		if newBlockedCCW && !blockedCCW {
			out = append(out, c.pos)
		}

		blockedCW, blockedCCW = newBlockedCW, newBlockedCCW

		if blockedCW && blockedCCW {
			return out
		}
	}

	return out
}

// trueVertexBounds returns the indices, within the already-sorted candidate
// list, of the nearest and farthest true-vertex (non-internal) candidates —
// the only two collinear-run members eligible to block a side.
func trueVertexBounds(candidates []candidate) (first, last int) {
	first, last = -1, -1
	for i, c := range candidates {
		if c.isInternal {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	return first, last
}
