package sweepengine

import (
	"sort"

	"github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"
)

// activeSet is the set of edges currently "open" at the sweep's present
// angle. It is rebuilt from scratch for every compute() invocation.
type activeSet struct {
	edges map[sweepgraph.EdgeID]struct{}
}

func newActiveSet() *activeSet {
	return &activeSet{edges: make(map[sweepgraph.EdgeID]struct{})}
}

func (s *activeSet) add(id sweepgraph.EdgeID) { s.edges[id] = struct{}{} }

func (s *activeSet) remove(id sweepgraph.EdgeID) { delete(s.edges, id) }

func (s *activeSet) contains(id sweepgraph.EdgeID) bool {
	_, ok := s.edges[id]
	return ok
}

// snapshot returns every active edge id sorted ascending, so that code
// iterating the active set for ordering-sensitive output never leaks Go's
// unspecified map iteration order into observable results (§9).
func (s *activeSet) snapshot() []sweepgraph.EdgeID {
	ids := make([]sweepgraph.EdgeID, 0, len(s.edges))
	for id := range s.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// update applies v's edge toggles to the active set: every edge incident to
// v's counter-clockwise side is removed, then every edge incident to its
// clockwise side is inserted. Removal precedes insertion so an edge attached
// to both sides of v (the "Both" intersection case) survives the update.
func (s *activeSet) update(v *sweepgraph.Vertex) {
	for _, id := range v.CCWEdges {
		s.remove(id)
	}
	for _, id := range v.CWEdges {
		s.add(id)
	}
}
