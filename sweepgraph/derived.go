package sweepgraph

// allLimited reports whether every edge id in ids is limited. An empty list
// reports false — a vertex with no edges on a side is neither limiting nor
// blocking on it.
func (g *Graph) allLimited(ids []EdgeID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !g.Edge(id).IsLimited {
			return false
		}
	}
	return true
}

// IsLimitingCW reports whether v's clockwise side is made entirely of
// limited edges: passing it once marks the approach as limited rather than
// blocking it outright (§3).
func (g *Graph) IsLimitingCW(v *Vertex) bool { return g.allLimited(v.CWEdges) }

// IsLimitingCCW is IsLimitingCW for the counter-clockwise side.
func (g *Graph) IsLimitingCCW(v *Vertex) bool { return g.allLimited(v.CCWEdges) }

// IsBlockingCW reports whether v's clockwise side contains at least one
// non-limited edge, which blocks sight outright from that side.
func (g *Graph) IsBlockingCW(v *Vertex) bool {
	return len(v.CWEdges) > 0 && !g.allLimited(v.CWEdges)
}

// IsBlockingCCW is IsBlockingCW for the counter-clockwise side.
func (g *Graph) IsBlockingCCW(v *Vertex) bool {
	return len(v.CCWEdges) > 0 && !g.allLimited(v.CCWEdges)
}

// IsLimited reports whether every edge incident to v, on either side, is
// limited (§3). For an intersection vertex attached to only one side, a
// single limited edge is therefore enough to report true — see DESIGN.md
// for why this literal reading of the spec's "all incident edges" was kept
// rather than guessed away.
func (g *Graph) IsLimited(v *Vertex) bool {
	all := make([]EdgeID, 0, len(v.CWEdges)+len(v.CCWEdges))
	all = append(all, v.CWEdges...)
	all = append(all, v.CCWEdges...)
	return g.allLimited(all)
}
