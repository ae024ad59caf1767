package sweepengine

import "github.com/lschoen-keeplanet/voidhorizon-sweep/sweepgraph"

// expandCollinearGroup computes the transitive closure of v's
// CollinearVertices relation, excluding v itself, per §4.5's requirement
// that the engine "expand collinearVertices transitively before this step
// (include collinears-of-collinears, excluding v itself)". The relation is
// expected to already be symmetric (sweepsort registers both directions),
// so a breadth-first walk over it is enough to discover the whole group.
func expandCollinearGroup(g *sweepgraph.Graph, v *sweepgraph.Vertex) map[sweepgraph.VertexID]struct{} {
	group := make(map[sweepgraph.VertexID]struct{})
	var queue []sweepgraph.VertexID

	for id := range v.CollinearVertices {
		if id == v.ID {
			continue
		}
		if _, seen := group[id]; !seen {
			group[id] = struct{}{}
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		u := g.Vertex(id)
		for other := range u.CollinearVertices {
			if other == v.ID {
				continue
			}
			if _, seen := group[other]; !seen {
				group[other] = struct{}{}
				queue = append(queue, other)
			}
		}
	}

	return group
}
