// Package sweepgraph builds the vertex/edge graph the sweep engine walks:
// §3 (data model), §4.2 (EdgeModel), and §4.3 (VertexGraph) of the engine
// spec.
//
// Vertices and edges are arena-owned: a Graph holds them in slices indexed
// by VertexID/EdgeID, and every reference between them is an id, never a
// pointer back into the other slice. This is the "arena-owned nodes
// addressed by indices" replacement the design notes call for in place of
// the cyclic vertex<->edge references a garbage-collected scripting
// implementation would use freely; it also means a Graph can be discarded
// in one step (drop the slices) with nothing else to unwind.
//
// The package follows the shape of the example pack's core.Graph: a single
// owning type (Graph) with deterministic, index-based accessors, built up
// incrementally by a sequence of named construction steps
// (IdentifyEdges -> IdentifyVertices -> IdentifyIntersections) rather than
// one monolithic constructor — mirroring how core.NewGraph plus AddVertex/
// AddEdge separate allocation from population.
package sweepgraph
