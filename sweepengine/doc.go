// Package sweepengine implements §4.5 of the engine spec: the radial sweep
// itself. It walks a sweepsort-ordered vertex sequence, maintains the active
// edge set, classifies each vertex against it, and emits polygon points via
// the switchEdge subroutine — honoring limited/blocking edge semantics and
// internal ray-edge collisions along the way.
//
// The package mirrors core.Graph's arena-by-id style: the active set and
// every candidate built during a sweep step reference sweepgraph.VertexID /
// sweepgraph.EdgeID rather than holding pointers across iterations, and any
// map snapshot that feeds ordering-sensitive output is sorted before use
// (activeSet.snapshot), per the spec's Design Notes.
package sweepengine
