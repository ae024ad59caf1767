// Package sweepsort implements §4.4 of the engine spec: the deterministic
// clockwise ordering of a sweepgraph.Graph's vertices around its origin,
// starting from due west, with y increasing downward (screen convention).
// It also discovers and records collinear-vertex groups as a side effect of
// the comparison it needs anyway — the same "compute once, reuse" shape
// core.Graph's sorted Vertices()/Edges()/NeighborIDs() accessors use to make
// iteration order a documented guarantee rather than a map-iteration
// accident.
package sweepsort
