// Package collisionquery implements §4.7 of the engine spec: a single-ray
// collision query against a wall collection, independent of the sweep — it
// never constructs a sweepgraph.Graph, only walks the parameterized
// segment-segment intersection directly.
package collisionquery
