// Package geomprim provides the 2D geometric primitives the sweep engine is
// built on: the orientation predicate, segment/line intersection, and
// squared-distance helpers. Every other package in this module (sweepgraph,
// sweepsort, sweepengine, boundaryclip, collisionquery) composes these
// primitives rather than re-deriving them.
//
// Point is an alias for seehuhn.de/go/geom/vec.Vec2, the same coordinate
// type the example pack's rasterizer uses for path and stroke endpoints
// (seehuhn-go-render's raster.go/stroke.go) — reusing it here keeps the
// engine's coordinate representation interoperable with that rendering
// stack instead of inventing a parallel Point type.
//
// Orient2D is the load-bearing predicate: every CW/CCW/collinear decision in
// the vertex graph, the sweep ordering, and the sweep loop itself reduces to
// its sign. At scene-scale magnitudes (coordinates in the tens of thousands)
// naive float64 multiplication can misjudge near-collinear triples, so
// Orient2D uses a filtered evaluation: a fast float64 path guarded by a
// conservative error bound, falling back to exact big.Rat arithmetic only when
// the fast path cannot certify a sign. This is the "adaptive exact
// predicate" the design notes call for, scaled down from the canonical
// Shewchuk construction to the two-term case this engine actually needs.
package geomprim
