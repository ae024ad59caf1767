// Package voidhorizonsweep is a 2D radial visibility/illumination polygon
// engine for virtual-tabletop scenes.
//
// Given a point source inside a planar environment populated by
// line-segment walls carrying per-sense restrictions, it computes the
// polygon of points reachable from the source along unobstructed rays —
// the mask used to drive vision, light, or sound propagation.
//
// The pipeline, leaves first:
//
//	geomprim/      orientation, intersection, and distance primitives
//	sweepconfig/   per-invocation configuration and sense/restriction enums
//	sweepgraph/    vertex/edge arena, coincident-endpoint folding, intersections
//	sweepsort/     clockwise vertex ordering around the origin
//	sweepengine/   the radial sweep itself: active-edge set + switchEdge
//	boundaryclip/  post-sweep clipping against circle/rectangle/polygon bounds
//	collisionquery/ single-ray collision queries, independent of the sweep
//	visibility/    the public facade: Compute(origin, config, walls, bounds)
//
// Most callers only need visibility.Compute; the other packages are
// exported so a caller that only needs, say, a single-ray query can use
// collisionquery directly without building a vertex graph.
//
//	go get github.com/lschoen-keeplanet/voidhorizon-sweep
package voidhorizonsweep
