// Package boundaryclip constrains a swept polygon against an ordered list of
// boundary shapes (circle, rectangle, polygon), per §4.6 of the engine spec.
// Each shape is intersected against the running polygon in turn using
// Sutherland-Hodgman clipping, the standard constant-space polygon-vs-convex-
// region algorithm; circles are approximated by a caller-controlled segment
// count before clipping, the only place curved boundaries enter the output.
//
// Sutherland-Hodgman assumes its clip region is convex. Circle and
// Rectangle always are; Polygon is accepted as given and clipped the same
// way, which is exact for convex polygon boundaries; for a concave Polygon
// the result is not in general the true intersection, and no separate
// concave clipping path exists.
package boundaryclip
