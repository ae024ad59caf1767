package sweepconfig

import "github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"

// Wall is the opaque collaborator interface the sweep engine consumes wall
// data through. Scene/grid management, persistence, and the rest of the
// owning application implement this; the engine never constructs a Wall
// itself. Per §6 of the engine spec, walls are treated as an opaque
// iterable: the engine only ever calls these four accessors.
type Wall interface {
	// ID returns a stable identifier, used only to make intersection
	// processing and diagnostics deterministic (never for geometry).
	ID() string
	// Endpoints returns the wall's two endpoints in scene-local coordinates.
	Endpoints() (a, b geomprim.Point)
	// RestrictionFor returns this wall's effect on the given sense.
	RestrictionFor(sense SenseType) Restriction
	// Intersections returns the exact crossing point with every other wall
	// this wall is known to cross, keyed by the other wall's ID. A wall
	// collection is expected to have precomputed these (the spec's
	// "intersectsWith" metadata); the sweep engine never detects new
	// wall-wall crossings itself, only consumes reported ones.
	Intersections() map[string]geomprim.Point
}

// BoundsSource is the opaque collaborator interface for the canvas
// boundary rectangle. A scene provides both an outer and inner rectangle;
// Config.UseInnerBounds selects which one terminates the sweep.
type BoundsSource interface {
	// OuterBounds returns the four corners of the canvas's outer rectangle,
	// in clockwise order starting from the top-left corner.
	OuterBounds() (topLeft, topRight, bottomRight, bottomLeft geomprim.Point)
	// InnerBounds returns the four corners of the canvas's inner
	// (playable) rectangle, in the same order as OuterBounds.
	InnerBounds() (topLeft, topRight, bottomRight, bottomLeft geomprim.Point)
}
