// Package sweeperr defines the error taxonomy shared by the sweep-engine
// subpackages that report errors (sweepgraph, sweepsort, visibility).
//
// Three sentinel conditions are distinguished:
//
//	ErrInvalidGeometry  - zero-length edge, non-finite coordinate, or an origin
//	                      sitting exactly on an edge endpoint. Fatal: the caller
//	                      gets no polygon.
//	ErrEmptyEnvironment - no candidate edges: no participating walls and a
//	                      degenerate canvas boundary.
//	                      Not fatal: the caller gets an empty polygon.
//	ErrNumericTie       - orientation and distance both evaluated to zero
//	                      between two distinct points during the vertex
//	                      sort. Resolved deterministically by
//	                      the caller; logged, never returned to callers that
//	                      don't ask for it.
package sweeperr

import "errors"

// Sentinel errors. Use errors.Is to test for these across package boundaries.
var (
	// ErrInvalidGeometry is returned for degenerate input: coincident edge
	// endpoints, non-finite coordinates, or an origin exactly on a wall endpoint.
	ErrInvalidGeometry = errors.New("sweep: invalid geometry")

	// ErrEmptyEnvironment is returned (as a non-fatal signal, not an abort) when
	// an invocation has no candidate edges (no participating walls and no
	// non-degenerate canvas boundary edge).
	ErrEmptyEnvironment = errors.New("sweep: empty environment")

	// ErrNumericTie marks an orientation/distance tie between distinct points.
	// Callers resolve it deterministically (smaller lexicographic key wins);
	// this sentinel exists so the resolution can be logged and tested.
	ErrNumericTie = errors.New("sweep: numeric tie")
)

// GeometryError wraps ErrInvalidGeometry with the offending coordinates so
// callers can report a useful diagnostic without the core engine depending on
// any particular logging or formatting library.
type GeometryError struct {
	Reason string
	X, Y   float64
}

// Error implements the error interface.
func (e *GeometryError) Error() string {
	return "sweep: invalid geometry: " + e.Reason
}

// Unwrap lets errors.Is(err, ErrInvalidGeometry) succeed for GeometryError values.
func (e *GeometryError) Unwrap() error { return ErrInvalidGeometry }

// NewGeometryError constructs a GeometryError pinpointing the offending point.
func NewGeometryError(reason string, x, y float64) *GeometryError {
	return &GeometryError{Reason: reason, X: x, Y: y}
}
