package sweepengine

import "github.com/lschoen-keeplanet/voidhorizon-sweep/geomprim"

// Ray is a debug-only record of one switchEdge (or direct-emission) step,
// retained only when the config's Debug option is set, per §9's "debug
// visualization as a feature-flagged side channel that the core API never
// depends on".
type Ray struct {
	Origin geomprim.Point
	Target geomprim.Point
	Points []geomprim.Point
}
