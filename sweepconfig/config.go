package sweepconfig

import "github.com/lschoen-keeplanet/voidhorizon-sweep/boundaryclip"

// DefaultMaxRadius2 is used when a caller does not specify MaxRadius2. It
// corresponds to a 100,000-unit ray, comfortably larger than any
// tabletop-scene diameter this engine expects to see.
const DefaultMaxRadius2 = 100_000.0 * 100_000.0

// Config collects every recognized option for a single compute invocation,
// per §6 of the engine spec.
type Config struct {
	sense           SenseType
	useInnerBounds  bool
	boundaryShapes  []boundaryclip.Shape
	maxRadius2      float64
	circleSegments  int
	debug           bool
}

// ConfigOption configures a Config before it is used. Options are applied
// left-to-right by NewConfig, the same deterministic-application guarantee
// core.GraphOption makes for core.Graph.
type ConfigOption func(*Config)

// NewConfig builds a Config from the given options, applied in order, over
// a default baseline (sight sense, outer bounds, no boundary shapes,
// DefaultMaxRadius2, not debug).
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		sense:          SenseSight,
		useInnerBounds: false,
		maxRadius2:     DefaultMaxRadius2,
		circleSegments: boundaryclip.DefaultCircleSegments,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithSense sets which sensory channel the sweep filters walls for.
func WithSense(sense SenseType) ConfigOption {
	return func(c *Config) { c.sense = sense }
}

// WithInnerBounds selects the canvas's inner rectangle as the terminating
// boundary edges, instead of the default outer rectangle.
func WithInnerBounds(useInner bool) ConfigOption {
	return func(c *Config) { c.useInnerBounds = useInner }
}

// WithBoundaryShapes sets the ordered list of post-sweep clipping shapes.
func WithBoundaryShapes(shapes ...boundaryclip.Shape) ConfigOption {
	return func(c *Config) { c.boundaryShapes = shapes }
}

// WithMaxRadius2 sets the squared maximum ray distance used for the
// sweep's far rays and initial active-edge detection.
func WithMaxRadius2(maxRadius2 float64) ConfigOption {
	return func(c *Config) { c.maxRadius2 = maxRadius2 }
}

// WithCircleSegments sets the segment density used to approximate Circle
// boundary shapes during clipping.
func WithCircleSegments(n int) ConfigOption {
	return func(c *Config) { c.circleSegments = n }
}

// WithDebug enables retention of per-ray diagnostic records.
func WithDebug(debug bool) ConfigOption {
	return func(c *Config) { c.debug = debug }
}

// Sense returns the configured sensory channel.
func (c *Config) Sense() SenseType { return c.sense }

// UseInnerBounds reports whether the inner canvas rectangle should
// terminate the sweep instead of the outer one.
func (c *Config) UseInnerBounds() bool { return c.useInnerBounds }

// BoundaryShapes returns the configured post-sweep clipping shapes.
func (c *Config) BoundaryShapes() []boundaryclip.Shape { return c.boundaryShapes }

// MaxRadius2 returns the configured squared maximum ray distance.
func (c *Config) MaxRadius2() float64 { return c.maxRadius2 }

// CircleSegments returns the configured circle approximation density.
func (c *Config) CircleSegments() int { return c.circleSegments }

// Debug reports whether per-ray diagnostics should be retained.
func (c *Config) Debug() bool { return c.debug }
