// Package sweepconfig defines the sweep engine's configuration surface: the
// sense kind a sweep is computed for, the per-wall restriction it implies,
// and the functional-option Config the rest of the engine is invoked with.
//
// Config follows the same pattern core.GraphOption uses to configure
// core.Graph: a set of ConfigOption values applied left-to-right by
// NewConfig, so option order is a documented, deterministic part of the
// contract rather than an implementation detail.
package sweepconfig
