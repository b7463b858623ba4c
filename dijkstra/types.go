package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value
	// or NaN, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every connection impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of Path and Tree.
//
// MaxDistance      – locations farther than this from the source are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat connections with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// OnSettle         – called once per location when its distance becomes final,
//
//	in settle order (the source first, with distance 0).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	OnSettle         func(id string, dist float64)

	err error // first invalid option, surfaced by Path/Tree
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no impassable
// connections and a no-op OnSettle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnSettle:         func(string, float64) {},
	}
}

// WithMaxDistance sets a maximum distance. Locations whose shortest
// distance would exceed max are not settled. A negative or NaN max is
// reported as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %g", ErrBadMaxDistance, max)

			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight above which connections are
// considered impassable. A threshold ≤ 0 or NaN is reported as
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: got %g", ErrBadInfThreshold, threshold)

			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle installs fn as the settle hook. A nil fn keeps the default.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
