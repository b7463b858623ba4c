package astar

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
var ErrGraphNil = errors.New("astar: graph is nil")

// Heuristic estimates the remaining cost from a location to the target of
// the current query.
type Heuristic interface {
	Estimate(id string) float64
}

// HeuristicFunc adapts an ordinary function to Heuristic.
type HeuristicFunc func(id string) float64

// Estimate calls f(id).
func (f HeuristicFunc) Estimate(id string) float64 { return f(id) }

// zero is used when Path receives a nil Heuristic.
type zero struct{}

func (zero) Estimate(string) float64 { return 0 }

// Option configures optional behavior of Path.
type Option func(*Options)

// Options holds the configurable hooks of a search.
type Options struct {
	// OnExpand is invoked when a location is popped and expanded, with its
	// cost from start (g) and its priority (f = g + h). The target is
	// reported too, just before Path returns.
	OnExpand func(id string, g, f float64)
}

// DefaultOptions returns Options with a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(string, float64, float64) {},
	}
}

// WithOnExpand installs fn as the expansion hook. A nil fn keeps the default.
func WithOnExpand(fn func(id string, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
