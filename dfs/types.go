// File: types.go
// Role: Options and sentinel errors for Path.

package dfs

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of Path.
type Option func(*Options)

// Options holds the configurable hooks of a search.
type Options struct {
	// OnVisit is invoked when a location is entered (pre-order), start included.
	OnVisit func(id string)
}

// DefaultOptions returns Options with a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(string) {},
	}
}

// WithOnVisit installs fn as the pre-order hook. A nil fn keeps the default.
func WithOnVisit(fn func(id string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
