package core

import (
	"errors"
	"strings"
)

// ErrInvalidPath indicates a Path that does not follow the graph's connections
// or repeats a location.
var ErrInvalidPath = errors.New("core: invalid path")

// Path is an ordered sequence of distinct locations from start to end
// inclusive, each consecutive pair being a connection of the Graph.
//
// A nil (or empty) Path is the "no route" result of every search.
type Path []string

// Found reports whether p carries a route.
func (p Path) Found() bool { return len(p) > 0 }

// Hops returns the number of connections traversed, 0 for an empty path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Start returns the first location, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}

	return p[0]
}

// End returns the last location, or "" for an empty path.
func (p Path) End() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

// Contains reports whether name lies on the path.
func (p Path) Contains(name string) bool {
	for _, v := range p {
		if v == name {
			return true
		}
	}

	return false
}

// String joins the locations with " -> ".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// Reverse reverses p in place. Used by predecessor-chain reconstruction.
func (p Path) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
