// File: types.go
// Role: Sentinel errors and the Graph/Edge data types.
// Errors:
//   - ErrEmptyLocation    - location name is the empty string.
//   - ErrUnknownLocation  - referenced location is not part of the graph.
//   - ErrBadWeight        - weight is zero, negative, NaN or infinite.
//   - ErrLoopNotAllowed   - connection from a location to itself.
//   - ErrWeightMismatch   - the same pair was connected twice with different weights.
//   - ErrBuilderFinished  - Builder used after Build.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLocation indicates that a location name is empty.
	ErrEmptyLocation = errors.New("core: location name is empty")

	// ErrUnknownLocation indicates an operation referenced a location absent from the graph.
	// Match it with errors.Is; the concrete value is an UnknownLocationError.
	ErrUnknownLocation = errors.New("core: unknown location")

	// ErrBadWeight indicates a weight that is not a finite positive number.
	ErrBadWeight = errors.New("core: weight must be finite and positive")

	// ErrLoopNotAllowed indicates a connection from a location to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrWeightMismatch indicates the same pair was connected with two different weights.
	ErrWeightMismatch = errors.New("core: conflicting weights for the same connection")

	// ErrBuilderFinished indicates a Builder was used after Build returned.
	ErrBuilderFinished = errors.New("core: builder already finished")
)

// UnknownLocationError reports the name of a location that is not a key of the graph.
// It satisfies errors.Is(err, ErrUnknownLocation).
type UnknownLocationError struct {
	Name string
}

func (e UnknownLocationError) Error() string {
	return fmt.Sprintf("core: unknown location %q", e.Name)
}

// Is lets errors.Is match UnknownLocationError against ErrUnknownLocation.
func (e UnknownLocationError) Is(target error) bool {
	return target == ErrUnknownLocation
}

// Edge is one direction of an undirected connection: the neighbor reached
// and the positive cost of getting there.
type Edge struct {
	// To is the neighbor location name.
	To string

	// Weight is the travel cost (distance) of the connection.
	Weight float64
}

// Graph is an immutable weighted undirected graph.
//
// order keeps locations in the order they were first declared; adjacency
// keeps, for every location, its edges in the order the connections were
// added. Every algorithm iterates neighbors in that order, which makes all
// results reproducible.
type Graph struct {
	order     []string          // location names, declaration order
	index     map[string]int    // name → position in order
	adjacency map[string][]Edge // name → edges, insertion order
	folded    map[string]string // folded name → canonical name (see Resolve)
	edges     int               // undirected connection count
}
