// Package core provides the immutable road-map Graph that every search in
// ukpath runs over.
//
// The Graph G = (V,E) is:
//
//   - Undirected: every connection a–b is stored as a→b and b→a with the same weight.
//   - Weighted: weights are finite positive float64 costs (miles on the shipped UK map).
//   - Simple: no self-loops, no parallel connections.
//   - Closed: every neighbor is itself a location (no dangling references).
//   - Ordered: Locations() follows declaration order and Neighbors() follows
//     connection insertion order, so every algorithm tie-breaks reproducibly.
//   - Immutable: built once through Builder; only read-only queries are exposed.
//
// Construction:
//
//	g, err := core.NewBuilder().
//		AddEdge("Manchester", "Liverpool", 40).
//		AddEdge("Liverpool", "Holyhead", 90).
//		Build()
//
// AddArc declares one direction only, so a map can fix each location's own
// neighbor order; Build then appends any missing reverse direction to the end
// of the other location's list.
//
// Query methods:
//
//	HasLocation(name) bool                // O(1)
//	Require(names...) error               // O(k)
//	Locations() []string                  // O(V), declaration order
//	Neighbors(name) ([]Edge, error)       // O(d), insertion order
//	Degree(name) (int, error)             // O(1)
//	Weight(a, b) (float64, bool)          // O(d)
//	PathWeight(p) (float64, error)        // O(|p|·d)
//	ValidatePath(p) error                 // O(|p|·d)
//	Resolve(name) (string, error)         // case/accent-insensitive lookup
//	Without(name) (*Graph, error)         // copy with name isolated, O(V+E)
//
// Errors:
//
//	ErrEmptyLocation, ErrUnknownLocation (UnknownLocationError), ErrBadWeight,
//	ErrLoopNotAllowed, ErrWeightMismatch, ErrBuilderFinished, ErrInvalidPath.
package core
