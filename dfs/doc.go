// Package dfs finds a route between two locations of a core.Graph by
// depth-first search.
//
// What
//
//   - Explores neighbors in the graph's insertion order, going as deep as
//     possible before backtracking.
//   - Keeps one visited set for the whole search: a location reached once is
//     never entered again, even from another branch.
//   - Returns the FIRST complete route found. It is a valid simple path, but
//     neither the fewest hops nor the lowest cost.
//   - Uses an explicit stack of frames instead of recursion, so depth is
//     bounded by the number of locations and never by the goroutine stack.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and the search
//	consumes them in that order, so the same graph always yields the same path.
//
// Complexity (V = |locations|, E = |connections|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set and the frame stack.
//
// Usage
//
//	path, err := dfs.Path(g, "Manchester", "Inverness")
//	if err != nil {
//		// ErrGraphNil or core.UnknownLocationError
//	}
//	if !path.Found() {
//		// no route
//	}
//
// Options
//
//   - WithOnVisit(fn): called with each location the moment it is entered.
//
// Errors
//
//   - ErrGraphNil               if g is nil.
//   - core.UnknownLocationError if start or end is not a location of g.
//
// A missing route is not an error: Path returns a nil core.Path and a nil error.
package dfs
