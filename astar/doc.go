// Package astar implements A* route search on a core.Graph.
//
// What
//
//   - Orders the frontier by f(n) = g(n) + h(n), where g is the true cost of
//     the best known route from start to n and h is a caller-supplied
//     estimate of the remaining cost from n to the target.
//   - Settled locations are never expanded twice.
//   - Returns the route the moment the target is popped from the frontier.
//   - Equal f values are popped in insertion order (see pqueue).
//
// With an admissible heuristic (h never exceeds the true remaining cost) the
// returned route has minimum weight. A nil Heuristic, or one returning 0 for
// unknown locations, degrades the search to Dijkstra's algorithm.
//
// geo.Table satisfies Heuristic with great-circle distances to the target:
//
//	h, err := geo.NewTable(coords, "Inverness")
//	if err != nil {
//		// geo.ErrNoCoordinate
//	}
//	path, err := astar.Path(g, "Manchester", "Inverness", h)
//
// Complexity
//
//   - Time:   O((V + E) log V) with a consistent heuristic.
//   - Memory: O(V + E) for g-scores, predecessors and the lazy frontier.
//
// Errors
//
//   - ErrGraphNil               if g is nil.
//   - core.UnknownLocationError if start or end is not a location of g.
//
// A missing route is not an error: Path returns a nil core.Path and a nil error.
package astar
