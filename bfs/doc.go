// Package bfs finds a route with the fewest connections between two
// locations of a core.Graph by breadth-first search.
//
// What
//
//   - Keeps a FIFO queue of partial paths, all starting at the start
//     location, and extends them one connection at a time in strict level order.
//   - A neighbor is appended only if it is not already on the path being
//     extended. The cycle guard is path-local: a location may appear on many
//     queued paths at once.
//   - The target is tested when a path is generated, so the first path ending
//     at the target has the minimum hop count. Weights are ignored.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (a partial path is queued)
//   - OnDequeue (a partial path is taken for extension)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors a MaxDepth hop limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and paths are
//	extended in that order, so among several minimum-hop routes the one whose
//	prefix was queued first wins.
//
// Complexity
//
//	The path-local guard may queue every simple path up to the answer's
//	depth, exponential in the worst case. Road maps of a few dozen
//	locations stay well within that.
//
// Usage
//
//	path, err := bfs.Path(g, "Manchester", "Inverness")
//	if err != nil {
//		// ErrGraphNil, ErrOptionViolation or core.UnknownLocationError
//	}
//
//	path, err = bfs.Path(
//		g, "Manchester", "Inverness",
//		bfs.WithMaxDepth(3),
//		bfs.WithFilterNeighbor(func(curr, nbr string) bool { return nbr != "Carlisle" }),
//		bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//	)
//
// A missing route is not an error: Path returns a nil core.Path and a nil error.
package bfs
