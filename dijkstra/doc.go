// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph.
//
// Overview:
//
//   - Path computes a minimum-weight route between two locations and stops as
//     soon as the target's distance is final.
//   - Tree computes distances and predecessors from one source to every
//     location of the graph.
//   - Both rely on pqueue, a min-priority queue, to always settle the next
//     closest location, with "lazy decrease-key": improved distances are
//     pushed as new entries and stale entries are skipped when popped.
//
// Tie-breaking:
//
//   - Locations at equal distance are settled in the order they were queued
//     (pqueue is FIFO among equal priorities).
//   - Relaxation is strict (<), so of two equal-weight routes the one
//     discovered first is kept.
//
// Together with the insertion-ordered core.Graph, the result is fully
// reproducible.
//
// Key features:
//
//   - MaxDistance: stops exploring beyond a given distance.
//   - InfEdgeThreshold: treats any connection with weight ≥ threshold as impassable.
//   - OnSettle: observes every location the moment its distance becomes final.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each location is settled at most once (V pops that count).
//   - Each relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil:        nil *core.Graph.
//   - ErrBadMaxDistance:  WithMaxDistance given a negative value or NaN.
//   - ErrBadInfThreshold: WithInfEdgeThreshold given a value ≤ 0 or NaN.
//   - core.UnknownLocationError for a start, end or source not in the graph.
//
// Core weights are always finite and positive, so no negative-weight scan is
// needed.
//
// Usage:
//
//	path, err := dijkstra.Path(g, "Manchester", "Inverness")
//
//	dist, prev, err := dijkstra.Tree(g, "Manchester",
//		dijkstra.WithInfEdgeThreshold(150),
//	)
package dijkstra
