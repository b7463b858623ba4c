// Package pathfinder is the single entry point the CLI and the HTTP server
// use to run a search.
//
// An Engine pairs an immutable core.Graph with the coordinate table the A*
// heuristic needs, validates each query and dispatches it to one of the four
// algorithm packages:
//
//	DFS       → dfs.Path        first route found, depth first
//	BFS       → bfs.Path        fewest connections
//	Dijkstra  → dijkstra.Path   minimum weight
//	AStar     → astar.Path      minimum weight, guided by great-circle distance
//
// Query validation, in order:
//
//  1. start == end is rejected with *InvalidQueryError before any search runs.
//  2. start and end must be locations of the graph (core.UnknownLocationError).
//  3. the algorithm must be one of Algorithms() (ErrUnknownAlgorithm).
//
// A search that finds nothing is not an error: Result.Found is false and
// Result.Path is nil.
//
// An Engine holds no mutable state and may be shared between goroutines.
package pathfinder
