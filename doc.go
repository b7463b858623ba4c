// Package ukpath finds routes on a small road map of the United Kingdom
// with four classic graph searches, and compares, renders and serves them.
//
// 🚀 What is ukpath?
//
//	A route finder over an immutable, weighted, undirected map:
//		• Map model: 11 cities, 20 road connections, coordinates (core, dataset)
//		• Traversals: depth-first (dfs), breadth-first (bfs)
//		• Shortest paths: Dijkstra (dijkstra), A* with a great-circle heuristic (astar)
//		• Geography: haversine distance, heuristic tables, nearest city (geo)
//		• Outputs: a CLI, a JSON/PNG HTTP API and PNG maps (cmd/ukpath, server, render)
//
// Everything is organized under these packages:
//
//	core/        Graph, Builder, Path and the shared sentinel errors
//	dataset/     the embedded uk.yaml map and a YAML loader for others
//	geo/         Coord, Distance, heuristic Table, Audit, nearest-city Index
//	pqueue/      FIFO-stable min-priority queue used by dijkstra and astar
//	dfs/         first route found, depth first
//	bfs/         fewest connections
//	dijkstra/    minimum weight; also a full shortest-path Tree
//	astar/       minimum weight, heuristic guided
//	pathfinder/  validated queries over all four, Result, Compare
//	render/      PNG maps with the route highlighted
//	server/      gin HTTP API
//	cmd/ukpath   command line (find, compare, locations, nearest, render, serve)
//
// Quick example:
//
//	ds := dataset.MustDefault()
//	e, _ := pathfinder.New(ds.Graph, ds.Coords)
//	res, err := e.Find("Manchester", "Inverness", pathfinder.AStar)
//	if err != nil {
//		// *InvalidQueryError, core.UnknownLocationError, ...
//	}
//	fmt.Println(res.Path, res.Cost)
//	// Manchester -> Carlisle -> Glasgow -> Inverness 390
//
// Every search returns a nil core.Path, not an error, when no route exists.
package ukpath
