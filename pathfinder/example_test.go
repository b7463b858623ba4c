package pathfinder_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/pathfinder"
)

// ExampleEngine_Compare runs all four searches on one query.
func ExampleEngine_Compare() {
	ds := dataset.MustDefault()
	e, _ := pathfinder.New(ds.Graph, ds.Coords)

	results, _ := e.Compare("Manchester", "Inverness")
	for _, r := range results {
		fmt.Printf("%s Path: %s (%.0f miles)\n", r.Algorithm, r.Path, r.Cost)
	}
	// Output:
	// Depth-First Search Path: Manchester -> Carlisle -> Glasgow -> Edinburgh -> Aberdeen -> Inverness (520 miles)
	// Breadth-First Search Path: Manchester -> Carlisle -> Glasgow -> Inverness (390 miles)
	// Dijkstra's Algorithm Path: Manchester -> Carlisle -> Glasgow -> Inverness (390 miles)
	// A* Search Path: Manchester -> Carlisle -> Glasgow -> Inverness (390 miles)
}

// ExampleEngine_Find_sameLocation shows the informational rejection.
func ExampleEngine_Find_sameLocation() {
	ds := dataset.MustDefault()
	e, _ := pathfinder.New(ds.Graph, ds.Coords)

	_, err := e.Find("York", "York", pathfinder.AStar)
	if errors.Is(err, pathfinder.ErrInvalidQuery) {
		fmt.Println(pathfinder.MsgSameLocation)
	}
	// Output:
	// Start and End cities cannot be the same.
}
