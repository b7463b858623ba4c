package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/dijkstra"
)

// ExamplePath finds the cheapest road route across the UK map.
func ExamplePath() {
	g := dataset.MustDefault().Graph

	p, err := dijkstra.Path(g, "Manchester", "Inverness")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	miles, _ := g.PathWeight(p)
	fmt.Println(p)
	fmt.Println("miles:", miles)
	// Output:
	// Manchester -> Carlisle -> Glasgow -> Inverness
	// miles: 390
}

// ExampleTree prints the distance table from a triangle's corner.
// Complexity: O((V+E) log V) because we push/pop up to E entries and settle each location once.
func ExampleTree() {
	g, _ := core.NewBuilder().
		AddEdge("A", "B", 1).
		AddEdge("B", "C", 2).
		AddEdge("A", "C", 5).
		Build()

	dist, prev, _ := dijkstra.Tree(g, "A")
	for _, v := range g.Locations() {
		fmt.Printf("%s: dist=%g via=%q\n", v, dist[v], prev[v])
	}
	// Output:
	// A: dist=0 via=""
	// B: dist=1 via="A"
	// C: dist=3 via="B"
}
