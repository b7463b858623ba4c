package astar_test

import (
	"testing"

	"github.com/katalvlaran/ukpath/astar"
	"github.com/katalvlaran/ukpath/dataset"
	"github.com/katalvlaran/ukpath/geo"
)

// BenchmarkPath_UK measures one heuristic-guided query, table build included.
func BenchmarkPath_UK(b *testing.B) {
	ds := dataset.MustDefault()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := geo.NewTable(ds.Coords, "Inverness")
		_, _ = astar.Path(ds.Graph, "Manchester", "Inverness", h)
	}
}
