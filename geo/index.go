package geo

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// ErrEmptyIndex indicates a nearest-location query on an index with no entries.
var ErrEmptyIndex = errors.New("geo: index is empty")

// candidates is how many planar neighbors are re-ranked by great-circle
// distance. Planar distance in degrees distorts east–west spans at UK
// latitudes, so the true nearest is not always the planar first.
const candidates = 4

// pointTolerance is the side of the degenerate box stored per location.
const pointTolerance = 1e-9

// entry wraps a named coordinate for R-tree storage.
type entry struct {
	name  string
	coord Coord
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.bbox }

// Index answers nearest-location queries over a fixed coordinate table.
// It is read-only after NewIndex and safe for concurrent use.
type Index struct {
	tree *rtreego.Rtree
	size int
}

// NewIndex builds an R-tree over coords, keyed on (lon, lat).
func NewIndex(coords Coords) *Index {
	tree := rtreego.NewTree(2, 2, 8) // 2D, min 2, max 8 entries per node

	// sorted insertion keeps the tree shape reproducible
	names := make([]string, 0, len(coords))
	for name := range coords {
		names = append(names, name)
	}
	sort.Strings(names)

	n := 0
	for _, name := range names {
		c := coords[name]
		bbox, err := rtreego.NewRect(
			rtreego.Point{c.Lon, c.Lat},
			[]float64{pointTolerance, pointTolerance},
		)
		if err != nil {
			continue
		}
		tree.Insert(&entry{name: name, coord: c, bbox: bbox})
		n++
	}

	return &Index{tree: tree, size: n}
}

// Len returns the number of indexed locations.
func (ix *Index) Len() int { return ix.size }

// Nearest returns the location closest to c by great-circle distance, together
// with that distance in miles. Ties resolve to the lexicographically smaller name.
//
// Errors: ErrEmptyIndex.
func (ix *Index) Nearest(c Coord) (string, float64, error) {
	if ix.size == 0 {
		return "", 0, ErrEmptyIndex
	}
	k := candidates
	if k > ix.size {
		k = ix.size
	}

	var (
		best     string
		bestDist float64
	)
	for _, s := range ix.tree.NearestNeighbors(k, rtreego.Point{c.Lon, c.Lat}) {
		e, ok := s.(*entry)
		if !ok {
			continue
		}
		d := Distance(c, e.coord)
		if best == "" || d < bestDist || (d == bestDist && e.name < best) {
			best, bestDist = e.name, d
		}
	}

	return best, bestDist, nil
}
