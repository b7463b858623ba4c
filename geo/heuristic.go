package geo

import (
	"fmt"

	"github.com/katalvlaran/ukpath/core"
)

// Table holds, for one target, the estimated remaining cost from every
// location. It is built per query because it depends on the chosen end.
type Table map[string]float64

// NewTable computes Distance(coords[loc], coords[end]) for every loc in coords.
//
// Errors: an error wrapping ErrNoCoordinate if end has no coordinate.
//
// Complexity: O(len(coords))
func NewTable(coords Coords, end string) (Table, error) {
	target, err := coords.Lookup(end)
	if err != nil {
		return nil, fmt.Errorf("geo: heuristic table: %w", err)
	}
	t := make(Table, len(coords))
	for name, c := range coords {
		t[name] = Distance(c, target)
	}

	return t, nil
}

// Estimate returns the table entry for name, or 0 when the table has none.
// Zero never overestimates, so a partial table keeps A* optimal.
func (t Table) Estimate(name string) float64 {
	return t[name]
}

// Violation describes a connection whose weight is shorter than the
// great-circle distance between its endpoints. Across such a connection the
// heuristic overestimates and A* optimality is no longer guaranteed.
type Violation struct {
	From, To string
	Weight   float64
	Distance float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s–%s weight %.1f < great-circle %.3f", v.From, v.To, v.Weight, v.Distance)
}

// Audit lists every connection of g, once per undirected pair and in graph
// order, whose weight is below the great-circle distance of its endpoints.
// Locations without coordinates are skipped.
func Audit(g *core.Graph, coords Coords) []Violation {
	var out []Violation
	seen := make(map[[2]string]struct{})
	for _, from := range g.Locations() {
		a, ok := coords[from]
		if !ok {
			continue
		}
		nbs, err := g.Neighbors(from)
		if err != nil {
			continue // from comes from g.Locations(), so this cannot fail
		}
		for _, e := range nbs {
			key := [2]string{from, e.To}
			if from > e.To {
				key = [2]string{e.To, from}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			b, ok := coords[e.To]
			if !ok {
				continue
			}
			if d := Distance(a, b); e.Weight < d {
				out = append(out, Violation{From: from, To: e.To, Weight: e.Weight, Distance: d})
			}
		}
	}

	return out
}
