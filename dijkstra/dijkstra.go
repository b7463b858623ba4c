package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/pqueue"
)

// Path returns a minimum-weight route from start to end, or a nil Path if
// end is unreachable (or farther than MaxDistance).
//
// The search stops as soon as end is settled; the remaining locations are
// left unexplored. When start == end the result is {start}.
//
// Errors: ErrGraphNil, ErrBadMaxDistance, ErrBadInfThreshold,
// core.UnknownLocationError.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Path(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, err
	}
	if err = g.Require(end); err != nil {
		return nil, err
	}
	r.target = end
	if err = r.process(); err != nil {
		return nil, err
	}

	return r.pathTo(end), nil
}

// Tree computes shortest distances from source to every location of g.
//
// Returns:
//
//   - dist: map from location to minimum distance (math.Inf(1) if unreachable).
//   - prev: prev[v] == u means a shortest route to v arrives from u.
//     The source and unreachable locations have prev[v] == "".
//
// Errors: ErrGraphNil, ErrBadMaxDistance, ErrBadInfThreshold,
// core.UnknownLocationError.
func Tree(g *core.Graph, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, nil, err
	}
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph           // The input graph; read-only within the search.
	options Options               // Thresholds and hooks.
	source  string                // Location the search grows from.
	target  string                // Early-exit location; "" settles everything.
	dist    map[string]float64    // Location → current best distance from source.
	prev    map[string]string     // Location → predecessor on the best route.
	visited map[string]bool       // Tracks if a location's distance is final.
	pq      *pqueue.Queue[string] // Lazy decrease-key min-queue.
}

// newRunner validates input and sets up a runner with dist[source] = 0 queued.
func newRunner(g *core.Graph, source string, opts []Option) (*runner, error) {
	// 1) Validate graph and options
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := g.Require(source); err != nil {
		return nil, err
	}

	// 2) dist[v] = +Inf and prev[v] = "" for every location, in declaration order.
	V := g.LocationCount()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      pqueue.New[string](V),
	}
	for _, v := range g.Locations() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}

	// 3) Distance to the source is zero.
	r.dist[source] = 0
	r.pq.Push(source, 0)

	return r, nil
}

// process repeatedly settles the closest unsettled location and relaxes its
// connections.
//
// Loop termination conditions:
//
//   - The queue becomes empty (all reachable locations settled).
//   - The minimum distance in the queue exceeds MaxDistance.
//   - The target has just been settled.
//
// Equal distances are settled in the order they were queued.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		u, d, _ := r.pq.Pop()

		// 2) Skip stale entries left by lazy decrease-key.
		if r.visited[u] {
			continue
		}

		// 3) Everything left is farther than the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) d is now final.
		r.visited[u] = true
		r.options.OnSettle(u, d)
		if u == r.target {
			return nil
		}

		// 5) Relax all connections leaving u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves dist[v] through u for every unsettled neighbor v. Only a
// strictly shorter route replaces a known one, so the first-found of several
// equal routes is kept.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	du := r.dist[u]
	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold || r.visited[e.To] {
			continue
		}
		if nd := du + e.Weight; nd < r.dist[e.To] {
			r.dist[e.To] = nd
			r.prev[e.To] = u
			r.pq.Push(e.To, nd)
		}
	}

	return nil
}

// pathTo follows prev pointers from end back to the source. It returns nil
// when end was never settled.
func (r *runner) pathTo(end string) core.Path {
	if !r.visited[end] {
		return nil
	}
	p := core.Path{end}
	for cur := end; cur != r.source; {
		cur = r.prev[cur]
		p = append(p, cur)
	}
	p.Reverse()

	return p
}
