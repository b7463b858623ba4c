package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/ukpath/astar"
	"github.com/katalvlaran/ukpath/bfs"
	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/dfs"
	"github.com/katalvlaran/ukpath/dijkstra"
	"github.com/katalvlaran/ukpath/geo"
)

// Result is the outcome of one search.
type Result struct {
	Algorithm Algorithm `json:"algorithm"`
	Start     string    `json:"start"`
	End       string    `json:"end"`
	Path      core.Path `json:"path"`
	Cost      float64   `json:"cost"`  // summed weights of Path, 0 when not found
	Found     bool      `json:"found"` // false is the "no route" outcome
	Expanded  int       `json:"expanded"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithTrace installs fn to observe every location a search expands, in
// expansion order. A nil fn disables tracing.
func WithTrace(fn func(algo Algorithm, id string)) Option {
	return func(e *Engine) {
		e.trace = fn
	}
}

// Engine runs validated queries against one graph.
type Engine struct {
	graph  *core.Graph
	coords geo.Coords
	trace  func(Algorithm, string)
}

// New returns an Engine over g. coords feeds the A* heuristic; a location
// without a coordinate only weakens the heuristic, but an end without one
// makes A* fail with geo.ErrNoCoordinate.
func New(g *core.Graph, coords geo.Coords, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{graph: g, coords: coords}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Graph returns the graph the Engine searches.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Coords returns the coordinate table of the Engine.
func (e *Engine) Coords() geo.Coords { return e.coords }

// Resolve maps user input to a canonical location name (see core.Graph.Resolve).
func (e *Engine) Resolve(name string) (string, error) { return e.graph.Resolve(name) }

// Find runs algo from start to end.
//
// Errors, checked in this order: *InvalidQueryError (start == end),
// core.UnknownLocationError, ErrUnknownAlgorithm, geo.ErrNoCoordinate (A*
// only).
func (e *Engine) Find(start, end string, algo Algorithm) (*Result, error) {
	if err := e.validate(start, end); err != nil {
		return nil, err
	}
	if !algo.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	return e.run(start, end, algo)
}

// Compare runs every algorithm on the same query, in Algorithms() order.
func (e *Engine) Compare(start, end string) ([]*Result, error) {
	if err := e.validate(start, end); err != nil {
		return nil, err
	}
	out := make([]*Result, 0, len(Algorithms()))
	for _, algo := range Algorithms() {
		r, err := e.run(start, end, algo)
		if err != nil {
			return nil, fmt.Errorf("pathfinder: %s: %w", algo, err)
		}
		out = append(out, r)
	}

	return out, nil
}

func (e *Engine) validate(start, end string) error {
	if start == end {
		return &InvalidQueryError{Location: start}
	}

	return e.graph.Require(start, end)
}

// run dispatches to the algorithm package, counting expansions through its hook.
func (e *Engine) run(start, end string, algo Algorithm) (*Result, error) {
	res := &Result{Algorithm: algo, Start: start, End: end}
	visit := func(id string) {
		res.Expanded++
		if e.trace != nil {
			e.trace(algo, id)
		}
	}

	var (
		p   core.Path
		err error
	)
	switch algo {
	case DFS:
		p, err = dfs.Path(e.graph, start, end, dfs.WithOnVisit(visit))
	case BFS:
		p, err = bfs.Path(e.graph, start, end,
			bfs.WithOnDequeue(func(id string, _ int) { visit(id) }))
	case Dijkstra:
		p, err = dijkstra.Path(e.graph, start, end,
			dijkstra.WithOnSettle(func(id string, _ float64) { visit(id) }))
	case AStar:
		var h geo.Table
		if h, err = geo.NewTable(e.coords, end); err != nil {
			return nil, err
		}
		p, err = astar.Path(e.graph, start, end, h,
			astar.WithOnExpand(func(id string, _, _ float64) { visit(id) }))
	}
	if err != nil {
		return nil, err
	}
	if !p.Found() {
		return res, nil
	}

	cost, err := e.graph.PathWeight(p)
	if err != nil {
		return nil, err
	}
	res.Path, res.Cost, res.Found = p, cost, true

	return res, nil
}
