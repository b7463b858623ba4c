package astar

import (
	"github.com/katalvlaran/ukpath/core"
	"github.com/katalvlaran/ukpath/pqueue"
)

// searcher encapsulates mutable A* state.
type searcher struct {
	graph  *core.Graph
	h      Heuristic
	opts   Options
	start  string
	end    string
	gScore map[string]float64
	prev   map[string]string
	closed map[string]bool
	open   *pqueue.Queue[string]
}

// Path returns a route from start to end found by A* guided by h, a nil Path
// if end is unreachable, or an error for invalid input.
//
// A nil h is treated as the zero heuristic. When start == end the result is
// {start}.
func Path(g *core.Graph, start, end string, h Heuristic, opts ...Option) (core.Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.Require(start, end); err != nil {
		return nil, err
	}
	if h == nil {
		h = zero{}
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Seed the frontier with start at g = 0
	n := g.LocationCount()
	s := &searcher{
		graph:  g,
		h:      h,
		opts:   o,
		start:  start,
		end:    end,
		gScore: make(map[string]float64, n),
		prev:   make(map[string]string, n),
		closed: make(map[string]bool, n),
		open:   pqueue.New[string](n),
	}
	s.gScore[start] = 0
	s.open.Push(start, h.Estimate(start))

	return s.run()
}

// run pops the lowest-f location until the target is popped or the
// frontier is empty.
func (s *searcher) run() (core.Path, error) {
	for s.open.Len() > 0 {
		u, f, _ := s.open.Pop()
		if s.closed[u] {
			continue
		}
		s.closed[u] = true
		s.opts.OnExpand(u, s.gScore[u], f)
		if u == s.end {
			return s.route(), nil
		}
		if err := s.expand(u); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// expand relaxes every connection of u. The cost carried to a neighbor is the
// cumulative g(u) + w, never the bare connection weight.
func (s *searcher) expand(u string) error {
	edges, err := s.graph.Neighbors(u)
	if err != nil {
		return err
	}
	gu := s.gScore[u]
	for _, e := range edges {
		if s.closed[e.To] {
			continue
		}
		ng := gu + e.Weight
		if old, seen := s.gScore[e.To]; seen && ng >= old {
			continue
		}
		s.gScore[e.To] = ng
		s.prev[e.To] = u
		s.open.Push(e.To, ng+s.h.Estimate(e.To))
	}

	return nil
}

// route walks prev pointers back from end.
func (s *searcher) route() core.Path {
	p := core.Path{s.end}
	for cur := s.end; cur != s.start; {
		cur = s.prev[cur]
		p = append(p, cur)
	}
	p.Reverse()

	return p
}
