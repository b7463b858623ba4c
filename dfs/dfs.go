// File: dfs.go
// Role: Explicit-stack depth-first route search.

package dfs

import (
	"github.com/katalvlaran/ukpath/core"
)

// frame is one level of the explicit DFS stack: the location being expanded,
// its edges, and the index of the next edge to try.
type frame struct {
	id    string
	edges []core.Edge
	next  int
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	end     string
	visited map[string]bool
	stack   []frame
}

// Path returns the first route from start to end found by depth-first search,
// a nil Path if end is unreachable, or an error for invalid input.
//
// When start == end the result is the single-location path {start}.
func Path(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := g.Require(start, end); err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Prepare walker sized to the graph
	n := g.LocationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		end:     end,
		visited: make(map[string]bool, n),
		stack:   make([]frame, 0, n),
	}

	return w.run(start)
}

// run drives the frame stack until end is entered or every reachable
// location has been exhausted.
func (w *walker) run(start string) (core.Path, error) {
	if err := w.enter(start); err != nil {
		return nil, err
	}
	if start == w.end {
		return core.Path{start}, nil
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// all edges tried: backtrack
		if top.next >= len(top.edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		nid := top.edges[top.next].To
		top.next++

		if w.visited[nid] {
			continue
		}
		if err := w.enter(nid); err != nil {
			return nil, err
		}
		if nid == w.end {
			return w.route(), nil
		}
	}

	return nil, nil
}

// enter marks id visited, fires the hook and pushes its frame.
func (w *walker) enter(id string) error {
	w.visited[id] = true
	w.opts.OnVisit(id)

	edges, err := w.graph.Neighbors(id)
	if err != nil {
		return err
	}
	w.stack = append(w.stack, frame{id: id, edges: edges})

	return nil
}

// route reads the current stack bottom-up; the stack always holds the path
// from start to the most recently entered location.
func (w *walker) route() core.Path {
	p := make(core.Path, len(w.stack))
	for i, f := range w.stack {
		p[i] = f.id
	}

	return p
}
