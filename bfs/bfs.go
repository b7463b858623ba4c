// File: bfs.go
// Role: Level-order route search over a FIFO of partial paths.

package bfs

import (
	"github.com/katalvlaran/ukpath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	end   string
	queue []core.Path
}

// Path returns a route from start to end with the fewest connections, a nil
// Path if end is unreachable (or beyond MaxDepth), or an error for invalid
// input.
//
// When start == end the result is the single-location path {start}.
//
// Errors: ErrGraphNil, ErrOptionViolation, core.UnknownLocationError.
func Path(g *core.Graph, start, end string, opts ...Option) (core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Require(start, end); err != nil {
		return nil, err
	}
	if start == end {
		return core.Path{start}, nil
	}

	w := &walker{
		graph: g,
		opts:  o,
		end:   end,
		queue: make([]core.Path, 0, g.LocationCount()),
	}
	w.enqueue(core.Path{start})

	return w.loop()
}

// enqueue calls OnEnqueue and appends p to the back of the queue.
func (w *walker) enqueue(p core.Path) {
	w.opts.OnEnqueue(p.End(), p.Hops())
	w.queue = append(w.queue, p)
}

// dequeue pops the front path and calls OnDequeue.
func (w *walker) dequeue() core.Path {
	p := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(p.End(), p.Hops())

	return p
}

// loop extends paths level by level. The target is tested when a path is
// generated, so the first hit has the minimum hop count.
func (w *walker) loop() (core.Path, error) {
	for len(w.queue) > 0 {
		p := w.dequeue()
		if w.opts.MaxDepth > 0 && p.Hops() >= w.opts.MaxDepth {
			continue
		}
		curr := p.End()
		edges, err := w.graph.Neighbors(curr)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			// cycle guard is local to p
			if p.Contains(e.To) || !w.opts.FilterNeighbor(curr, e.To) {
				continue
			}
			next := make(core.Path, len(p)+1)
			copy(next, p)
			next[len(p)] = e.To
			if e.To == w.end {
				return next, nil
			}
			w.enqueue(next)
		}
	}

	return nil, nil
}
