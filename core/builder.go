// File: builder.go
// Role: Construction of immutable Graph values.
// Order:
//   - AddArc/AddEdge append to neighbor lists in call order.
//   - Build appends missing mirror arcs last, in the order they were recorded.
// Policy:
//   - All validation happens here; a built Graph never fails an invariant.
//   - The first error is sticky: later calls become no-ops and Build returns it.

package core

import (
	"fmt"
	"math"
)

// Builder assembles a Graph. The zero value is not usable; call NewBuilder.
//
// Connections are undirected: AddEdge(a, b, w) records a→b and b→a with the
// same weight, and AddArc(a, b, w) records a→b now and b→a at Build unless
// b declares it itself. Locations referenced by either are declared
// implicitly, in the order they are first seen.
type Builder struct {
	g       *Graph
	pending []arc // arcs still missing their mirror, in insertion order
	err     error
	done    bool
}

// arc is a directed from→to entry recorded by AddArc.
type arc struct {
	from, to string
}

// NewBuilder returns an empty Builder.
//
// Complexity: O(1)
func NewBuilder() *Builder {
	return &Builder{
		g: &Graph{
			index:     make(map[string]int),
			adjacency: make(map[string][]Edge),
			folded:    make(map[string]string),
		},
	}
}

// AddLocation declares a location without connecting it. Declaring the same
// name twice is a no-op, so the first declaration fixes its position in
// Graph.Locations.
//
// Errors: ErrEmptyLocation, ErrBuilderFinished.
func (b *Builder) AddLocation(name string) *Builder {
	if !b.usable() {
		return b
	}
	if name == "" {
		b.err = ErrEmptyLocation

		return b
	}
	b.declare(name)

	return b
}

// AddEdge connects from and to with weight w in both directions, appending
// each direction to the end of its location's neighbor list.
//
// Repeating an identical connection (in either direction) is a no-op;
// repeating it with a different weight fails with ErrWeightMismatch.
//
// Errors: ErrEmptyLocation, ErrLoopNotAllowed, ErrBadWeight,
// ErrWeightMismatch, ErrBuilderFinished.
//
// Complexity: O(deg(from) + deg(to)) for the duplicate checks.
func (b *Builder) AddEdge(from, to string, w float64) *Builder {
	return b.AddArc(from, to, w).AddArc(to, from, w)
}

// AddArc appends to to the neighbor list of from with weight w. The graph
// stays undirected: if to never lists from by the time Build runs, Build
// appends the mirror entry to the end of to's list, in the order the arcs
// were added. This lets a map declare each location's own neighbor order.
//
// Repeating an identical arc is a no-op. An arc whose weight differs from
// an existing arc between the same pair, in either direction, fails with
// ErrWeightMismatch.
//
// Errors: ErrEmptyLocation, ErrLoopNotAllowed, ErrBadWeight,
// ErrWeightMismatch, ErrBuilderFinished.
//
// Complexity: O(deg(from) + deg(to)) for the duplicate checks.
func (b *Builder) AddArc(from, to string, w float64) *Builder {
	if !b.usable() {
		return b
	}
	switch {
	case from == "" || to == "":
		b.err = ErrEmptyLocation
	case from == to:
		b.err = fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	case w <= 0 || math.IsNaN(w) || math.IsInf(w, 0):
		b.err = fmt.Errorf("%w: %q–%q weight=%g", ErrBadWeight, from, to, w)
	}
	if b.err != nil {
		return b
	}

	b.declare(from)
	b.declare(to)

	if have, ok := b.g.Weight(from, to); ok {
		if have != w {
			b.err = fmt.Errorf("%w: %q–%q has %g, got %g", ErrWeightMismatch, from, to, have, w)
		}

		return b
	}
	back, mirrored := b.g.Weight(to, from)
	if mirrored && back != w {
		b.err = fmt.Errorf("%w: %q–%q has %g, got %g", ErrWeightMismatch, to, from, back, w)

		return b
	}

	b.g.adjacency[from] = append(b.g.adjacency[from], Edge{To: to, Weight: w})
	if !mirrored {
		b.g.edges++
		b.pending = append(b.pending, arc{from: from, to: to})
	}

	return b
}

// Err returns the first error recorded so far.
func (b *Builder) Err() error { return b.err }

// Build returns the assembled Graph or the first recorded error.
// The Builder is finished afterwards and must not be reused.
func (b *Builder) Build() (*Graph, error) {
	if b.done {
		return nil, ErrBuilderFinished
	}
	b.done = true
	if b.err != nil {
		return nil, b.err
	}
	g := b.g
	b.g = nil
	for _, a := range b.pending {
		if _, ok := g.Weight(a.to, a.from); ok {
			continue
		}
		w, _ := g.Weight(a.from, a.to) // recorded by AddArc
		g.adjacency[a.to] = append(g.adjacency[a.to], Edge{To: a.from, Weight: w})
	}
	b.pending = nil

	return g, nil
}

func (b *Builder) usable() bool {
	if b.done {
		b.err = ErrBuilderFinished

		return false
	}

	return b.err == nil
}

// declare adds name if it is new. Caller guarantees name != "".
func (b *Builder) declare(name string) {
	if _, ok := b.g.index[name]; ok {
		return
	}
	b.g.index[name] = len(b.g.order)
	b.g.order = append(b.g.order, name)
	b.g.adjacency[name] = nil
	if _, taken := b.g.folded[fold(name)]; !taken {
		b.g.folded[fold(name)] = name
	}
}
