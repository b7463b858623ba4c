// File: methods.go
// Role: Read-only queries over an immutable Graph.
// Determinism:
//   - Locations() returns declaration order.
//   - Neighbors() returns connection insertion order.
// Concurrency:
//   - Graph is never mutated after Build; no locking is required.

package core

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HasLocation reports whether name is a key of the graph.
//
// Complexity: O(1)
func (g *Graph) HasLocation(name string) bool {
	_, ok := g.index[name]

	return ok
}

// mustHave returns UnknownLocationError when name is absent.
func (g *Graph) mustHave(name string) error {
	if !g.HasLocation(name) {
		return UnknownLocationError{Name: name}
	}

	return nil
}

// Require returns an UnknownLocationError for the first name that is not a
// key of the graph, or nil if all of them are.
func (g *Graph) Require(names ...string) error {
	for _, name := range names {
		if err := g.mustHave(name); err != nil {
			return err
		}
	}

	return nil
}

// Locations returns every location name in declaration order.
// The returned slice is a fresh copy.
//
// Complexity: O(V)
func (g *Graph) Locations() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// LocationCount returns the number of locations.
func (g *Graph) LocationCount() int { return len(g.order) }

// EdgeCount returns the number of undirected connections.
func (g *Graph) EdgeCount() int { return g.edges }

// Neighbors returns the edges leaving name, in the order the connections were
// added. The returned slice is a fresh copy.
//
// Errors: UnknownLocationError if name is absent.
//
// Complexity: O(deg(name))
func (g *Graph) Neighbors(name string) ([]Edge, error) {
	if err := g.mustHave(name); err != nil {
		return nil, err
	}
	adj := g.adjacency[name]
	out := make([]Edge, len(adj))
	copy(out, adj)

	return out, nil
}

// Degree returns the number of connections touching name.
func (g *Graph) Degree(name string) (int, error) {
	if err := g.mustHave(name); err != nil {
		return 0, err
	}

	return len(g.adjacency[name]), nil
}

// Weight returns the weight of the connection a–b and whether it exists.
// Unknown locations simply report false.
//
// Complexity: O(deg(a))
func (g *Graph) Weight(a, b string) (float64, bool) {
	for _, e := range g.adjacency[a] {
		if e.To == b {
			return e.Weight, true
		}
	}

	return 0, false
}

// HasEdge reports whether a and b are directly connected.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// PathWeight sums the weights along p. An empty or single-node path weighs 0.
//
// Errors: UnknownLocationError for a missing location, or an error wrapping
// ErrInvalidPath when two consecutive nodes are not connected.
func (g *Graph) PathWeight(p Path) (float64, error) {
	var total float64
	for i, name := range p {
		if err := g.mustHave(name); err != nil {
			return 0, err
		}
		if i == 0 {
			continue
		}
		w, ok := g.Weight(p[i-1], name)
		if !ok {
			return 0, fmt.Errorf("%w: no connection %q–%q", ErrInvalidPath, p[i-1], name)
		}
		total += w
	}

	return total, nil
}

// ValidatePath checks that every consecutive pair of p is a connection and
// that no location appears twice.
func (g *Graph) ValidatePath(p Path) error {
	if _, err := g.PathWeight(p); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(p))
	for _, name := range p {
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q visited twice", ErrInvalidPath, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Resolve maps a user-typed name ("manchester", " INVERNESS ") to the
// canonical location name. Matching ignores case, accents and surrounding
// whitespace.
//
// Errors: UnknownLocationError carrying the input as typed.
func (g *Graph) Resolve(name string) (string, error) {
	if g.HasLocation(name) {
		return name, nil
	}
	if canonical, ok := g.folded[fold(name)]; ok {
		return canonical, nil
	}

	return "", UnknownLocationError{Name: name}
}

// Without returns a new Graph with every connection touching name removed.
// The location itself stays, isolated, and every other neighbor list keeps
// its order. The receiver is not modified.
//
// Errors: UnknownLocationError if name is absent.
//
// Complexity: O(V + E)
func (g *Graph) Without(name string) (*Graph, error) {
	if err := g.mustHave(name); err != nil {
		return nil, err
	}
	b := NewBuilder()
	for _, loc := range g.order {
		b.AddLocation(loc)
	}
	for _, from := range g.order {
		if from == name {
			continue
		}
		for _, e := range g.adjacency[from] {
			if e.To == name {
				continue
			}
			b.AddArc(from, e.To, e.Weight)
		}
	}

	return b.Build()
}

// fold lowercases s, strips diacritics and collapses whitespace.
func fold(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.ToLower(s),
	)

	return strings.Join(strings.Fields(s), " ")
}
