package pathfinder

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the four searches.
type Algorithm int

// The searches in presentation order.
const (
	DFS Algorithm = iota
	BFS
	Dijkstra
	AStar
)

var algorithmNames = [...]struct{ key, display string }{
	DFS:      {"dfs", "Depth-First Search"},
	BFS:      {"bfs", "Breadth-First Search"},
	Dijkstra: {"dijkstra", "Dijkstra's Algorithm"},
	AStar:    {"astar", "A* Search"},
}

// aliases maps every accepted lower-case spelling to its Algorithm.
var aliases = map[string]Algorithm{
	"depth-first":   DFS,
	"depth first":   DFS,
	"breadth-first": BFS,
	"breadth first": BFS,
	"dijkstra's":    Dijkstra,
	"a*":            AStar,
	"a-star":        AStar,
	"a star":        AStar,
}

func init() {
	for a, n := range algorithmNames {
		aliases[n.key] = Algorithm(a)
		aliases[strings.ToLower(n.display)] = Algorithm(a)
	}
}

// valid reports whether a is one of the declared constants.
func (a Algorithm) valid() bool { return a >= DFS && a <= AStar }

// String returns the display name, e.g. "A* Search".
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a].display
}

// Key returns the short machine name, e.g. "astar".
func (a Algorithm) Key() string {
	if !a.valid() {
		return ""
	}

	return algorithmNames[a].key
}

// MarshalText encodes a as its Key.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.Key()), nil
}

// UnmarshalText accepts anything ParseAlgorithm does.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps a key ("bfs"), display name ("Breadth-First Search")
// or common alias ("a*", "breadth-first") to an Algorithm, ignoring case and
// surrounding whitespace.
//
// Errors: an error wrapping ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	if a, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Algorithms returns every Algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, Dijkstra, AStar}
}
