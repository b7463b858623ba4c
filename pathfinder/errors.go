package pathfinder

import (
	"errors"
	"fmt"
)

// Messages shown to the user for the two informational outcomes.
const (
	MsgSameLocation = "Start and End cities cannot be the same."
	MsgNoPath       = "No path could be found between the selected cities."
)

var (
	// ErrGraphNil is returned by New when the graph is nil.
	ErrGraphNil = errors.New("pathfinder: graph is nil")

	// ErrInvalidQuery matches every *InvalidQueryError.
	ErrInvalidQuery = errors.New("pathfinder: invalid query")

	// ErrUnknownAlgorithm indicates an algorithm name or value outside Algorithms().
	ErrUnknownAlgorithm = errors.New("pathfinder: unknown algorithm")
)

// InvalidQueryError rejects a query whose start and end are the same
// location. No search is run for such a query.
type InvalidQueryError struct {
	Location string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("pathfinder: start and end are both %q", e.Location)
}

// Is lets errors.Is match InvalidQueryError against ErrInvalidQuery.
func (e *InvalidQueryError) Is(target error) bool {
	return target == ErrInvalidQuery
}
