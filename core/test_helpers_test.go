// SPDX-License-Identifier: MIT
// Package core_test contains test fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ukpath/core"
)

// Common location names used across core tests.
const (
	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"
	LocX = "X"
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// newSquare builds the square A–B–C–D–A with one diagonal A–C:
//
//	A──1──B
//	│ ╲   │
//	5  3  2
//	│    ╲│
//	D──1──C
func newSquare(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.NewBuilder().
		AddEdge(LocA, LocB, Weight1).
		AddEdge(LocB, LocC, Weight2).
		AddEdge(LocA, LocC, Weight3).
		AddEdge(LocC, LocD, Weight1).
		AddEdge(LocD, LocA, Weight5).
		Build()
	require.NoError(t, err, "square fixture must build")

	return g
}

func neighborNames(edges []core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}
