// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cityroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the core tests.
//   - Keep *testing.T out of goroutines (collect errors, assert afterwards).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cityroute/core"
)

// Common city names used across core tests.
const (
	CityA = "A"
	CityB = "B"
	CityC = "C"
	CityD = "D"
	CityE = "E"
	CityZ = "Z"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight4 = 4
	Weight7 = 7
)

// Concurrency sizes.
const (
	NReaders = 50
	NLoops   = 200
)

// newNamedGraph builds a graph with one vertex per name, in order.
func newNamedGraph(t testing.TB, names ...string) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(len(names))
	require.NoError(t, err)
	for i, n := range names {
		require.NoError(t, g.SetName(i, n))
	}

	return g
}

// squareGraph returns A,B,C,D with edges (A,B,1) (B,C,2) (A,C,4) (C,D,1).
func squareGraph(t testing.TB) *core.Graph {
	t.Helper()
	g := newNamedGraph(t, CityA, CityB, CityC, CityD)
	require.True(t, g.AddUndirectedEdge(0, 1, Weight1))
	require.True(t, g.AddUndirectedEdge(1, 2, Weight2))
	require.True(t, g.AddUndirectedEdge(0, 2, Weight4))
	require.True(t, g.AddUndirectedEdge(2, 3, Weight1))

	return g
}

// targets extracts the To field of each record, preserving order.
func targets(edges []core.Edge) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}
