// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only size getters.
// Policy:
//   - No algorithms or hidden state here.

package core

// VertexCount returns the fixed number of vertices chosen at construction.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// EdgeCount returns the number of successful AddUndirectedEdge calls.
// Each undirected edge counts once even though it is stored twice.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
