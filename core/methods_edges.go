// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion. Edges are never removed.
// Concurrency:
//   - AddUndirectedEdge inserts both directed records under one write lock,
//     so no reader can observe half of an edge.

package core

// AddUndirectedEdge connects u and v with weight w by inserting the record
// (u→v, w) and the mirror (v→u, w).
//
// Invalid input is ignored rather than reported: if u or v is outside
// [0, VertexCount()) or w is outside [0, MaxWeight], the adjacency is left
// untouched and false is returned. This matches the bulk-load policy of
// skipping bad data and carrying on.
//
// Parallel edges are kept: adding the same pair twice stores two records on
// each side. A self loop (u == v) stores two records on u.
//
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(u, v int, w int64) bool {
	if g == nil {
		return false
	}
	if w < 0 || w > MaxWeight {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	g.adjacency[u] = append(g.adjacency[u], Edge{To: v, Weight: w})
	g.adjacency[v] = append(g.adjacency[v], Edge{To: u, Weight: w})
	g.edgeCount++

	return true
}
