// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood queries.
// Determinism:
//   - Neighbours are produced most-recently-added first.
// Concurrency:
//   - Read lock only. EachNeighbor holds it for the whole iteration, so the
//     callback must not call back into g.

package core

// Neighbors returns a copy of u's adjacency records, newest first.
//
// Errors:
//   - ErrNilGraph, ErrIndexOutOfRange.
//
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return nil, g.outOfRange(u)
	}
	recs := g.adjacency[u]
	out := make([]Edge, 0, len(recs))
	for i := len(recs) - 1; i >= 0; i-- {
		out = append(out, recs[i])
	}

	return out, nil
}

// EachNeighbor calls fn for every adjacency record of u, newest first,
// without allocating. Iteration stops early when fn returns false.
//
// Errors:
//   - ErrNilGraph, ErrIndexOutOfRange.
//
// Complexity: O(deg(u)).
func (g *Graph) EachNeighbor(u int, fn func(e Edge) bool) error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return g.outOfRange(u)
	}
	recs := g.adjacency[u]
	for i := len(recs) - 1; i >= 0; i-- {
		if !fn(recs[i]) {
			break
		}
	}

	return nil
}

// Degree returns the number of adjacency records stored for u.
// Parallel edges count once each; a self loop counts twice.
func (g *Graph) Degree(u int) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return 0, g.outOfRange(u)
	}

	return len(g.adjacency[u]), nil
}
