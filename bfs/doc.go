// Package bfs finds routes with the fewest legs between cities of a core.Graph.
//
// What
//
//   - Explore cities in non-decreasing number of roads from a start city.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: legs from the start (-1 when unreached)
//   - Parent: predecessor in the BFS tree
//   - PathTo(dest) rebuilds the route, or fails with ErrNoPath.
//   - OnVisit hook may abort the search with an error.
//   - Honors a MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Road length is not always what a traveller minimises; the number of
//     changes (legs) is a common second question, answered in O(V + E).
//
// Determinism
//
//	Neighbours are enqueued in core's newest-first order, so the visit
//	sequence and the chosen route are reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
