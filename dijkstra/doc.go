// Package dijkstra finds minimum-weight routes between two cities of a
// core.Graph with non-negative integer road lengths.
//
// Overview:
//
//   - ShortestPath(g, src, dst) returns the total distance and the ordered list
//     of vertex indices src..dst, or a "not found" Result when dst is unreachable.
//   - Distances(g, src) returns the distance from src to every vertex.
//   - Vertices are selected by a linear scan instead of a heap: O(V² + E) time,
//     O(V) extra space. That is plenty for city-sized maps and keeps the
//     selection order fully deterministic (lowest index wins ties).
//
// Outcomes:
//
//   - Found:     Result.Found == true, Result.Path[0] == src, last == dst.
//   - Not found: Result.Found == false, Distance == Infinity, Path == nil.
//   - Error:     ErrNilGraph, ErrInvalidArgument (bad index), ErrOptionViolation.
//
// A query never leaves partial state behind: either a complete Result or an
// error is returned.
//
// Options:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    src, dst int,
//	    opts ...Option,
//	) (Result, error)
//
//	  • WithMaxDistance(int64):      settle only vertices within the cap.
//	  • WithInfEdgeThreshold(int64): skip edges with weight ≥ threshold (closed roads).
//
// Sentinel distance:
//
//	Infinity = math.MaxInt64. Weights are bounded by core.MaxWeight and vertex
//	counts by core.MaxVertices, so every real route length stays below 2^62 and
//	relaxation cannot overflow.
//
// Thread safety:
//
//   - The engine only reads g, under g's read lock. Any number of queries may
//     run concurrently on the same graph as long as nobody mutates it meanwhile.
//   - There is no cancellation hook; a query is bounded by O(V²).
//
// See also:
//
//   - core.Graph: construction, naming and edge insertion.
//   - bfs.BFS: routes with the fewest legs instead of the least distance.
package dijkstra
