// Package dfs implements depth-first traversal and connectivity queries on
// core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): pre-/post-order traversal from a root, or a
//     full forest via WithFullTraversal. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Road filtering
//   - Components(g): connected regions, each sorted ascending and ordered
//     by smallest member.
//   - Reachable(g, src, dst): whether any route exists, without distances.
//
// Why:
//   - A road network loaded from files is often split into regions nobody
//     intended; counting them up front explains "Path Not Found" answers.
//
// Complexity:
//
//   - DFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(V+E + V log V), Memory O(V)
//   - Reachable:  Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil
//   - ErrStartOutOfRange    start index is not a vertex
//   - ErrOptionViolation    invalid option (negative MaxDepth)
//   - context.Canceled      DFS canceled via context
//   - hook errors           propagated from OnVisit or OnExit
package dfs
