// Package core provides the in-memory road network used by cityroute:
// a fixed set of named cities addressed by integer index, joined by
// weighted undirected roads.
//
// The Graph G = (V,E) has these properties:
//
//   - |V| is fixed when the graph is created (NewGraph) and never changes.
//   - Every vertex has an index in [0, |V|) and an optional display name.
//   - Every edge {u,v} with weight w is stored twice, as u→v and v→u,
//     inserted under one lock so the adjacency is always symmetric.
//   - Parallel edges and self loops are kept as given.
//   - Neighbours are produced most-recently-added first.
//   - Weights are integers in [0, MaxWeight].
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int) (*Graph, error)              // O(n)
//
//	// Names
//	SetName(i int, name string) error            // O(1)
//	Name(i int) (string, error)                  // O(1)
//	FindIndex(name string) (int, bool)           // O(n), first match in index order
//	Names() []string                             // O(n), index order
//
//	// Edges
//	AddUndirectedEdge(u, v int, w int64) bool    // O(1)†, invalid input ignored
//	Neighbors(u int) ([]Edge, error)             // O(deg u), newest first
//	EachNeighbor(u int, fn func(Edge) bool) error
//	Degree(u int) (int, error)
//
//	// Counts
//	VertexCount() int
//	EdgeCount() int
//
// † amortized (slice append).
//
// Errors:
//
//	ErrInvalidArgument    – root of all argument failures (errors.Is friendly)
//	ErrInvalidVertexCount – NewGraph with n <= 0 or n > MaxVertices
//	ErrIndexOutOfRange    – vertex index outside [0, |V|)
//	ErrNilGraph           – method called on a nil *Graph
//
// Edge insertion is deliberately permissive: AddUndirectedEdge drops bad
// endpoints or weights and reports false instead of failing, so a loader can
// skip bad lines and keep going. Query entry points are strict.
//
// Concurrency: a sync.RWMutex guards all state. Any number of goroutines may
// read a graph concurrently; writers get exclusive access.
package core
