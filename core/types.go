// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors, bounds and the NewGraph constructor.
// Concurrency:
//   - One sync.RWMutex guards names and adjacency. Mutators take the write lock,
//     queries take the read lock, so a built graph may be shared by any number
//     of concurrent readers.

package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidArgument is the root of every argument-validation failure in core.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrInvalidVertexCount indicates NewGraph was asked for n <= 0 or n > MaxVertices vertices.
	ErrInvalidVertexCount = fmt.Errorf("%w: vertex count out of range", ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrIndexOutOfRange = fmt.Errorf("%w: vertex index out of range", ErrInvalidArgument)

	// ErrNilGraph indicates a method was invoked on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")
)

const (
	// MaxWeight is the largest accepted edge weight.
	MaxWeight int64 = math.MaxInt32

	// MaxVertices is the largest vertex count NewGraph accepts.
	// Together with MaxWeight it caps every simple-path length at (MaxVertices-1)*MaxWeight < 2^62.
	MaxVertices = math.MaxInt32
)

// Edge is one directed adjacency record. An undirected connection {u,v}
// is stored as Edge{To: v} in u's list and Edge{To: u} in v's list.
type Edge struct {
	// To is the index of the neighbouring vertex.
	To int

	// Weight is the non-negative cost of travelling along the edge.
	Weight int64
}

// Graph is a fixed-size, index-addressed, undirected weighted graph.
//
// Vertices are identified by their index in [0, n), assigned at construction.
// Each vertex carries an optional display name. Edges are only ever added.
type Graph struct {
	mu sync.RWMutex // guards names, adjacency and edgeCount

	names []string // index → display name ("" when unset)

	// adjacency[u] holds u's records in insertion order; readers walk it
	// backwards so the most recently added edge is produced first.
	adjacency [][]Edge

	edgeCount int // undirected edges added so far
}

// NewGraph allocates a graph with n unnamed vertices and empty adjacency.
// It returns ErrInvalidVertexCount when n <= 0 or n > MaxVertices; in that
// case no graph is returned.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n <= 0 || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertexCount, n)
	}

	return &Graph{
		names:     make([]string, n),
		adjacency: make([][]Edge, n),
	}, nil
}

// inRange reports whether i is a valid vertex index. Caller holds a lock.
func (g *Graph) inRange(i int) bool {
	return i >= 0 && i < len(g.names)
}

// outOfRange builds the canonical wrapped index error.
func (g *Graph) outOfRange(i int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.names))
}
