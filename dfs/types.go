// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering
// and full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Components or Reachable.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange indicates that the start index is not a vertex of the graph.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// unvisited marks Depth and Parent entries of vertices DFS never reached.
const unvisited = -1

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each adjacency record before
	// recursing. Return false to skip that road.
	FilterNeighbor func(from, to int, weight int64) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in index
	// order, covering disconnected regions. The start argument is ignored.
	FullTraversal bool

	err error
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; a negative limit
// is recorded as ErrOptionViolation.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters roads.
func WithFilterNeighbor(fn func(from, to int, weight int64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []int

	// Depth holds each vertex's tree depth, -1 when unvisited.
	Depth []int

	// Parent holds the vertex each vertex was discovered from,
	// -1 for tree roots and unvisited vertices.
	Parent []int

	// SkippedNeighbors reports how many roads FilterNeighbor rejected.
	SkippedNeighbors int
}

// Visited reports whether v was reached.
func (r *DFSResult) Visited(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != unvisited
}
