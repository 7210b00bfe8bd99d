// SPDX-License-Identifier: MIT
//
// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// core.Graph using linear vertex selection instead of a heap.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - At most V selection rounds, each scanning all V vertices.
//   - Each adjacency record is relaxed at most once (when its tail is settled).
//   - Space: O(V) for the distance, visited and predecessor arrays.
//
// Notes on implementation choices:
//
//   - Selection scans in index order with a strict "<", so ties go to the
//     lowest index and results are deterministic.
//   - A query stops as soon as dst is settled, or when no unsettled vertex has
//     a finite distance.
//   - Each query builds its own state; nothing survives between calls and the
//     graph is never mutated.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// noVertex marks "no predecessor" and "no candidate".
const noVertex = -1

// ShortestPath computes a minimum-weight route from src to dst in g.
//
// Returns:
//
//   - Result with Found=true, the total Distance and the Path src..dst.
//   - Result with Found=false when dst cannot be reached (not an error).
//   - err: ErrNilGraph, ErrOptionViolation, or ErrInvalidArgument when src or
//     dst is outside [0, g.VertexCount()). No route is computed in that case.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrOptionViolation).
//  3. src and dst must be valid indices (ErrInvalidArgument).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func ShortestPath(g *core.Graph, src, dst int, opts ...Option) (Result, error) {
	r, err := prepare(g, src, dst, opts)
	if err != nil {
		return Result{}, err
	}
	if err = r.run(); err != nil {
		return Result{}, err
	}

	// dst never received a finite distance
	if r.dist[dst] == Infinity {
		return Result{Found: false, Distance: Infinity}, nil
	}

	// dst settled
	return Result{
		Found:    true,
		Distance: r.dist[dst],
		Path:     r.path(dst),
	}, nil
}

// Distances runs the same algorithm without a destination and returns the
// shortest distance from src to every vertex (Infinity when unreachable).
//
// Complexity: O(V² + E) time, O(V) space.
func Distances(g *core.Graph, src int, opts ...Option) ([]int64, error) {
	r, err := prepare(g, src, noVertex, opts)
	if err != nil {
		return nil, err
	}
	if err = r.run(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// prepare validates inputs and allocates per-query state.
// dst == noVertex means "no early exit".
func prepare(g *core.Graph, src, dst int, opts []Option) (*runner, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Validate indices against the fixed vertex count
	n := g.VertexCount()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: src %d not in [0,%d)", ErrInvalidArgument, src, n)
	}
	if dst != noVertex && (dst < 0 || dst >= n) {
		return nil, fmt.Errorf("%w: dst %d not in [0,%d)", ErrInvalidArgument, dst, n)
	}

	// 4) Allocate O(V) state and seed the source
	r := &runner{
		g:       g,
		options: cfg,
		target:  dst,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
	}
	r.init(src)

	return r, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph // read-only within the engine
	options Options
	target  int // dst, or noVertex for a full run

	dist    []int64 // vertex → best known distance from src
	prev    []int   // vertex → predecessor on that route
	visited []bool  // vertex → distance is final
}

// init sets every distance to Infinity, clears predecessors, and puts src at 0.
func (r *runner) init(src int) {
	for v := range r.dist {
		r.dist[v] = Infinity
		r.prev[v] = noVertex
	}
	r.dist[src] = 0
}

// run settles vertices one by one until the target is settled or no
// reachable vertex remains.
func (r *runner) run() error {
	for iter := 0; iter < len(r.dist); iter++ {
		u := r.next()
		if u == noVertex {
			break // remaining vertices unreachable (or beyond MaxDistance)
		}
		r.visited[u] = true
		if u == r.target {
			break
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// next returns the unsettled vertex with the smallest finite distance,
// lowest index on ties, or noVertex when none is within MaxDistance.
func (r *runner) next() int {
	u, best := noVertex, Infinity
	for v, d := range r.dist {
		if !r.visited[v] && d < best {
			u, best = v, d
		}
	}
	if u != noVertex && best > r.options.MaxDistance {
		return noVertex
	}

	return u
}

// relax applies dist[u]+w < dist[v] to every passable edge leaving u.
// Assumes dist[u] is final.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	err := r.g.EachNeighbor(u, func(e core.Edge) bool {
		if r.visited[e.To] || e.Weight >= r.options.InfEdgeThreshold {
			return true
		}
		nd := du + e.Weight
		if nd > r.options.MaxDistance {
			return true
		}
		if nd < r.dist[e.To] {
			r.dist[e.To] = nd
			r.prev[e.To] = u
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("dijkstra: failed to scan neighbors of %d: %w", u, err)
	}

	return nil
}

// path walks the predecessor chain back from dst and reverses it.
// Only valid for a settled dst with a finite distance.
func (r *runner) path(dst int) []int {
	rev := make([]int, 0, 16)
	for cur := dst; cur != noVertex && len(rev) <= len(r.prev); cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
