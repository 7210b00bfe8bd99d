// Package bfs provides breadth-first search over a core.Graph,
// returning leg counts, parent links, and visit order.
//
// BFS explores cities in increasing number of roads from a start city,
// with an optional visit hook and depth limit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
// Edge weights are ignored: every road counts as one leg.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// Prepare walker
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = unreached
		w.res.Parent[v] = unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, unreached)
	// Main loop
	return w.res, w.loop()
}

// enqueue records v's depth and parent and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbour of item within MaxDepth,
// in the graph's newest-first order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	nbs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", item.v, err)
	}
	for _, e := range nbs {
		// first time seen?
		if w.res.Depth[e.To] == unreached {
			w.enqueue(e.To, nextDepth, item.v)
		}
	}
	return nil
}
