package dfs

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected regions; otherwise, it starts only from start.
// Neighbours are explored in the graph's newest-first order.
// Returns DFSResult or error if aborted by context or hook.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 3. Single-source mode: verify start
	n := g.VertexCount()
	if !dopts.FullTraversal && (start < 0 || start >= n) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	// 4. Initialize result
	res := &DFSResult{
		Order:  make([]int, 0, n),
		Depth:  make([]int, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Depth[v] = unvisited
		res.Parent[v] = unvisited
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for v := 0; v < n; v++ {
			if !res.Visited(v) {
				if err := walker.traverse(v, 0); err != nil {
					return res, err
				}
			}
		}

		return res, nil
	}

	return res, walker.traverse(start, 0)
}

// traverse visits vertex v at given depth, recursing to neighbors.
func (w *dfsWalker) traverse(v int, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Depth[v] = depth

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	// 4. Explore neighbours unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		nbs, err := w.graph.Neighbors(v)
		if err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: Neighbors(%d): %w", v, err)
		}
		for _, e := range nbs {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, e.To, e.Weight) {
				w.res.SkippedNeighbors++
				continue
			}
			if !w.res.Visited(e.To) {
				w.res.Parent[e.To] = v
				if err = w.traverse(e.To, depth+1); err != nil {
					return err
				}
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %d: %w", v, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, v)

	return nil
}
