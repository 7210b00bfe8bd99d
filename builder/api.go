// SPDX-License-Identifier: MIT
//
// api.go - public entry-point and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Sizes are summed first,
//     then one core.Graph is allocated, named, and filled by cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cityroute/core"
)

// Constructor is one topology block. Size is fixed when the constructor is
// created; emit adds roads between local indices [0, size).
type Constructor struct {
	method string
	size   int
	err    error // parameter error, reported by BuildGraph
	emit   func(road func(u, v int), cfg builderConfig) error
}

// Size returns the number of cities the block occupies.
func (c Constructor) Size() int { return c.size }

// BuildGraph allocates a graph large enough for every constructor, names the
// vertices with the configured ID scheme, and lets each constructor add its
// roads inside its own index block. Blocks follow each other in argument
// order, so constructor k starts at the sum of the sizes before it.
//
// Errors:
//   - ErrConstructFailed when cons is empty.
//   - Any constructor parameter error, wrapped as "BuildGraph: %w".
//
// Complexity: O(V) plus the cost of every constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	total := 0
	for i, c := range cons {
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: constructor %d: %w", i, c.err)
		}
		if c.emit == nil {
			return nil, fmt.Errorf("BuildGraph: zero constructor at index %d: %w", i, ErrConstructFailed)
		}
		total += c.size
	}
	if total == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrConstructFailed)
	}

	cfg := newBuilderConfig(bopts...)
	g, err := core.NewGraph(total)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	for i := 0; i < total; i++ {
		if err = g.SetName(i, cfg.idFn(i)); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	base := 0
	for _, c := range cons {
		offset := base
		road := func(u, v int) {
			g.AddUndirectedEdge(offset+u, offset+v, cfg.weightFn(cfg.rng))
		}
		if err = c.emit(road, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %s: %w", c.method, err)
		}
		base += c.size
	}

	return g, nil
}

// tooFew builds the canonical parameter error.
func tooFew(method string, n, min int) Constructor {
	return Constructor{
		method: method,
		err:    fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices),
	}
}
