// SPDX-License-Identifier: MIT
//
// Package dijkstra defines the result type, sentinel errors and functional
// options for the linear-selection shortest-path engine.
//
// Options:
//
//	– MaxDistance:      optional cap; vertices farther than this are never settled.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrInvalidArgument if src or dst is outside [0, VertexCount()).
//	– ErrOptionViolation if an option was given an invalid value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the tentative distance of a vertex with no known route.
//
// Edge weights are capped at core.MaxWeight (2^31-1) and vertex counts at
// core.MaxVertices (2^31-1), so any finite distance is at most
// (n-1)*MaxWeight < 2^62. One more relaxation adds at most 2^31, which keeps
// every real sum far below Infinity and rules out overflow.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidArgument indicates an out-of-range src or dst index.
	ErrInvalidArgument = errors.New("dijkstra: invalid argument")

	// ErrOptionViolation indicates an Option received an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Result is the outcome of one ShortestPath query.
//
// When Found is false the destination is unreachable: Distance is Infinity
// and Path is nil. That is a normal outcome, not an error.
type Result struct {
	// Found reports whether dst is reachable from src.
	Found bool

	// Distance is the total weight of Path, or Infinity when !Found.
	Distance int64

	// Path lists vertex indices from src to dst inclusive.
	// It has length 1 when src == dst.
	Path []int
}

// Options configures the engine.
type Options struct {
	// MaxDistance stops exploration beyond this total weight. Default Infinity.
	MaxDistance int64

	// InfEdgeThreshold marks edges with Weight >= threshold as impassable.
	// Default Infinity (no edge is impassable).
	InfEdgeThreshold int64

	// err records the first invalid option; surfaced as ErrOptionViolation.
	err error
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithMaxDistance caps exploration: vertices whose shortest distance would
// exceed max are treated as unreachable.
//
//	max >= 0: cap at max
//	max < 0:  invalid → ErrOptionViolation
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats any edge with weight >= threshold as closed.
//
//	threshold > 0:  edges at or above it are skipped
//	threshold <= 0: invalid → ErrOptionViolation (it would close zero-weight edges too)
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive (%d)", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// fail keeps the first recorded option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
