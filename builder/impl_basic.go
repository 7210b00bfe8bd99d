// SPDX-License-Identifier: MIT

package builder

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path builds a chain 0-1-…-(n-1), n ≥ 2. Roads are emitted in index order.
func Path(n int) Constructor {
	if n < minPathNodes {
		return tooFew(methodPath, n, minPathNodes)
	}

	return Constructor{method: methodPath, size: n, emit: func(road func(u, v int), _ builderConfig) error {
		for i := 1; i < n; i++ {
			road(i-1, i)
		}
		return nil
	}}
}

// Cycle builds a ring 0-1-…-(n-1)-0, n ≥ 3.
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return tooFew(methodCycle, n, minCycleNodes)
	}

	return Constructor{method: methodCycle, size: n, emit: func(road func(u, v int), _ builderConfig) error {
		for i := 1; i < n; i++ {
			road(i-1, i)
		}
		road(n-1, 0)
		return nil
	}}
}

// Star builds a hub 0 with n-1 spokes, n ≥ 2.
func Star(n int) Constructor {
	if n < minStarNodes {
		return tooFew(methodStar, n, minStarNodes)
	}

	return Constructor{method: methodStar, size: n, emit: func(road func(u, v int), _ builderConfig) error {
		for i := 1; i < n; i++ {
			road(0, i)
		}
		return nil
	}}
}

// Complete connects every pair i < j, n ≥ 1. Pairs are emitted in
// lexicographic order.
func Complete(n int) Constructor {
	if n < minCompleteNodes {
		return tooFew(methodComplete, n, minCompleteNodes)
	}

	return Constructor{method: methodComplete, size: n, emit: func(road func(u, v int), _ builderConfig) error {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				road(i, j)
			}
		}
		return nil
	}}
}
