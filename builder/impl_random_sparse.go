// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdős–Rényi-like network: each pair i < j gets a
// road with probability p. Requires an rng unless p is 0 or 1.
// Complexity: O(n²) pair checks. Deterministic for a fixed seed.
func RandomSparse(n int, p float64) Constructor {
	if n < minRandomSparseVertices {
		return tooFew(methodRandomSparse, n, minRandomSparseVertices)
	}
	if p < probMin || p > probMax {
		return Constructor{
			method: methodRandomSparse,
			err: fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability),
		}
	}

	return Constructor{method: methodRandomSparse, size: n, emit: func(road func(u, v int), cfg builderConfig) error {
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					road(i, j)
				}
			}
		}
		return nil
	}}
}
