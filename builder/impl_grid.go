// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds an R×C 4-neighbourhood street grid. Cell (r, c) is local
// index r*cols + c. For each cell in row-major order the road to the right
// neighbour is emitted before the road to the cell below.
func Grid(rows, cols int) Constructor {
	if rows < minGridDim || cols < minGridDim {
		return Constructor{
			method: methodGrid,
			err: fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices),
		}
	}

	return Constructor{method: methodGrid, size: rows * cols, emit: func(road func(u, v int), _ builderConfig) error {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					road(u, u+1)
				}
				if r+1 < rows {
					road(u, u+cols)
				}
			}
		}
		return nil
	}}
}
