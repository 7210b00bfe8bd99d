package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cityroute/core"
)

// Components partitions g into connected regions: maximal sets of cities
// joined by roads. Regions are ordered by their smallest member and each
// region lists its members in ascending index order, so the result depends
// only on the set of roads, not on insertion order.
//
// An explicit stack is used instead of recursion so very long chains cannot
// exhaust the goroutine stack.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	var regions [][]int

	for root := 0; root < n; root++ {
		if seen[root] {
			continue
		}
		region := []int{}
		err := walk(g, root, seen, func(v int) bool {
			region = append(region, v)
			return true
		})
		if err != nil {
			return nil, err
		}
		sort.Ints(region)
		regions = append(regions, region)
	}

	return regions, nil
}

// Reachable reports whether dst can be reached from src over any roads.
// It shares the iterative walk of Components and stops as soon as dst is
// found.
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable(g *core.Graph, src, dst int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.VertexCount()
	for _, v := range []int{src, dst} {
		if v < 0 || v >= n {
			return false, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, v, n)
		}
	}

	found := false
	err := walk(g, src, make([]bool, n), func(v int) bool {
		found = v == dst
		return !found
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

// walk pops vertices from an explicit stack starting at root, marking them
// in seen and handing each to visit. It stops early when visit returns false.
func walk(g *core.Graph, root int, seen []bool, visit func(v int) bool) error {
	seen[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(v) {
			return nil
		}
		err := g.EachNeighbor(v, func(e core.Edge) bool {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("dfs: EachNeighbor(%d): %w", v, err)
		}
	}

	return nil
}
