package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cityroute/dfs"
)

// BenchmarkDFS_Chain10000 measures recursive DFS on a 10,000-city chain.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkComponents_Chain10000 measures the iterative region split.
func BenchmarkComponents_Chain10000(b *testing.B) {
	g := buildChain(b, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.Components(g); err != nil {
			b.Fatal(err)
		}
	}
}
