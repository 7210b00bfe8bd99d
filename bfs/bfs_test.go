package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/cityroute/bfs"
	"github.com/katalvlaran/cityroute/core"
)

// chainWithShortcut builds 0-1-2-3-4 plus a heavy shortcut 0-4.
func chainWithShortcut(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(5)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < 5; i++ {
		g.AddUndirectedEdge(i-1, i, 1)
	}
	g.AddUndirectedEdge(0, 4, 100)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex out of range
	g, _ := core.NewGraph(2)
	for _, s := range []int{-1, 2} {
		if _, err := bfs.BFS(g, s); !errors.Is(err, bfs.ErrStartOutOfRange) {
			t.Errorf("start %d: want ErrStartOutOfRange, got %v", s, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_FewestLegsIgnoresWeights checks the heavy shortcut is preferred.
func TestBFS_FewestLegsIgnoresWeights(t *testing.T) {
	res, err := bfs.BFS(chainWithShortcut(t), 0)
	if err != nil {
		t.Fatal(err)
	}
	path, err := res.PathTo(4)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 4}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(4) = %v; want %v", path, want)
	}
	if want := []int{0, 1, 2, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

// TestBFS_OrderIsNewestFirst checks the newest road is explored first.
func TestBFS_OrderIsNewestFirst(t *testing.T) {
	res, err := bfs.BFS(chainWithShortcut(t), 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 4, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Unreached covers isolated vertices.
func TestBFS_Unreached(t *testing.T) {
	g, _ := core.NewGraph(3)
	g.AddUndirectedEdge(0, 1, 1)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(2) {
		t.Error("vertex 2 should be unreached")
	}
	if _, err := res.PathTo(2); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(2): want ErrNoPath, got %v", err)
	}
	path, err := res.PathTo(0)
	if err != nil || !reflect.DeepEqual(path, []int{0}) {
		t.Errorf("PathTo(start) = %v, %v; want [0]", path, err)
	}
}

// TestBFS_MaxDepth stops after the given number of legs.
func TestBFS_MaxDepth(t *testing.T) {
	g, _ := core.NewGraph(4)
	for i := 1; i < 4; i++ {
		g.AddUndirectedEdge(i-1, i, 1)
	}
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Reached(3) {
		t.Error("vertex 3 is beyond MaxDepth")
	}
}

// TestBFS_OnVisitAbort propagates hook errors.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(chainWithShortcut(t), 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 4 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped stop error, got %v", err)
	}
}

// TestBFS_Cancelled honours a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(chainWithShortcut(t), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
