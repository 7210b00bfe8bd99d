// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex naming and name↔index resolution.
// Determinism:
//   - FindIndex scans in index order and returns the first match.
//   - Names() returns names in index order.
// Concurrency:
//   - SetName takes the write lock; everything else the read lock.

package core

// SetName assigns (or overwrites) the display name of vertex i.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrIndexOutOfRange: i not in [0, VertexCount()); the graph is unchanged.
//
// Complexity: O(1).
func (g *Graph) SetName(i int, name string) error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(i) {
		return g.outOfRange(i)
	}
	g.names[i] = name

	return nil
}

// Name returns the display name of vertex i ("" if never set).
//
// Complexity: O(1).
func (g *Graph) Name(i int) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(i) {
		return "", g.outOfRange(i)
	}

	return g.names[i], nil
}

// FindIndex returns the index of the first vertex, in index order, whose name
// equals name exactly (case-sensitive). The boolean is false when no vertex
// matches; that is a normal "not found" result, not an error.
//
// Unset names never match, so FindIndex("") is always a miss.
//
// Complexity: O(n).
func (g *Graph) FindIndex(name string) (int, bool) {
	if g == nil || name == "" {
		return -1, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, n := range g.names {
		if n == name {
			return i, true
		}
	}

	return -1, false
}

// Names returns a copy of all display names in index order, including
// empty strings for vertices that were never named.
//
// Complexity: O(n).
func (g *Graph) Names() []string {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}
