// SPDX-License-Identifier: MIT

// File: methods_adjacent.go
// Role: Neighborhood APIs (OutEdges, InEdges, Successors).
// Determinism:
//   - Edge indices are returned ascending (adjacency buckets are append-only).
//   - Successors() returns unique vertex indices ascending.
// Concurrency:
//   - Read lock on mu; returned slices never share backing arrays with the Graph.

package core

import (
	"fmt"
	"sort"
)

// OutEdges returns the indices of edges whose source is v, ascending.
//
// Errors:
//   - ErrVertexNotFound: if v is not a valid vertex index.
//
// Complexity: O(out(v)).
func (g *Graph) OutEdges(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return append([]int(nil), g.out[v]...), nil
}

// InEdges returns the indices of edges whose target is v, ascending.
//
// Errors:
//   - ErrVertexNotFound: if v is not a valid vertex index.
//
// Complexity: O(in(v)).
func (g *Graph) InEdges(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	return append([]int(nil), g.in[v]...), nil
}

// Successors returns the unique targets of v's outgoing edges, ascending.
// Self-loops contribute v itself.
// Complexity: O(d log d), d = out(v).
func (g *Graph) Successors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.vertices) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, v)
	}

	seen := make(map[int]struct{}, len(g.out[v]))
	out := make([]int, 0, len(g.out[v]))
	var e int
	for _, e = range g.out[v] {
		to := g.edges[e].To
		if _, ok := seen[to]; ok {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}
	sort.Ints(out)

	return out, nil
}
