// SPDX-License-Identifier: MIT

// File: homset.go
// Role: Finiteness and hom-set enumeration.
// Determinism:
//   - HomSet returns paths by non-decreasing length; equal lengths keep the
//     lexicographic order of their edge indices (breadth-first, ascending out-edges).

package fincat

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/fincat/dfs"
)

// Unbounded is the maxLen value that asks HomSet for every path.
const Unbounded = -1

// IsFinite reports whether the category has finitely many morphisms, i.e.
// whether its graph has no directed cycle (self-loops included).
// Complexity: O(V + E).
func (c *FreeCategory) IsFinite() bool {
	return dfs.IsAcyclic(c.graph)
}

// HomSet enumerates the paths x → y with at most maxLen edges (the identity
// counts as length 0 and is included when x == y). maxLen == Unbounded lists
// them all and is only allowed when IsFinite().
//
// Errors:
//   - ErrOutOfRange: x or y is not an object.
//   - ErrInfiniteHomSet: maxLen == Unbounded on a graph with a cycle; the
//     message names a witness cycle.
//
// Complexity: O(E + number of enumerated prefixes); only prefixes that can
// still reach y are extended.
func (c *FreeCategory) HomSet(x, y Vertex, maxLen int) ([]Path, error) {
	if !c.HasObject(x) {
		return nil, fmt.Errorf("%w: vertex %d", ErrOutOfRange, x)
	}
	if !c.HasObject(y) {
		return nil, fmt.Errorf("%w: vertex %d", ErrOutOfRange, y)
	}
	if maxLen < 0 {
		if cycle, found, err := dfs.FindCycle(c.graph); err != nil {
			return nil, err
		} else if found {
			return nil, fmt.Errorf("%w: cycle through edges %v", ErrInfiniteHomSet, cycle)
		}
	}

	out, reaches := c.adjacency(y)
	var paths []Path
	queue := linkedlistqueue.New()
	queue.Enqueue(IdentityPath(x))
	for !queue.Empty() {
		item, _ := queue.Dequeue()
		p := item.(Path)
		if p.tgt == y {
			paths = append(paths, p)
		}
		if maxLen >= 0 && p.Len() >= maxLen {
			continue
		}
		for _, e := range out[p.tgt] {
			next := Vertex(c.graph.Tgt(int(e)))
			if !reaches[next] {
				continue
			}
			queue.Enqueue(p.extend(e, next))
		}
	}

	return paths, nil
}

// adjacency returns ascending out-edges per vertex and the set of vertices
// from which y is reachable (y included).
func (c *FreeCategory) adjacency(y Vertex) ([][]Edge, []bool) {
	n, m := c.graph.VertexCount(), c.graph.EdgeCount()
	out := make([][]Edge, n)
	in := make([][]Edge, n)
	var e int
	for e = 0; e < m; e++ {
		src, tgt := c.graph.Src(e), c.graph.Tgt(e)
		out[src] = append(out[src], Edge(e))
		in[tgt] = append(in[tgt], Edge(e))
	}

	reaches := make([]bool, n)
	reaches[y] = true
	stack := []Vertex{y}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range in[v] {
			u := Vertex(c.graph.Src(int(e)))
			if !reaches[u] {
				reaches[u] = true
				stack = append(stack, u)
			}
		}
	}

	return out, reaches
}
