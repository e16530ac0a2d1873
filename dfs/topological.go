// SPDX-License-Identifier: MIT

// TopologicalSort computes a linear ordering of vertices such that for
// every edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, a *CycleError (ErrCycleDetected) is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V + E) (adjacency, recursion stack and state)
package dfs

import "errors"

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	opts  topoOptions
	out   [][]int // out[v] = outgoing edge indices, ascending
	tgt   []int   // tgt[e] = target vertex of edge e
	state []int   // White/Gray/Black per vertex
	entry []int   // entry[v] = len(stack) when v turned Gray
	stack []int   // edges on the current DFS path
	order []int   // recorded post-order sequence
	cycle []int   // witness, set when a back-edge is found
}

// TopologicalSort computes a topological ordering of all vertices in g.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns a *CycleError.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort(g Graph, options ...TopoOption) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	s := newTopoSorter(g, opts)
	// Drive DFS from every unvisited vertex, ascending.
	var v int
	for v = range s.state {
		if s.state[v] != White {
			continue
		}
		if err := s.visit(v); err != nil {
			if s.cycle != nil {
				return nil, &CycleError{Edges: s.cycle}
			}
			return nil, err
		}
	}
	// Reverse post-order to produce topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// FindCycle returns a witness cycle (edge indices) and true, or nil and false
// when g is acyclic. Self-loops are cycles of length one.
func FindCycle(g Graph, options ...TopoOption) ([]int, bool, error) {
	_, err := TopologicalSort(g, options...)
	if err == nil {
		return nil, false, nil
	}
	var ce *CycleError
	if errors.As(err, &ce) {
		return ce.Edges, true, nil
	}

	return nil, false, err
}

// IsAcyclic reports whether g has no directed cycle. A nil graph is acyclic.
func IsAcyclic(g Graph) bool {
	if g == nil {
		return true
	}
	_, err := TopologicalSort(g)

	return err == nil
}

// newTopoSorter snapshots the adjacency of g once so visit is O(out(v)).
func newTopoSorter(g Graph, opts topoOptions) *topoSorter {
	n, m := g.VertexCount(), g.EdgeCount()
	s := &topoSorter{
		opts:  opts,
		out:   make([][]int, n),
		tgt:   make([]int, m),
		state: make([]int, n),
		entry: make([]int, n),
		order: make([]int, 0, n),
	}
	var e int
	for e = 0; e < m; e++ {
		src := g.Src(e)
		s.out[src] = append(s.out[src], e)
		s.tgt[e] = g.Tgt(e)
	}

	return s
}

// visit performs a DFS from v, marking states and detecting back-edges.
func (s *topoSorter) visit(v int) error {
	// 1. Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2. Mark as in-progress (Gray)
	s.state[v] = Gray
	s.entry[v] = len(s.stack)

	// 3. Explore each outgoing edge
	var e int
	for _, e = range s.out[v] {
		u := s.tgt[e]
		switch s.state[u] {
		case Gray:
			// Back-edge: the stack from u's entry down to v, closed by e.
			s.cycle = append(append([]int(nil), s.stack[s.entry[u]:]...), e)
			return ErrCycleDetected
		case White:
			s.stack = append(s.stack, e)
			if err := s.visit(u); err != nil {
				return err
			}
			s.stack = s.stack[:len(s.stack)-1]
		}
	}

	// 4. Mark as fully explored (Black) and record post-order
	s.state[v] = Black
	s.order = append(s.order, v)

	return nil
}
