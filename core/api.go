// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int // edges with From == To
	SourceCount int // vertices with no incoming edges
	SinkCount   int // vertices with no outgoing edges
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on mu.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, a second AddEdge(from,to,...) is rejected with ErrMultiEdgeNotAllowed.
//
// Complexity: Time O(1), Space O(1).
// Concurrency: read lock on mu.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a deterministic snapshot of flags and counts.
//
// Complexity: Time O(V+E), Space O(1) plus the returned struct.
// Concurrency: read lock on mu for the whole scan.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}
	var e Edge
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
	}
	var v int
	for v = range g.vertices {
		if len(g.in[v]) == 0 {
			stats.SourceCount++
		}
		if len(g.out[v]) == 0 {
			stats.SinkCount++
		}
	}

	return &stats
}
