// SPDX-License-Identifier: MIT

// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones preserve every vertex and edge index and name.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.options()...)
	var v Vertex
	for _, v = range g.vertices {
		clone.appendVertex(v.Name)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges, and adjacency.
// Mutating the clone never affects the source, which makes Clone the way to
// extend a presentation that categories or functors already refer to.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(g.options()...)
	var v Vertex
	for _, v = range g.vertices {
		clone.appendVertex(v.Name)
	}
	var e Edge
	for _, e = range g.edges {
		clone.edges = append(clone.edges, e)
		clone.edgeByName[e.Name] = e.ID
		clone.out[e.From] = append(clone.out[e.From], e.ID)
		clone.in[e.To] = append(clone.in[e.To], e.ID)
	}

	return clone
}

// options reconstructs the GraphOption list that reproduces g's flags.
// Caller must hold at least the read lock.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}
