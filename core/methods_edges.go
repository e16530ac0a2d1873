// SPDX-License-Identifier: MIT

// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeByName/GetEdge/EdgeID/Edges/EdgeCount,
//       plus the Src/Tgt lookups that the category layer consumes.
// Determinism:
//   - Edges() returns edges in ascending index order.
//   - Unnamed edges are called "e" + decimal(index+1).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "fmt"

// edgeNamePrefix is the textual prefix for generated edge names.
const edgeNamePrefix = 'e'

// AddEdge creates a new edge from→to and returns its index.
// An empty name is replaced by a generated one ("e1", "e2", ...).
//
// Steps:
//  1. Lock mu.
//  2. Validate endpoints (ErrVertexNotFound).
//  3. Loop and multi-edge policy (ErrLoopNotAllowed, ErrMultiEdgeNotAllowed).
//  4. Resolve and check the name (ErrDuplicateEdge).
//  5. Append to the catalog and adjacency buckets.
//
// Complexity: O(1) amortized, plus O(out(from)) for the multi-edge check when disabled.
func (g *Graph) AddEdge(from, to int, name string) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 0 || from >= len(g.vertices) {
		return 0, fmt.Errorf("%w: source %d", ErrVertexNotFound, from)
	}
	if to < 0 || to >= len(g.vertices) {
		return 0, fmt.Errorf("%w: target %d", ErrVertexNotFound, to)
	}
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if !g.allowMulti {
		var e int
		for _, e = range g.out[from] {
			if g.edges[e].To == to {
				return 0, ErrMultiEdgeNotAllowed
			}
		}
	}

	id := len(g.edges)
	if name == "" {
		name = generatedName(edgeNamePrefix, id)
	}
	if _, exists := g.edgeByName[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateEdge, name)
	}

	g.edges = append(g.edges, Edge{ID: id, Name: name, From: from, To: to})
	g.edgeByName[name] = id
	g.out[from] = append(g.out[from], id)
	g.in[to] = append(g.in[to], id)

	return id, nil
}

// AddEdgeByName is AddEdge with endpoints given by vertex name.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeByName(from, to, name string) (int, error) {
	src, err := g.VertexID(from)
	if err != nil {
		return 0, err
	}
	tgt, err := g.VertexID(to)
	if err != nil {
		return 0, err
	}

	return g.AddEdge(src, tgt, name)
}

// GetEdge returns the Edge with index e, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) GetEdge(e int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if e < 0 || e >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, e)
	}

	return g.edges[e], nil
}

// HasEdge reports whether e is a valid edge index.
// Complexity: O(1).
func (g *Graph) HasEdge(e int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return e >= 0 && e < len(g.edges)
}

// EdgeID resolves an edge name to its index.
// Returns ErrEdgeNotFound for unknown names.
// Complexity: O(1).
func (g *Graph) EdgeID(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edgeByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrEdgeNotFound, name)
	}

	return e, nil
}

// EdgeName returns the name of edge e.
// e must be a valid index; an out-of-range index panics like slice indexing.
// Complexity: O(1).
func (g *Graph) EdgeName(e int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[e].Name
}

// Src returns the source vertex of edge e.
// e must be a valid index; an out-of-range index panics like slice indexing.
// Complexity: O(1).
func (g *Graph) Src(e int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[e].From
}

// Tgt returns the target vertex of edge e.
// e must be a valid index; an out-of-range index panics like slice indexing.
// Complexity: O(1).
func (g *Graph) Tgt(e int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges[e].To
}

// Edges returns a snapshot of all edges in ascending index order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
