// SPDX-License-Identifier: MIT

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in ascending index (insertion) order.
//   - AddVertices() names vertices "v<index+1>".
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.
package core

import (
	"fmt"
	"strconv"
)

// vertexNamePrefix is the textual prefix for generated vertex names.
const vertexNamePrefix = 'v'

// AddVertex registers a new vertex and returns its index.
//
// Errors:
//   - ErrEmptyVertexName: if name == "".
//   - ErrDuplicateVertex: if name is already registered.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on mu.
func (g *Graph) AddVertex(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyVertexName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertexByName[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	return g.appendVertex(name), nil
}

// AddVertices registers n vertices with generated names and returns their indices.
// Either all n vertices are added or none is.
//
// Errors:
//   - ErrNegativeCount: if n < 0.
//   - ErrDuplicateVertex: if a generated name collides with an existing vertex.
//
// Complexity: O(n).
// Concurrency: write lock on mu.
func (g *Graph) AddVertices(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Validate every generated name before mutating so the call stays atomic.
	base := len(g.vertices)
	var i int
	for i = 0; i < n; i++ {
		name := generatedName(vertexNamePrefix, base+i)
		if _, exists := g.vertexByName[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
		}
	}

	ids := make([]int, n)
	for i = 0; i < n; i++ {
		ids[i] = g.appendVertex(generatedName(vertexNamePrefix, base+i))
	}

	return ids, nil
}

// HasVertex reports whether v is a valid vertex index.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < len(g.vertices)
}

// VertexID resolves a vertex name to its index.
// Returns ErrVertexNotFound for unknown names.
// Complexity: O(1).
func (g *Graph) VertexID(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertexByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return v, nil
}

// VertexName returns the name of vertex v.
// v must be a valid index; an out-of-range index panics like slice indexing.
// Complexity: O(1).
func (g *Graph) VertexName(v int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[v].Name
}

// Vertices returns a snapshot of all vertices in ascending index order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// appendVertex stores a vertex and bootstraps its adjacency buckets.
// Caller must hold the write lock.
func (g *Graph) appendVertex(name string) int {
	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Name: name})
	g.vertexByName[name] = id
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id
}

// generatedName returns prefix + decimal(index+1) without fmt allocations.
func generatedName(prefix byte, index int) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, prefix)
	buf = strconv.AppendInt(buf, int64(index+1), 10)

	return string(buf)
}
