// SPDX-License-Identifier: MIT

// Package core provides the graph that finitely presented categories are built on:
// a thread-safe, in-memory, directed multigraph with dense integer indices and
// human-readable names for both vertices and edges.
//
// The Graph G = (V,E) is the "generators" half of a category presentation:
//
//   - Vertices are indexed 0..V-1 in insertion order and carry a unique Name.
//   - Edges are indexed 0..E-1 in insertion order, carry a unique Name and
//     fixed endpoints From→To (source and target).
//   - Self-loops (WithLoops) and parallel edges (WithMultiEdges) are opt-in;
//     presentations of monoids need both.
//   - Indices never change once assigned. There is no removal API.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(name string) (int, error)   // O(1)
//	AddVertices(n int) ([]int, error)     // O(n), auto names "v1", "v2", ...
//	VertexID(name string) (int, error)    // O(1)
//	VertexName(v int) string              // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, name string) (int, error)          // O(1) amortized
//	AddEdgeByName(from, to, name string) (int, error)        // O(1) amortized
//	EdgeID(name string) (int, error)                         // O(1)
//	GetEdge(e int) (Edge, error)                             // O(1)
//
//	// Source/target lookups consumed by fincat and dfs
//	Src(e int) int, Tgt(e int) int        // O(1), panic on out-of-range like slice indexing
//	VertexCount() int, EdgeCount() int    // O(1)
//
//	// Enumeration (deterministic, ascending index)
//	Vertices() []Vertex, Edges() []Edge, OutEdges(v) []int, InEdges(v) []int
//
//	// Cloning & stats
//	Clone() *Graph, Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexName     – zero-length vertex name
//	ErrDuplicateVertex     – vertex name already taken
//	ErrDuplicateEdge       – edge name already taken
//	ErrVertexNotFound      – unknown vertex index or name
//	ErrEdgeNotFound        – unknown edge index or name
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrNegativeCount       – AddVertices with n < 0
package core
