// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Vertex, and Edge types, and provides
// thread-safe primitives for building and querying presentation graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that a vertex was given an empty name.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrDuplicateVertex indicates that a vertex name is already registered.
	ErrDuplicateVertex = errors.New("core: duplicate vertex name")

	// ErrDuplicateEdge indicates that an edge name is already registered.
	ErrDuplicateEdge = errors.New("core: duplicate edge name")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNegativeCount indicates a negative number of vertices was requested.
	ErrNegativeCount = errors.New("core: negative count")
)

// Vertex represents an object generator.
//
// ID is the dense index of the vertex (0..VertexCount()-1); Name is unique within the Graph.
type Vertex struct {
	// ID is the insertion index of this Vertex.
	ID int

	// Name is the unique human-readable label.
	Name string
}

// Edge represents a morphism generator From→To.
type Edge struct {
	// ID is the insertion index of this Edge.
	ID int

	// Name is the unique human-readable label ("e1", "e2", ... when not supplied).
	Name string

	// From is the source vertex index.
	From int

	// To is the target vertex index.
	To int
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory presentation graph.
//
// mu guards every catalog below. Vertex and edge slices are append-only, so an
// index handed out once stays valid for the lifetime of the Graph.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertices     []Vertex       // vertex index → Vertex
	edges        []Edge         // edge index → Edge
	vertexByName map[string]int // Vertex.Name → index
	edgeByName   map[string]int // Edge.Name → index

	// out[v] / in[v] hold edge indices in ascending order.
	out [][]int
	in  [][]int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexByName: make(map[string]int),
		edgeByName:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
