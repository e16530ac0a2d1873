// SPDX-License-Identifier: MIT

// Package dfs defines the graph contract, options and errors for depth-first traversal.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to TopologicalSort or FindCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Graph is the read-only view traversals need: vertices 0..VertexCount()-1,
// edges 0..EdgeCount()-1, and their endpoints.
type Graph interface {
	VertexCount() int
	EdgeCount() int
	Src(e int) int
	Tgt(e int) int
}

// CycleError carries a witness cycle as edge indices e0,e1,...,ek where
// Tgt(ei) == Src(ei+1) and Tgt(ek) == Src(e0).
type CycleError struct {
	Edges []int
}

// Error implements error.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%v: edges %v", ErrCycleDetected, e.Edges)
}

// Is reports ErrCycleDetected equivalence for errors.Is.
func (e *CycleError) Is(target error) bool { return target == ErrCycleDetected }

// TopoOption configures optional behavior for TopologicalSort and FindCycle.
type TopoOption func(*topoOptions)

// topoOptions holds traversal settings, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
