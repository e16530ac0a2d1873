// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// shapes.go - deterministic diagram shapes.
//
// Contract (every constructor):
//   - Validates its parameters first (ErrTooFewVertices).
//   - Adds its vertices in ascending local index order, then its edges in
//     the documented order; indices are graph-wide, after anything already in g.
//   - Honors core's loop and multi-edge policy: shapes that need loops or
//     parallel edges surface core.ErrLoopNotAllowed / core.ErrMultiEdgeNotAllowed.
//
// Complexity: O(vertices + edges) of the shape.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fincat/core"
)

// Method names used as error prefixes, and parameter minima.
const (
	MethodChain    = "Chain"
	MethodCycle    = "Cycle"
	MethodStar     = "Star"
	MethodBouquet  = "Bouquet"
	MethodParallel = "Parallel"
	MethodComplete = "Complete"
	MethodGrid     = "Grid"

	MinChainNodes = 1
	MinCycleNodes = 1
	MinStarLeaves = 0
	MinGridDim    = 1
)

// Chain returns a Constructor for v0 → v1 → … → v(n-1), the walking path on
// n objects. Edges are emitted i → i+1 for ascending i.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodChain, n, MinChainNodes, ErrTooFewVertices)
		}
		base, err := addVertices(MethodChain, g, cfg, n)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			if err = addEdge(MethodChain, g, cfg, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for v0 → … → v(n-1) → v0. Edges are emitted
// i → (i+1) mod n for ascending i; n = 1 is a single loop.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, cfg, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a center with n leaves: center → leaf_i.
// The center is the first vertex; n = 0 is a lone object.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarLeaves {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarLeaves, ErrTooFewVertices)
		}
		center, err := addVertices(MethodStar, g, cfg, n+1)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i <= n; i++ {
			if err = addEdge(MethodStar, g, cfg, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Bouquet returns a Constructor for one vertex with k loops: the free monoid
// on k generators. Needs core.WithLoops (and core.WithMultiEdges for k > 1).
func Bouquet(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", MethodBouquet, k, ErrTooFewVertices)
		}
		v, err := addVertices(MethodBouquet, g, cfg, 1)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < k; i++ {
			if err = addEdge(MethodBouquet, g, cfg, v, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Parallel returns a Constructor for two vertices a, b with k edges a → b.
// k = 2 is the shape of equalizers. Needs core.WithMultiEdges for k > 1.
func Parallel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d < 0: %w", MethodParallel, k, ErrTooFewVertices)
		}
		a, err := addVertices(MethodParallel, g, cfg, 2)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < k; i++ {
			if err = addEdge(MethodParallel, g, cfg, a, a+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for the complete DAG on n vertices: i → j
// for every i < j, emitted in lexicographic (i, j) order. Its free category
// has exactly 2^(j-i-1) morphisms i → j for i < j.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinChainNodes, ErrTooFewVertices)
		}
		base, err := addVertices(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols grid with edges right
// (r,c) → (r,c+1) and down (r,c) → (r+1,c). Vertex (r,c) has local index
// r*cols+c; edges are emitted per vertex in row-major order, right before down.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base, err := addVertices(MethodGrid, g, cfg, rows*cols)
		if err != nil {
			return err
		}
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err = addEdge(MethodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(MethodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
