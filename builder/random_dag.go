// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// random_dag.go - RandomDAG(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p in [0,1] (else ErrInvalidProbability).
//   - rng required when 0 < p < 1 (ErrNeedRandSource); p = 0 and p = 1 are
//     deterministic (no edges / Complete(n)).
//   - Candidate pairs (i, j), i < j, are visited in lexicographic order with
//     one rng draw each, so a fixed seed yields a fixed graph.
//
// Complexity: O(n²) draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fincat/core"
)

// MethodRandomDAG is the error prefix of RandomDAG.
const MethodRandomDAG = "RandomDAG"

// RandomDAG returns a Constructor for a random acyclic graph: each i → j
// with i < j is present independently with probability p. The result always
// has a finite free category.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomDAG, n, MinChainNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomDAG, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomDAG, ErrNeedRandSource)
		}

		base, err := addVertices(MethodRandomDAG, g, cfg, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !draw(cfg, p) {
					continue
				}
				if err = addEdge(MethodRandomDAG, g, cfg, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// draw reports an event of probability p; the endpoints consume no randomness.
func draw(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
