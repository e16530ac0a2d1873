// SPDX-License-Identifier: MIT

// Package builder generates the generating graphs of common diagram shapes,
// so that standard index categories can be built in one call.
//
//	c, err := builder.BuildCategory(nil, nil, builder.Chain(3))  // A → B → C
//
// Shapes (all directed; vertices named by the ID scheme, edges by the edge scheme):
//
//	Chain(n)        v0 → v1 → … → v(n-1)          walking path; finite
//	Cycle(n)        v0 → … → v(n-1) → v0          n = 1 is a loop (needs core.WithLoops)
//	Star(n)         center → leaf_i, i < n        cone / discrete span
//	Bouquet(k)      one vertex, k loops           free monoid on k generators
//	Parallel(k)     two vertices, k edges a → b   k = 2 is the equalizer shape
//	Complete(n)     i → j for every i < j         complete DAG (transitive tournament)
//	Grid(r, c)      right and down edges          2×2 is the commutative-square shape
//	RandomDAG(n, p) i → j, i < j, probability p   needs WithSeed or WithRand
//
// Options resolve into a per-call configuration; nothing is global.
// Determinism: identical inputs, options, seed and constructor order give
// identical graphs with identical indices.
//
// Errors:
//
//	ErrTooFewVertices     – a shape parameter below its minimum
//	ErrInvalidProbability – p outside [0, 1]
//	ErrNeedRandSource     – RandomDAG with 0 < p < 1 and no rng
//	ErrConstructFailed    – a nil constructor
package builder
