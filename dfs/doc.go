// SPDX-License-Identifier: MIT

// Package dfs implements depth-first topological sort and cycle detection over
// any graph that exposes vertex/edge counts and per-edge source/target lookups
// (core.Graph satisfies it, and so does every fincat.Graph).
//
// What:
//
//   - TopologicalSort: a linear ordering of vertices such that for every edge
//     u→v, u appears before v; ErrCycleDetected if the graph has a cycle.
//   - FindCycle: a witness cycle as a contiguous sequence of edge indices.
//   - IsAcyclic: convenience wrapper used by the free category to decide
//     whether it has finitely many morphisms.
//
// Why:
//   - The free category on a graph has finitely many morphisms exactly when the
//     graph is acyclic; a cycle (including a self-loop) generates infinitely
//     many distinct paths.
//
// Determinism:
//
//	Vertices are started in ascending index order and out-edges are followed in
//	ascending edge index order, so orders and witness cycles are reproducible.
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V+E)
//   - FindCycle:       Time O(V+E), Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrCycleDetected   cycle discovered (errors.As to *CycleError for the witness)
//   - context.Canceled   traversal canceled via WithCancelContext
package dfs
