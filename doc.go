// SPDX-License-Identifier: MIT

// Package fincat is a toolkit for finitely presented categories: free
// categories on finite directed graphs and functors out of them.
//
// A graph G generates a category: objects are G's vertices, morphisms are
// paths, composition is concatenation. A functor out of that category is
// fixed by an image for every vertex and every edge; it is functorial iff
// each edge image runs between the images of the edge's endpoints.
//
// Packages:
//
//	core/           indexed, named directed multigraph (the presentation)
//	fincat/         paths, the free category, path expressions, hom-sets
//	functor/        functor contract, homomorphic extension, Vector functors
//	category/       the generic category contract, indiscrete categories
//	finset/         finite sets and functions; the category FinSet
//	dfs/            topological order and cycle witnesses (finiteness)
//	matrix/         hom-set sizes via adjacency-matrix powers
//	builder/        generators for standard diagram shapes
//	presentation/   YAML documents of categories and functors
//	cmd/fincat/     command-line checker
//
// Quick example:
//
//	A ──f──▶ B ──g──▶ C        F: A,B,C ↦ 1,2,3   f ↦ 1→2   g ↦ 2→3
//
// F(f ; g) = 1→3, and F is functorial; mapping f to 1→9 instead is not.
//
//	go get github.com/katalvlaran/fincat
package fincat
