// SPDX-License-Identifier: MIT

// Package matrix counts morphisms of free categories with adjacency matrices.
//
// For a graph with V vertices, the adjacency matrix A has A[i][j] = number of
// edges i → j (parallel edges counted). Then (A^k)[i][j] is the number of
// paths i → j of length exactly k, i.e. the number of morphisms of length k
// in the free category. For an acyclic graph A is nilpotent (A^V = 0) and
//
//	H = I + A + A² + … + A^(V-1)
//
// holds the size of every hom-set.
//
// Dense is a small row-major int64 matrix; counts overflow silently past
// 2^63-1, which needs enormous graphs.
//
// Errors:
//
//	ErrInvalidDimensions – negative dimensions
//	ErrOutOfRange        – index outside the matrix
//	ErrDimensionMismatch – incompatible operands
//	ErrNegativePower     – Pow with k < 0
//	ErrGraphNil          – nil graph
//	ErrInfinite          – HomCounts on a graph with a cycle
package matrix
