// SPDX-License-Identifier: MIT

// Package functor maps finitely presented categories into arbitrary ones.
//
// A functor out of a free category is determined by two finite tables: an
// object image for every vertex and a morphism image for every generating
// edge. Everything else follows:
//
//   - MapMorphism extends the generator table homomorphically, folding a
//     path left to right in the codomain, seeded with the identity at the
//     image of the path's source (so identities map to identities).
//   - CheckFunctorial verifies, per generator e : s → t, that F(e) runs from
//     F(s) to F(t) in the codomain. Generator-level checking suffices: by
//     induction on path length the extension is then well-typed on every path.
//
// Vector is the dense-array realization. NewVector takes native images;
// NewVectorFrom coerces raw values (indices, names, edge lists, path
// expressions) through the codomain when it implements category.Coercer.
//
// The algebra on top: Identity, Compose, Equal, and Failures for diagnostics.
//
// Errors:
//
//	ErrShapeMismatch  – image table length differs from the domain (*ShapeMismatchError)
//	ErrNilCategory    – nil domain or codomain
//	ErrForeignPath    – MapMorphism/Apply on a path outside the domain
//	ErrDomainMismatch – Compose(f, g) where g does not start at f's codomain
package functor
