// SPDX-License-Identifier: MIT

// Package finset is the finite-set layer: finite sets {0,...,n-1}, functions
// between them, and functions out of them into arbitrary values.
//
// What:
//
//   - FinSet: the set {0,...,n-1}, identified by its size.
//   - Function: a total function FinSet(m) → FinSet(n), stored as m values.
//   - Category: the category FinSet, usable as a functor codomain.
//   - DomFunction[T]: a total function FinSet(m) → T for arbitrary T; this is
//     how a functor's object map is read out as a finite function.
//
// Composition is diagrammatic: Category.Compose(f, g) is x ↦ g(f(x)).
//
// Errors:
//
//	ErrNegativeSize – a finite set of negative size.
//	ErrOutOfRange   – a function value outside its codomain.
package finset
