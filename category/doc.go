// SPDX-License-Identifier: MIT

// Package category declares the generic category contract consumed by functors
// as their codomain, together with a couple of small concrete categories.
//
// A Category[Ob, Hom] supplies:
//
//	Dom(f) Ob, Codom(f) Ob   // endpoints of a morphism
//	ID(x) Hom                // identity at an object
//	Compose(f, g) (Hom, error) // diagrammatic: first f, then g
//	EqualOb, EqualHom        // the category's own notion of equality
//
// Composition is diagrammatic throughout the module: Compose(f, g) is "f then g"
// and is defined only when Codom(f) equals Dom(g).
//
// Categories may additionally implement Coercer to turn raw, loosely typed
// values (indices, names, edge lists) into their native objects and morphisms;
// functor construction uses it to accept bare identifiers.
//
// Concrete categories:
//
//	Indiscrete[T] – objects are values of T, exactly one Arrow between any two.
//
// Errors:
//
//	ErrNotComposable – Compose called with misaligned endpoints.
//	ErrCoerce        – a raw value has no native counterpart.
package category
