// SPDX-License-Identifier: MIT

package category

import (
	"errors"
	"fmt"
)

var (
	// ErrNotComposable indicates Compose(f, g) with Codom(f) != Dom(g).
	ErrNotComposable = errors.New("category: morphisms not composable")

	// ErrCoerce indicates a raw value that cannot be read as an object or morphism.
	ErrCoerce = errors.New("category: cannot coerce value")
)

// Category is the contract of an arbitrary, possibly infinite, category.
//
// Implementations must be safe for concurrent use when their values are
// immutable; every implementation in this module is.
type Category[Ob, Hom any] interface {
	// Dom returns the domain (source object) of f.
	Dom(f Hom) Ob
	// Codom returns the codomain (target object) of f.
	Codom(f Hom) Ob
	// ID returns the identity morphism at x.
	ID(x Ob) Hom
	// Compose returns f then g, or an error wrapping ErrNotComposable
	// (or a more specific sentinel) when the endpoints do not align.
	Compose(f, g Hom) (Hom, error)
	// EqualOb reports object equality.
	EqualOb(x, y Ob) bool
	// EqualHom reports morphism equality.
	EqualHom(f, g Hom) bool
}

// Coercer is implemented by categories that can read raw values as their
// native objects and morphisms. Errors must wrap ErrCoerce or a more
// specific sentinel of the implementing package.
type Coercer[Ob, Hom any] interface {
	CoerceOb(x any) (Ob, error)
	CoerceHom(x any) (Hom, error)
}

// ComposeAll composes fs left to right. With no morphisms there is no
// object to take an identity at, so at least one is required.
//
// Complexity: O(len(fs)) calls to Compose.
func ComposeAll[Ob, Hom any](c Category[Ob, Hom], fs ...Hom) (Hom, error) {
	var zero Hom
	if len(fs) == 0 {
		return zero, fmt.Errorf("%w: empty composite", ErrNotComposable)
	}
	acc := fs[0]
	var i int
	var err error
	for i = 1; i < len(fs); i++ {
		if acc, err = c.Compose(acc, fs[i]); err != nil {
			return zero, fmt.Errorf("compose #%d: %w", i, err)
		}
	}

	return acc, nil
}

// Composable reports whether Compose(f, g) is defined in c.
func Composable[Ob, Hom any](c Category[Ob, Hom], f, g Hom) bool {
	return c.EqualOb(c.Codom(f), c.Dom(g))
}
