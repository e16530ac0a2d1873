// SPDX-License-Identifier: MIT

package category

import "fmt"

// Arrow is the unique morphism Src→Tgt of an indiscrete category.
type Arrow[T comparable] struct {
	Src T
	Tgt T
}

// String renders the arrow as "src->tgt".
func (a Arrow[T]) String() string {
	return fmt.Sprintf("%v->%v", a.Src, a.Tgt)
}

// Indiscrete is the chaotic category on the values of T: every ordered pair of
// objects has exactly one morphism between them, so a functor into it is
// determined by its object map and functoriality reduces to endpoint agreement.
//
// The zero value is ready to use.
type Indiscrete[T comparable] struct{}

// Dom returns a.Src.
func (Indiscrete[T]) Dom(a Arrow[T]) T { return a.Src }

// Codom returns a.Tgt.
func (Indiscrete[T]) Codom(a Arrow[T]) T { return a.Tgt }

// ID returns x->x.
func (Indiscrete[T]) ID(x T) Arrow[T] { return Arrow[T]{Src: x, Tgt: x} }

// Compose returns f.Src->g.Tgt when f.Tgt == g.Src.
func (Indiscrete[T]) Compose(f, g Arrow[T]) (Arrow[T], error) {
	if f.Tgt != g.Src {
		return Arrow[T]{}, fmt.Errorf("%w: %v then %v", ErrNotComposable, f, g)
	}

	return Arrow[T]{Src: f.Src, Tgt: g.Tgt}, nil
}

// EqualOb compares with ==.
func (Indiscrete[T]) EqualOb(x, y T) bool { return x == y }

// EqualHom compares with ==.
func (Indiscrete[T]) EqualHom(f, g Arrow[T]) bool { return f == g }
