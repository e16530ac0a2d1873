// SPDX-License-Identifier: MIT

package functor

import (
	"fmt"

	"github.com/katalvlaran/fincat/fincat"
)

// Identity returns the identity functor on c: every object and generator maps to itself.
func Identity(c *fincat.FreeCategory) (*Vector[fincat.Vertex, fincat.Path], error) {
	if c == nil {
		return nil, ErrNilCategory
	}
	gens := make([]fincat.Path, c.GeneratorCount())
	for i := range gens {
		gens[i] = c.Generator(fincat.Edge(i))
	}

	return NewVector[fincat.Vertex, fincat.Path](c, c, c.Objects(), gens)
}

// Compose returns f then g: x ↦ g(f(x)) on objects and e ↦ g(f(e)) on
// generators, where f(e) is a path in g's domain extended through g.
//
// Errors:
//   - ErrNilCategory: f or g is nil.
//   - ErrDomainMismatch: g.Domain() is not the category f.Codomain().
//   - *ShapeMismatchError: f or g no longer covers its domain graph.
//   - a codomain composition error from g when g is not functorial on f's images.
//
// Complexity: O(V + Σ|f(e)|).
func Compose[Ob, Hom any](
	f Functor[fincat.Vertex, fincat.Path],
	g Functor[Ob, Hom],
) (*Vector[Ob, Hom], error) {
	if isNil(f) || isNil(g) {
		return nil, ErrNilCategory
	}
	if !sameCategory(g.Domain(), f.Codomain()) {
		return nil, ErrDomainMismatch
	}
	if err := checkDrift(f, f.Domain()); err != nil {
		return nil, err
	}
	if err := checkDrift(g, g.Domain()); err != nil {
		return nil, err
	}

	dom := f.Domain()
	obs := make([]Ob, dom.ObjectCount())
	for i := range obs {
		obs[i] = g.MapObject(f.MapObject(fincat.Vertex(i)))
	}
	homs := make([]Hom, dom.GeneratorCount())
	var err error
	for i := range homs {
		if homs[i], err = g.MapMorphism(f.MapGenerator(fincat.Edge(i))); err != nil {
			return nil, fmt.Errorf("generator #%d: %w", i, err)
		}
	}

	return NewVector(dom, g.Codomain(), obs, homs)
}

// Equal reports whether f and g share domain and codomain and agree on every
// object and generator, using the codomain's equalities. Functors whose
// tables no longer cover the domain graph are never equal.
// Complexity: O(V + E).
func Equal[Ob, Hom any](f, g Functor[Ob, Hom]) bool {
	if !sameCategory(f.Domain(), g.Domain()) || !sameCategory(f.Codomain(), g.Codomain()) {
		return false
	}
	if checkDrift(f, f.Domain()) != nil || checkDrift(g, g.Domain()) != nil {
		return false
	}
	codom := f.Codomain()
	dom := f.Domain()
	var i int
	for i = 0; i < dom.ObjectCount(); i++ {
		if !codom.EqualOb(f.MapObject(fincat.Vertex(i)), g.MapObject(fincat.Vertex(i))) {
			return false
		}
	}
	for i = 0; i < dom.GeneratorCount(); i++ {
		if !codom.EqualHom(f.MapGenerator(fincat.Edge(i)), g.MapGenerator(fincat.Edge(i))) {
			return false
		}
	}

	return true
}
