// SPDX-License-Identifier: MIT

// File: vector.go
// Role: Dense-array functor: object and generator images indexed by id.
// Concurrency:
//   - Vector is immutable after construction and safe for concurrent use as
//     long as the domain graph is not mutated. Growing the graph afterwards
//     leaves the new generators unmapped: CheckFunctorial reports false and
//     MapMorphism rejects paths through them.

package functor

import (
	"fmt"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/finset"
)

// Vector is a functor stored as two tables: objects[v] = F(v) and
// generators[e] = F(e).
type Vector[Ob, Hom any] struct {
	dom        fincat.FinCategory
	codom      category.Category[Ob, Hom]
	objects    []Ob
	generators []Hom
}

var _ Functor[fincat.Vertex, fincat.Path] = (*Vector[fincat.Vertex, fincat.Path])(nil)

// NewVector builds a functor from native images. Both tables are copied.
//
// Errors:
//   - ErrNilCategory: dom or codom is nil.
//   - *ShapeMismatchError: len(objects) != dom.ObjectCount() or
//     len(generators) != dom.GeneratorCount().
//
// Functoriality is not enforced here; see CheckFunctorial.
func NewVector[Ob, Hom any](
	dom fincat.FinCategory,
	codom category.Category[Ob, Hom],
	objects []Ob,
	generators []Hom,
) (*Vector[Ob, Hom], error) {
	if err := checkShape(dom, codom, len(objects), len(generators)); err != nil {
		return nil, err
	}

	return &Vector[Ob, Hom]{
		dom:        dom,
		codom:      codom,
		objects:    append([]Ob(nil), objects...),
		generators: append([]Hom(nil), generators...),
	}, nil
}

// NewVectorFrom builds a functor from raw images. When codom implements
// category.Coercer[Ob, Hom] every value goes through CoerceOb/CoerceHom (a
// free category accepts vertex indices and names, edges, edge lists, paths
// and path expressions, lifting single edges to length-1 paths). Otherwise
// each value must already be an Ob or a Hom and is stored unchanged.
//
// Errors: as NewVector, plus coercion errors (category.ErrCoerce or the
// codomain's own sentinels) prefixed with the offending table position.
func NewVectorFrom[Ob, Hom any](
	dom fincat.FinCategory,
	codom category.Category[Ob, Hom],
	objects []any,
	generators []any,
) (*Vector[Ob, Hom], error) {
	if err := checkShape(dom, codom, len(objects), len(generators)); err != nil {
		return nil, err
	}

	coerceOb, coerceHom := coercers(codom)
	obs := make([]Ob, len(objects))
	homs := make([]Hom, len(generators))
	var err error
	for i, x := range objects {
		if obs[i], err = coerceOb(x); err != nil {
			return nil, fmt.Errorf("object #%d: %w", i, err)
		}
	}
	for i, x := range generators {
		if homs[i], err = coerceHom(x); err != nil {
			return nil, fmt.Errorf("generator #%d: %w", i, err)
		}
	}

	return &Vector[Ob, Hom]{dom: dom, codom: codom, objects: obs, generators: homs}, nil
}

// Domain returns the source category.
func (v *Vector[Ob, Hom]) Domain() fincat.FinCategory { return v.dom }

// Codomain returns the target category.
func (v *Vector[Ob, Hom]) Codomain() category.Category[Ob, Hom] { return v.codom }

// MapObject returns objects[x]. Panics like slice indexing when x is out of range.
func (v *Vector[Ob, Hom]) MapObject(x fincat.Vertex) Ob { return v.objects[x] }

// MapGenerator returns generators[e]. Panics like slice indexing when e is out of range.
func (v *Vector[Ob, Hom]) MapGenerator(e fincat.Edge) Hom { return v.generators[e] }

// MapMorphism extends the generator table along p; see Extend.
//
// Errors:
//   - ErrForeignPath: p's source or an edge of p is out of range for the
//     tables, or (for a free domain) p is not a path of the domain graph.
//   - a codomain composition error, when the functor is not functorial.
//
// Complexity: O(len(p)) codomain compositions.
func (v *Vector[Ob, Hom]) MapMorphism(p fincat.Path) (Hom, error) {
	var zero Hom
	if s := p.Source(); s < 0 || int(s) >= len(v.objects) {
		return zero, fmt.Errorf("%w: source %d", ErrForeignPath, s)
	}
	for _, e := range p.Edges() {
		if e < 0 || int(e) >= len(v.generators) {
			return zero, fmt.Errorf("%w: edge %d", ErrForeignPath, e)
		}
	}
	if fc, ok := v.dom.(*fincat.FreeCategory); ok {
		if err := fc.CheckPath(p); err != nil {
			return zero, fmt.Errorf("%w: %w", ErrForeignPath, err)
		}
	}

	return Extend(v.codom, v.MapObject, v.MapGenerator, p)
}

// Apply maps a generator or a path uniformly: an Edge yields MapGenerator,
// a Path yields MapMorphism. Objects go through ApplyObject.
func (v *Vector[Ob, Hom]) Apply(m fincat.Morphism) (Hom, error) {
	switch x := m.(type) {
	case fincat.Edge:
		if x < 0 || int(x) >= len(v.generators) {
			var zero Hom
			return zero, fmt.Errorf("%w: edge %d", ErrForeignPath, x)
		}
		return v.generators[x], nil
	case fincat.Path:
		return v.MapMorphism(x)
	default:
		var zero Hom
		return zero, fmt.Errorf("%w: %T", category.ErrCoerce, m)
	}
}

// ApplyObject is MapObject with a range check instead of a panic.
func (v *Vector[Ob, Hom]) ApplyObject(x fincat.Vertex) (Ob, error) {
	if x < 0 || int(x) >= len(v.objects) {
		var zero Ob
		return zero, fmt.Errorf("%w: vertex %d", ErrForeignPath, x)
	}

	return v.objects[x], nil
}

// CheckFunctorial reports whether the tables still cover the domain and
// Failures(v) is empty.
// Complexity: O(E).
func (v *Vector[Ob, Hom]) CheckFunctorial() bool {
	if checkDrift(v, v.dom) != nil {
		return false
	}

	return len(Failures[Ob, Hom](v)) == 0
}

// tableSizes returns the lengths fixed at construction.
func (v *Vector[Ob, Hom]) tableSizes() (int, int) { return len(v.objects), len(v.generators) }

// ObjectFunction exposes the object map as a function on FinSet(ObjectCount).
func (v *Vector[Ob, Hom]) ObjectFunction() finset.DomFunction[Ob] {
	return finset.NewDomFunction(v.objects)
}

// Objects returns a copy of the object table.
func (v *Vector[Ob, Hom]) Objects() []Ob { return append([]Ob(nil), v.objects...) }

// Generators returns a copy of the generator table.
func (v *Vector[Ob, Hom]) Generators() []Hom { return append([]Hom(nil), v.generators...) }

// checkShape validates the categories and both table lengths against dom.
func checkShape[Ob, Hom any](dom fincat.FinCategory, codom category.Category[Ob, Hom], nObjects, nGenerators int) error {
	if isNil(dom) || isNil(codom) {
		return ErrNilCategory
	}
	if want := dom.ObjectCount(); nObjects != want {
		return &ShapeMismatchError{Map: MapObjects, Expected: want, Actual: nObjects}
	}
	if want := dom.GeneratorCount(); nGenerators != want {
		return &ShapeMismatchError{Map: MapGenerators, Expected: want, Actual: nGenerators}
	}

	return nil
}

// coercers returns the codomain's conversions when it has them and plain
// type assertions otherwise.
func coercers[Ob, Hom any](codom category.Category[Ob, Hom]) (func(any) (Ob, error), func(any) (Hom, error)) {
	if c, ok := codom.(category.Coercer[Ob, Hom]); ok {
		return c.CoerceOb, c.CoerceHom
	}

	return assertAs[Ob], assertAs[Hom]
}

// assertAs stores x unchanged when it already has type T.
func assertAs[T any](x any) (T, error) {
	v, ok := x.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %T is not %T", category.ErrCoerce, x, zero)
	}

	return v, nil
}
