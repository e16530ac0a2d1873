// SPDX-License-Identifier: MIT

package functor

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/fincat"
)

// Sentinel errors for functor construction and application.
var (
	ErrShapeMismatch  = errors.New("functor: image table has wrong length")
	ErrNilCategory    = errors.New("functor: nil category")
	ErrForeignPath    = errors.New("functor: path not in domain")
	ErrDomainMismatch = errors.New("functor: domain does not match codomain")
)

// Table names carried by ShapeMismatchError.Map.
const (
	MapObjects    = "objects"
	MapGenerators = "generators"
)

// Functor is a functor from a finitely presented category into a category
// with objects Ob and morphisms Hom.
type Functor[Ob, Hom any] interface {
	// Domain returns the finitely presented source category.
	Domain() fincat.FinCategory
	// Codomain returns the target category.
	Codomain() category.Category[Ob, Hom]
	// MapObject returns F(v). v must be an object of Domain().
	MapObject(v fincat.Vertex) Ob
	// MapGenerator returns F(e). e must be a generator of Domain().
	MapGenerator(e fincat.Edge) Hom
	// MapMorphism returns the homomorphic extension of MapGenerator to p.
	// It fails when a codomain composition fails, which only happens for
	// functors that are not functorial.
	MapMorphism(p fincat.Path) (Hom, error)
	// CheckFunctorial reports whether every generator image has the mapped
	// endpoints in the codomain.
	CheckFunctorial() bool
}

// ShapeMismatchError reports an image table whose length differs from the
// domain's object or generator count.
type ShapeMismatchError struct {
	Map      string // MapObjects or MapGenerators
	Expected int
	Actual   int
}

// Error implements error.
func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: %s: expected %d, got %d", ErrShapeMismatch, e.Map, e.Expected, e.Actual)
}

// Is matches ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// Failure describes a generator e : s → t whose image does not run
// F(s) → F(t) in the codomain.
type Failure[Ob any] struct {
	Edge    fincat.Edge
	WantSrc Ob // F(s)
	WantTgt Ob // F(t)
	GotSrc  Ob // codomain Dom(F(e))
	GotTgt  Ob // codomain Codom(F(e))
}

// String renders "edge 0: want 1 -> 2, got 1 -> 9".
func (f Failure[Ob]) String() string {
	return fmt.Sprintf("edge %d: want %v -> %v, got %v -> %v", f.Edge, f.WantSrc, f.WantTgt, f.GotSrc, f.GotTgt)
}

// tableShape is implemented by functors whose image tables were sized once,
// at construction.
type tableShape interface {
	tableSizes() (objects, generators int)
}

// checkDrift reports a *ShapeMismatchError when fn keeps image tables that no
// longer match its domain's counts (the domain graph grew after construction).
func checkDrift(fn any, dom fincat.FinCategory) error {
	t, ok := fn.(tableShape)
	if !ok {
		return nil
	}
	nObjects, nGenerators := t.tableSizes()
	if want := dom.ObjectCount(); nObjects != want {
		return &ShapeMismatchError{Map: MapObjects, Expected: want, Actual: nObjects}
	}
	if want := dom.GeneratorCount(); nGenerators != want {
		return &ShapeMismatchError{Map: MapGenerators, Expected: want, Actual: nGenerators}
	}

	return nil
}

// isNil reports a nil interface or an interface holding a nil pointer, map,
// slice, func or channel.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// sameCategory reports whether a and b are the same category value. Values
// of non-comparable dynamic types are never the same.
func sameCategory(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}

	return a == b
}
