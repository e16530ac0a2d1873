// SPDX-License-Identifier: MIT

package finset

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/fincat/category"
)

var (
	// ErrNegativeSize indicates a finite set of negative size.
	ErrNegativeSize = errors.New("finset: negative size")

	// ErrOutOfRange indicates a function value outside its codomain.
	ErrOutOfRange = errors.New("finset: value out of range")
)

// FinSet is the finite set {0,...,n-1}.
type FinSet int

// Size returns n.
func (s FinSet) Size() int { return int(s) }

// Contains reports whether 0 <= i < n.
func (s FinSet) Contains(i int) bool { return i >= 0 && i < int(s) }

// Elements returns 0..n-1.
func (s FinSet) Elements() []int {
	if s <= 0 {
		return []int{}
	}
	out := make([]int, s)
	for i := range out {
		out[i] = i
	}

	return out
}

// Function is a total function between finite sets. Values are copied in and
// out, so a Function is an immutable value.
type Function struct {
	codom  FinSet
	values []int
}

// NewFunction builds the function i ↦ values[i] into codom.
//
// Errors:
//   - ErrNegativeSize: codom < 0.
//   - ErrOutOfRange: some value is not an element of codom.
//
// Complexity: O(len(values)).
func NewFunction(values []int, codom FinSet) (Function, error) {
	if codom < 0 {
		return Function{}, fmt.Errorf("%w: %d", ErrNegativeSize, codom)
	}
	var i, v int
	for i, v = range values {
		if !codom.Contains(v) {
			return Function{}, fmt.Errorf("%w: f(%d)=%d not in %d", ErrOutOfRange, i, v, codom)
		}
	}

	return Function{codom: codom, values: append([]int(nil), values...)}, nil
}

// Identity returns the identity function on s.
func Identity(s FinSet) Function {
	return Function{codom: s, values: s.Elements()}
}

// Dom returns the domain FinSet(len(values)).
func (f Function) Dom() FinSet { return FinSet(len(f.values)) }

// Codom returns the codomain.
func (f Function) Codom() FinSet { return f.codom }

// Apply returns f(i). i must be in Dom(); otherwise it panics like slice indexing.
func (f Function) Apply(i int) int { return f.values[i] }

// Values returns a copy of the value table.
func (f Function) Values() []int { return append([]int(nil), f.values...) }

// Image returns the distinct values of f in ascending order.
// Complexity: O(m log m).
func (f Function) Image() []int {
	set := treeset.NewWithIntComparator()
	for _, v := range f.values {
		set.Add(v)
	}
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}

	return out
}

// Preimage returns every i with f(i) == y, ascending.
func (f Function) Preimage(y int) []int {
	out := []int{}
	for i, v := range f.values {
		if v == y {
			out = append(out, i)
		}
	}

	return out
}

// IsInjective reports whether distinct inputs have distinct values.
func (f Function) IsInjective() bool { return len(f.Image()) == len(f.values) }

// IsSurjective reports whether every element of the codomain is hit.
func (f Function) IsSurjective() bool { return len(f.Image()) == f.codom.Size() }

// Equal reports equal codomains and equal value tables.
func (f Function) Equal(g Function) bool {
	if f.codom != g.codom || len(f.values) != len(g.values) {
		return false
	}
	for i := range f.values {
		if f.values[i] != g.values[i] {
			return false
		}
	}

	return true
}

// Category is the category of finite sets and functions. The zero value is ready to use.
type Category struct{}

var _ category.Category[FinSet, Function] = Category{}

// Dom returns f.Dom().
func (Category) Dom(f Function) FinSet { return f.Dom() }

// Codom returns f.Codom().
func (Category) Codom(f Function) FinSet { return f.Codom() }

// ID returns Identity(s).
func (Category) ID(s FinSet) Function { return Identity(s) }

// Compose returns x ↦ g(f(x)); f.Codom() must equal g.Dom().
// Complexity: O(|Dom(f)|).
func (Category) Compose(f, g Function) (Function, error) {
	if f.codom != g.Dom() {
		return Function{}, fmt.Errorf("%w: codom %d, dom %d", category.ErrNotComposable, f.codom, g.Dom())
	}
	values := make([]int, len(f.values))
	for i, v := range f.values {
		values[i] = g.values[v]
	}

	return Function{codom: g.codom, values: values}, nil
}

// EqualOb compares sizes.
func (Category) EqualOb(x, y FinSet) bool { return x == y }

// EqualHom delegates to Function.Equal.
func (Category) EqualHom(f, g Function) bool { return f.Equal(g) }
