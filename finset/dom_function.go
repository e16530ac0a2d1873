// SPDX-License-Identifier: MIT

package finset

// DomFunction is a total function from a finite set into arbitrary values of T.
type DomFunction[T any] struct {
	values []T
}

// NewDomFunction builds i ↦ values[i] on FinSet(len(values)). values is copied.
func NewDomFunction[T any](values []T) DomFunction[T] {
	return DomFunction[T]{values: append([]T(nil), values...)}
}

// Dom returns FinSet(len(values)).
func (f DomFunction[T]) Dom() FinSet { return FinSet(len(f.values)) }

// Apply returns f(i). i must be in Dom(); otherwise it panics like slice indexing.
func (f DomFunction[T]) Apply(i int) T { return f.values[i] }

// Values returns a copy of the value table.
func (f DomFunction[T]) Values() []T { return append([]T(nil), f.values...) }

// PostCompose returns i ↦ fn(f(i)).
func PostCompose[T, U any](f DomFunction[T], fn func(T) U) DomFunction[U] {
	out := make([]U, len(f.values))
	for i, v := range f.values {
		out[i] = fn(v)
	}

	return DomFunction[U]{values: out}
}
