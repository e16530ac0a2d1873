// SPDX-License-Identifier: MIT
// Package functor_test contains shared fixtures for functor tests.

package functor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/core"
	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/functor"
)

// Chain fixture indices: A=0, B=1, C=2; f=0 (A→B), g=1 (B→C).
const (
	A = fincat.Vertex(0)
	B = fincat.Vertex(1)
	C = fincat.Vertex(2)

	F = fincat.Edge(0)
	G = fincat.Edge(1)
)

// ints is the indiscrete category on int, the codomain of the numeric fixtures.
type ints = category.Indiscrete[int]

// arrow is shorthand for an arrow of ints.
func arrow(src, tgt int) category.Arrow[int] {
	return category.Arrow[int]{Src: src, Tgt: tgt}
}

// NewFree RETURNS the free category on the named graph with the given
// vertices and edges {src, tgt, name}.
func NewFree(t *testing.T, vertices []string, edges [][3]string) *fincat.FreeCategory {
	t.Helper()

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, name := range vertices {
		_, err := g.AddVertex(name)
		require.NoError(t, err, "AddVertex(%s)", name)
	}
	for _, e := range edges {
		_, err := g.AddEdgeByName(e[0], e[1], e[2])
		require.NoError(t, err, "AddEdgeByName(%s)", e[2])
	}

	c, err := fincat.NewFreeCategory(g)
	require.NoError(t, err)

	return c
}

// NewChain RETURNS the free category on A --f--> B --g--> C.
func NewChain(t *testing.T) *fincat.FreeCategory {
	t.Helper()

	return NewFree(t, []string{"A", "B", "C"}, [][3]string{{"A", "B", "f"}, {"B", "C", "g"}})
}

// NewNumbered RETURNS the chain functor A,B,C ↦ 1,2,3 with f ↦ fImage and g ↦ 2→3.
func NewNumbered(t *testing.T, dom *fincat.FreeCategory, fImage category.Arrow[int]) *functor.Vector[int, category.Arrow[int]] {
	t.Helper()

	fn, err := functor.NewVector[int, category.Arrow[int]](
		dom, ints{},
		[]int{1, 2, 3},
		[]category.Arrow[int]{fImage, arrow(2, 3)},
	)
	require.NoError(t, err)

	return fn
}
