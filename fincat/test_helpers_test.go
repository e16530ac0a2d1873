// SPDX-License-Identifier: MIT
// Package fincat_test contains shared fixtures for fincat tests.

package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/core"
	"github.com/katalvlaran/fincat/fincat"
)

// Fixture indices for NewTriangle: A=0, B=1, C=2; f=0 (A→B), g=1 (B→C), h=2 (A→C).
const (
	A = fincat.Vertex(0)
	B = fincat.Vertex(1)
	C = fincat.Vertex(2)

	F = fincat.Edge(0)
	G = fincat.Edge(1)
	H = fincat.Edge(2)
)

// NewTriangle RETURNS the free category on A --f--> B --g--> C with a shortcut h: A → C.
func NewTriangle(t *testing.T) *fincat.FreeCategory {
	t.Helper()

	g := core.NewGraph()
	for _, name := range []string{"A", "B", "C"} {
		_, err := g.AddVertex(name)
		require.NoError(t, err, "AddVertex(%s)", name)
	}
	for _, e := range [][3]string{{"A", "B", "f"}, {"B", "C", "g"}, {"A", "C", "h"}} {
		_, err := g.AddEdgeByName(e[0], e[1], e[2])
		require.NoError(t, err, "AddEdgeByName(%s)", e[2])
	}

	c, err := fincat.NewFreeCategory(g)
	require.NoError(t, err)

	return c
}

// NewLoop RETURNS the free monoid on one generator: vertex "*" with loop x.
func NewLoop(t *testing.T) *fincat.FreeCategory {
	t.Helper()

	g := core.NewGraph(core.WithLoops())
	star, err := g.AddVertex("*")
	require.NoError(t, err)
	_, err = g.AddEdge(star, star, "x")
	require.NoError(t, err)

	c, err := fincat.NewFreeCategory(g)
	require.NoError(t, err)

	return c
}

// bareGraph is a Graph without names: edge i runs src[i] → tgt[i].
type bareGraph struct {
	n   int
	src []int
	tgt []int
}

func (b bareGraph) VertexCount() int { return b.n }
func (b bareGraph) EdgeCount() int   { return len(b.src) }
func (b bareGraph) Src(e int) int    { return b.src[e] }
func (b bareGraph) Tgt(e int) int    { return b.tgt[e] }

// MustPath RETURNS the path through es, failing the test on error.
func MustPath(t *testing.T, c *fincat.FreeCategory, es ...fincat.Edge) fincat.Path {
	t.Helper()

	p, err := c.CoerceHom(es)
	require.NoError(t, err, "CoerceHom(%v)", es)

	return p
}

// NewChainOfFour RETURNS the unnamed chain 0 → 1 → 2 → 3 with edges 0, 1, 2.
func NewChainOfFour(t *testing.T) fincat.Graph {
	t.Helper()

	return bareGraph{n: 4, src: []int{0, 1, 2}, tgt: []int{1, 2, 3}}
}
