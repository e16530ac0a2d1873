// SPDX-License-Identifier: MIT

package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/fincat"
)

func TestNewFreeCategory_Nil(t *testing.T) {
	_, err := fincat.NewFreeCategory(nil)
	assert.ErrorIs(t, err, fincat.ErrNilGraph)
}

func TestFreeCategory_Counts(t *testing.T) {
	c := NewTriangle(t)

	assert.Equal(t, 3, c.ObjectCount())
	assert.Equal(t, 3, c.GeneratorCount())
	assert.Equal(t, []fincat.Vertex{A, B, C}, c.Objects())
	assert.Equal(t, []fincat.Edge{F, G, H}, c.Generators())
	assert.True(t, c.HasObject(C))
	assert.False(t, c.HasObject(3))
	assert.False(t, c.HasObject(-1))
	assert.True(t, c.HasGenerator(H))
	assert.False(t, c.HasGenerator(3))
}

func TestFreeCategory_Contract(t *testing.T) {
	c := NewTriangle(t)
	g := c.Generator(G)

	assert.Equal(t, B, c.Dom(g))
	assert.Equal(t, C, c.Codom(g))
	assert.True(t, c.ID(B).IsIdentity())
	assert.True(t, c.EqualOb(A, A))
	assert.False(t, c.EqualOb(A, B))
	assert.True(t, c.EqualHom(g, c.Generator(G)))
	assert.True(t, category.Composable[fincat.Vertex, fincat.Path](c, c.Generator(F), g))
	assert.False(t, category.Composable[fincat.Vertex, fincat.Path](c, g, c.Generator(F)))
}

// TestFreeCategory_IdentityLaw checks id;p = p = p;id for every generator and composite.
func TestFreeCategory_IdentityLaw(t *testing.T) {
	c := NewTriangle(t)
	paths := []fincat.Path{
		c.Generator(F), c.Generator(G), c.Generator(H),
		MustPath(t, c, F, G), c.ID(A), c.ID(C),
	}

	for _, p := range paths {
		left, err := c.Compose(c.ID(c.Dom(p)), p)
		require.NoError(t, err, "id;%v", p)
		assert.True(t, c.EqualHom(left, p), "id;%v = %v", p, left)

		right, err := c.Compose(p, c.ID(c.Codom(p)))
		require.NoError(t, err, "%v;id", p)
		assert.True(t, c.EqualHom(right, p), "%v;id = %v", p, right)
	}
}

func TestFreeCategory_Associativity(t *testing.T) {
	g := NewChainOfFour(t)
	c, err := fincat.NewFreeCategory(g)
	require.NoError(t, err)
	p1, p2, p3 := c.Generator(0), c.Generator(1), c.Generator(2)

	l, err := c.Compose(p1, p2)
	require.NoError(t, err)
	l, err = c.Compose(l, p3)
	require.NoError(t, err)

	r, err := c.Compose(p2, p3)
	require.NoError(t, err)
	r, err = c.Compose(p1, r)
	require.NoError(t, err)

	assert.True(t, l.Equal(r))
	assert.Equal(t, []fincat.Edge{0, 1, 2}, l.Edges())

	all, err := category.ComposeAll[fincat.Vertex, fincat.Path](c, p1, p2, p3)
	require.NoError(t, err)
	assert.True(t, all.Equal(l))
}

func TestFreeCategory_ComposeMismatch(t *testing.T) {
	c := NewTriangle(t)

	_, err := c.Compose(c.Generator(G), c.Generator(F))
	assert.ErrorIs(t, err, fincat.ErrBoundaryMismatch)
	assert.ErrorIs(t, err, category.ErrNotComposable)

	_, err = category.ComposeAll[fincat.Vertex, fincat.Path](c, c.Generator(F), c.Generator(H))
	assert.ErrorIs(t, err, category.ErrNotComposable)
}

func TestFreeCategory_CheckPath(t *testing.T) {
	c := NewTriangle(t)

	require.NoError(t, c.CheckPath(MustPath(t, c, F, G)))
	require.NoError(t, c.CheckPath(c.ID(B)))

	assert.ErrorIs(t, c.CheckPath(fincat.IdentityPath(7)), fincat.ErrInvalidPath)

	// A path built over another graph: edge 0 of the chain runs A → B, edge 5 does not exist here.
	other, err := fincat.NewFreeCategory(bareGraph{n: 6, src: []int{0, 0, 0, 0, 0, 4}, tgt: []int{1, 1, 1, 1, 1, 5}})
	require.NoError(t, err)
	foreign := other.Generator(5)
	assert.ErrorIs(t, c.CheckPath(foreign), fincat.ErrInvalidPath)
}

func TestFreeCategory_EmptyGraph(t *testing.T) {
	c, err := fincat.NewFreeCategory(bareGraph{})
	require.NoError(t, err)

	assert.Equal(t, 0, c.ObjectCount())
	assert.Equal(t, 0, c.GeneratorCount())
	assert.Empty(t, c.Objects())
	assert.True(t, c.IsFinite())
}
