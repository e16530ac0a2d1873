// SPDX-License-Identifier: MIT

package fincat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/fincat"
)

func TestPathFromEdge(t *testing.T) {
	c := NewTriangle(t)

	p := fincat.PathFromEdge(c.Graph(), G)
	assert.Equal(t, B, p.Source())
	assert.Equal(t, C, p.Target())
	assert.Equal(t, []fincat.Edge{G}, p.Edges())
	assert.Equal(t, 1, p.Len())
	assert.False(t, p.IsIdentity())
}

func TestPathFromEdges(t *testing.T) {
	c := NewTriangle(t)

	p, err := fincat.PathFromEdges(c.Graph(), []fincat.Edge{F, G})
	require.NoError(t, err)
	assert.Equal(t, A, p.Source())
	assert.Equal(t, C, p.Target())
	assert.Equal(t, []fincat.Edge{F, G}, p.Edges())

	_, err = fincat.PathFromEdges(c.Graph(), nil)
	assert.ErrorIs(t, err, fincat.ErrEmptyPath)
	_, err = fincat.PathFromEdges(c.Graph(), []fincat.Edge{})
	assert.ErrorIs(t, err, fincat.ErrEmptyPath)
}

func TestPathFromEdges_DoesNotAliasInput(t *testing.T) {
	c := NewTriangle(t)

	es := []fincat.Edge{F, G}
	p, err := fincat.PathFromEdges(c.Graph(), es)
	require.NoError(t, err)
	es[0] = H
	assert.Equal(t, []fincat.Edge{F, G}, p.Edges())

	out := p.Edges()
	out[1] = H
	assert.Equal(t, []fincat.Edge{F, G}, p.Edges())
}

func TestIdentityPath(t *testing.T) {
	id := fincat.IdentityPath(B)
	assert.Equal(t, B, id.Source())
	assert.Equal(t, B, id.Target())
	assert.Nil(t, id.Edges())
	assert.Equal(t, 0, id.Len())
	assert.True(t, id.IsIdentity())
	assert.Equal(t, "id(1)", id.String())
}

func TestConcatenate(t *testing.T) {
	c := NewTriangle(t)
	f := c.Generator(F)
	g := c.Generator(G)

	fg, err := fincat.Concatenate(f, g)
	require.NoError(t, err)
	assert.Equal(t, []fincat.Edge{F, G}, fg.Edges())
	assert.Equal(t, A, fg.Source())
	assert.Equal(t, C, fg.Target())
	assert.Equal(t, "[0 1]: 0 -> 2", fg.String())

	// Operands are untouched.
	assert.Equal(t, []fincat.Edge{F}, f.Edges())
	assert.Equal(t, []fincat.Edge{G}, g.Edges())
}

func TestConcatenate_Identities(t *testing.T) {
	p, err := fincat.Concatenate(fincat.IdentityPath(A), fincat.IdentityPath(A))
	require.NoError(t, err)
	assert.True(t, p.IsIdentity())
	assert.True(t, p.Equal(fincat.IdentityPath(A)))
}

func TestConcatenate_BoundaryMismatch(t *testing.T) {
	c := NewTriangle(t)
	f := c.Generator(F) // A → B
	h := c.Generator(H) // A → C

	_, err := fincat.Concatenate(f, c.Generator(G))
	require.NoError(t, err)

	// target B, source C
	_, err = fincat.Concatenate(f, fincat.IdentityPath(C))
	require.Error(t, err)
	assert.ErrorIs(t, err, fincat.ErrBoundaryMismatch)
	assert.ErrorIs(t, err, category.ErrNotComposable)

	var bm *fincat.BoundaryMismatchError
	require.True(t, errors.As(err, &bm))
	assert.Equal(t, B, bm.Left)
	assert.Equal(t, C, bm.Right)

	_, err = fincat.Concatenate(h, f)
	assert.ErrorIs(t, err, fincat.ErrBoundaryMismatch)
}

func TestPathEqual(t *testing.T) {
	c := NewTriangle(t)

	fg := MustPath(t, c, F, G)
	assert.True(t, fg.Equal(MustPath(t, c, F, G)))
	assert.False(t, fg.Equal(c.Generator(H)), "same endpoints, different edges")
	assert.False(t, fincat.IdentityPath(A).Equal(fincat.IdentityPath(B)))

	var zero fincat.Path
	assert.True(t, zero.Equal(fincat.IdentityPath(0)))
}

func TestMorphismIsSealedToEdgeAndPath(t *testing.T) {
	ms := []fincat.Morphism{F, fincat.IdentityPath(A)}
	_, isEdge := ms[0].(fincat.Edge)
	_, isPath := ms[1].(fincat.Path)
	assert.True(t, isEdge)
	assert.True(t, isPath)
}
