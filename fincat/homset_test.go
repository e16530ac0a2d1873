// SPDX-License-Identifier: MIT

package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/fincat"
)

// formatAll renders paths in the category's expression syntax.
func formatAll(c *fincat.FreeCategory, ps []fincat.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = c.FormatPath(p)
	}

	return out
}

func TestIsFinite(t *testing.T) {
	assert.True(t, NewTriangle(t).IsFinite())
	assert.False(t, NewLoop(t).IsFinite())

	cyc, err := fincat.NewFreeCategory(bareGraph{n: 2, src: []int{0, 1}, tgt: []int{1, 0}})
	require.NoError(t, err)
	assert.False(t, cyc.IsFinite())
}

func TestHomSet_Triangle(t *testing.T) {
	c := NewTriangle(t)

	ps, err := c.HomSet(A, C, fincat.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []string{"h", "f ; g"}, formatAll(c, ps))

	ps, err = c.HomSet(A, C, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"h"}, formatAll(c, ps))

	ps, err = c.HomSet(A, A, fincat.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []string{"id(A)"}, formatAll(c, ps))

	ps, err = c.HomSet(C, A, fincat.Unbounded)
	require.NoError(t, err)
	assert.Empty(t, ps)

	ps, err = c.HomSet(A, C, 0)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestHomSet_Loop(t *testing.T) {
	c := NewLoop(t)
	star := fincat.Vertex(0)

	ps, err := c.HomSet(star, star, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"id(*)", "x", "x ; x", "x ; x ; x"}, formatAll(c, ps))

	_, err = c.HomSet(star, star, fincat.Unbounded)
	assert.ErrorIs(t, err, fincat.ErrInfiniteHomSet)
}

func TestHomSet_OutOfRange(t *testing.T) {
	c := NewTriangle(t)

	_, err := c.HomSet(A, 5, 2)
	assert.ErrorIs(t, err, fincat.ErrOutOfRange)
	_, err = c.HomSet(-1, A, 2)
	assert.ErrorIs(t, err, fincat.ErrOutOfRange)
}

func TestHomSet_PathsAreMorphisms(t *testing.T) {
	c := NewTriangle(t)

	for _, x := range c.Objects() {
		for _, y := range c.Objects() {
			ps, err := c.HomSet(x, y, fincat.Unbounded)
			require.NoError(t, err)
			for _, p := range ps {
				require.NoError(t, c.CheckPath(p))
				assert.Equal(t, x, p.Source())
				assert.Equal(t, y, p.Target())
			}
		}
	}
}
