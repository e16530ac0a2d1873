// SPDX-License-Identifier: MIT

package fincat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/fincat"
)

func TestParsePath(t *testing.T) {
	c := NewTriangle(t)

	cases := []struct {
		expr string
		want fincat.Path
	}{
		{"f", c.Generator(F)},
		{"f;g", MustPath(t, c, F, G)},
		{"  f ;\n g  ", MustPath(t, c, F, G)},
		{"id(A)", c.ID(A)},
		{"id( B )", c.ID(B)},
		{"id(A) ; f ; id(B) ; g ; id(C)", MustPath(t, c, F, G)},
		{"h", c.Generator(H)},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := c.ParsePath(tc.expr)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}
}

func TestParsePath_Errors(t *testing.T) {
	c := NewTriangle(t)

	cases := []struct {
		expr string
		want error
	}{
		{"", fincat.ErrSyntax},
		{"   ", fincat.ErrSyntax},
		{"f ;", fincat.ErrSyntax},
		{"f ; ; g", fincat.ErrSyntax},
		{"f + g", fincat.ErrSyntax},
		{"id(A", fincat.ErrSyntax},
		{"k", fincat.ErrUnknownName},
		{"id(Z)", fincat.ErrUnknownName},
		{"g ; f", fincat.ErrBoundaryMismatch},
		{"id(A) ; g", fincat.ErrBoundaryMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			_, err := c.ParsePath(tc.expr)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFormatPath_RoundTrip(t *testing.T) {
	c := NewTriangle(t)

	for _, p := range []fincat.Path{c.ID(B), c.Generator(H), MustPath(t, c, F, G)} {
		text := c.FormatPath(p)
		back, err := c.ParsePath(text)
		require.NoError(t, err, "ParsePath(%q)", text)
		assert.True(t, back.Equal(p), "%q", text)
	}
	assert.Equal(t, "f ; g", c.FormatPath(MustPath(t, c, F, G)))
	assert.Equal(t, "id(B)", c.FormatPath(c.ID(B)))
}

func TestFormatPath_Unnamed(t *testing.T) {
	c, err := fincat.NewFreeCategory(NewChainOfFour(t))
	require.NoError(t, err)

	p, err := c.CoerceHom([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "0 ; 1 ; 2", c.FormatPath(p))
	assert.Equal(t, "id(3)", c.FormatPath(c.ID(3)))

	_, err = c.ParsePath("0")
	assert.ErrorIs(t, err, fincat.ErrUnnamedGraph)
}
