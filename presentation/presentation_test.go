// SPDX-License-Identifier: MIT

package presentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/functor"
	"github.com/katalvlaran/fincat/presentation"
)

func TestCheck(t *testing.T) {
	p, err := presentation.LoadFile(chainFile)
	require.NoError(t, err)

	reports := p.Check()
	require.Len(t, reports, 4)

	byName := make(map[string]presentation.Report, len(reports))
	for _, r := range reports {
		byName[r.Functor] = r
	}
	assert.True(t, byName["Embed"].Functorial)
	assert.True(t, byName["Squash"].Functorial)
	assert.True(t, byName["Count"].Functorial)

	broken := byName["Broken"]
	assert.False(t, broken.Functorial)
	assert.Equal(t, "Chain", broken.Domain)
	assert.Equal(t, "Arrow", broken.Codomain)
	assert.Equal(t, []string{"f: want X -> Y, got X -> Z"}, broken.Failures)
}

func TestApply(t *testing.T) {
	p, err := presentation.LoadFile(chainFile)
	require.NoError(t, err)

	cases := []struct {
		functor, expr, want string
	}{
		{"Embed", "f ; g", "h ; k"},
		{"Embed", "id(B)", "id(Y)"},
		{"Squash", "f ; g", "h ; k"},
		{"Squash", "f", "id(X)"},
		{"Count", "f ; g", "x ; x ; x"},
	}
	for _, tc := range cases {
		got, err := p.Apply(tc.functor, tc.expr)
		require.NoError(t, err, "%s(%s)", tc.functor, tc.expr)
		assert.Equal(t, tc.want, got, "%s(%s)", tc.functor, tc.expr)
	}

	_, err = p.Apply("Nope", "f")
	assert.ErrorIs(t, err, presentation.ErrUnknownFunctor)
	_, err = p.Apply("Embed", "g ; f")
	assert.ErrorIs(t, err, fincat.ErrBoundaryMismatch)
	_, err = p.Apply("Broken", "f ; g")
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	p, err := presentation.LoadFile(chainFile)
	require.NoError(t, err)

	got, err := p.Paths("Chain", "A", "C", fincat.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []string{"f ; g"}, got)

	got, err = p.Paths("Monoid", "M", "M", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"id(M)", "x", "x ; x"}, got)

	_, err = p.Paths("Monoid", "M", "M", fincat.Unbounded)
	assert.ErrorIs(t, err, fincat.ErrInfiniteHomSet)
	_, err = p.Paths("Chain", "A", "Q", 1)
	assert.ErrorIs(t, err, fincat.ErrUnknownName)
	_, err = p.Paths("Nope", "A", "B", 1)
	assert.ErrorIs(t, err, presentation.ErrUnknownCategory)
}

// TestFunctorRoundTrip checks F(p;q) = F(p);F(q) for a loaded functor into a monoid.
func TestFunctorRoundTrip(t *testing.T) {
	p, err := presentation.LoadFile(chainFile)
	require.NoError(t, err)
	fn, err := p.Functor("Count")
	require.NoError(t, err)
	dom, err := p.Category("Chain")
	require.NoError(t, err)
	codom, err := p.Category("Monoid")
	require.NoError(t, err)

	f, g := dom.Generator(0), dom.Generator(1)
	fg, err := dom.Compose(f, g)
	require.NoError(t, err)

	left, err := fn.MapMorphism(fg)
	require.NoError(t, err)
	ff, err := fn.MapMorphism(f)
	require.NoError(t, err)
	fgImg, err := fn.MapMorphism(g)
	require.NoError(t, err)
	right, err := codom.Compose(ff, fgImg)
	require.NoError(t, err)
	assert.True(t, left.Equal(right))

	var _ functor.Functor[fincat.Vertex, fincat.Path] = fn
}
