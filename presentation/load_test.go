// SPDX-License-Identifier: MIT

package presentation_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/presentation"
)

// chainFile is the shared fixture document.
var chainFile = filepath.Join("testdata", "chain.yaml")

func TestLoadFile(t *testing.T) {
	p, err := presentation.LoadFile(chainFile)
	require.NoError(t, err)

	assert.Equal(t, []string{"Chain", "Arrow", "Monoid"}, p.CategoryNames())
	assert.Equal(t, []string{"Embed", "Squash", "Broken", "Count"}, p.FunctorNames())

	c, err := p.Category("Chain")
	require.NoError(t, err)
	assert.Equal(t, 3, c.ObjectCount())
	assert.Equal(t, 2, c.GeneratorCount())

	m, err := p.Category("Monoid")
	require.NoError(t, err)
	assert.False(t, m.IsFinite())

	fn, err := p.Functor("Embed")
	require.NoError(t, err)
	assert.True(t, fn.CheckFunctorial())
	assert.Equal(t, []fincat.Vertex{0, 1, 2}, fn.Objects())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := presentation.LoadFile(filepath.Join("testdata", "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := presentation.LoadFile(chainFile, presentation.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "presentation loaded")
	assert.Contains(t, out, "category built")
	assert.Contains(t, out, "functor is not functorial")
	assert.Contains(t, out, "functor=Broken")
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "empty",
			doc:  "",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "not yaml",
			doc:  "categories: [",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "unknown field",
			doc:  "categories:\n  - name: C\n    vertices: [A]\n    colour: red\n",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "second document",
			doc:  "categories:\n  - name: C\n    vertices: [A]\n---\ncategories:\n  - name: D\n    vertices: [B]\n",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "no categories",
			doc:  "functors: []\n",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "bad identifier",
			doc:  "categories:\n  - name: C\n    vertices: [\"a b\"]\n",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "edge without target",
			doc:  "categories:\n  - name: C\n    vertices: [A]\n    edges:\n      - {name: f, src: A}\n",
			want: presentation.ErrInvalidDocument,
		},
		{
			name: "duplicate category",
			doc:  "categories:\n  - name: C\n    vertices: [A]\n  - name: C\n    vertices: [B]\n",
			want: presentation.ErrDuplicateName,
		},
		{
			name: "duplicate vertex",
			doc:  "categories:\n  - name: C\n    vertices: [A, A]\n",
			want: presentation.ErrDuplicateName,
		},
		{
			name: "duplicate edge",
			doc: "categories:\n  - name: C\n    vertices: [A]\n    edges:\n" +
				"      - {name: f, src: A, tgt: A}\n      - {name: f, src: A, tgt: A}\n",
			want: presentation.ErrDuplicateName,
		},
		{
			name: "unknown domain",
			doc:  "categories:\n  - name: C\n    vertices: [A]\nfunctors:\n  - {name: F, domain: Q, codomain: C}\n",
			want: presentation.ErrUnknownCategory,
		},
		{
			name: "unknown codomain",
			doc:  "categories:\n  - name: C\n    vertices: [A]\nfunctors:\n  - {name: F, domain: C, codomain: Q}\n",
			want: presentation.ErrUnknownCategory,
		},
		{
			name: "missing object image",
			doc:  "categories:\n  - name: C\n    vertices: [A, B]\nfunctors:\n  - {name: F, domain: C, codomain: C, objects: {A: A}}\n",
			want: presentation.ErrMissingImage,
		},
		{
			name: "missing generator image",
			doc: "categories:\n  - name: C\n    vertices: [A]\n    edges:\n      - {name: f, src: A, tgt: A}\n" +
				"functors:\n  - {name: F, domain: C, codomain: C, objects: {A: A}}\n",
			want: presentation.ErrMissingImage,
		},
		{
			name: "image key not in domain",
			doc:  "categories:\n  - name: C\n    vertices: [A]\nfunctors:\n  - {name: F, domain: C, codomain: C, objects: {A: A, Z: A}}\n",
			want: fincat.ErrUnknownName,
		},
		{
			name: "image not in codomain",
			doc:  "categories:\n  - name: C\n    vertices: [A]\nfunctors:\n  - {name: F, domain: C, codomain: C, objects: {A: Z}}\n",
			want: fincat.ErrUnknownName,
		},
		{
			name: "malformed generator image",
			doc: "categories:\n  - name: C\n    vertices: [A]\n    edges:\n      - {name: f, src: A, tgt: A}\n" +
				"functors:\n  - {name: F, domain: C, codomain: C, objects: {A: A}, generators: {f: \"f ;\"}}\n",
			want: fincat.ErrSyntax,
		},
		{
			name: "duplicate functor",
			doc: "categories:\n  - name: C\n    vertices: [A]\nfunctors:\n" +
				"  - {name: F, domain: C, codomain: C, objects: {A: A}}\n" +
				"  - {name: F, domain: C, codomain: C, objects: {A: A}}\n",
			want: presentation.ErrDuplicateName,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := presentation.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild(t *testing.T) {
	doc := presentation.Document{
		Categories: []presentation.CategorySpec{{
			Name:     "C",
			Vertices: []string{"A", "B"},
			Edges:    []presentation.EdgeSpec{{Name: "f", Src: "A", Tgt: "B"}},
		}},
		Functors: []presentation.FunctorSpec{{
			Name: "Id", Domain: "C", Codomain: "C",
			Objects:    map[string]string{"A": "A", "B": "B"},
			Generators: map[string]string{"f": "f"},
		}},
	}

	p, err := presentation.Build(doc)
	require.NoError(t, err)
	reports := p.Check()
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Functorial)
}

func TestLoad_EmptyCategory(t *testing.T) {
	doc := "categories:\n  - name: Empty\n  - name: C\n    vertices: [A]\n" +
		"functors:\n  - {name: Bang, domain: Empty, codomain: C}\n"

	p, err := presentation.Load(strings.NewReader(doc))
	require.NoError(t, err)
	reports := p.Check()
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Functorial)
}
