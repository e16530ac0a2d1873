// SPDX-License-Identifier: MIT

// File: extend.go
// Role: Homomorphic extension and generator-level functoriality checks.
// Determinism:
//   - Extend composes strictly left to right; Failures lists edges ascending.

package functor

import (
	"fmt"

	"github.com/katalvlaran/fincat/category"
	"github.com/katalvlaran/fincat/fincat"
)

// Extend folds p through the codomain: starting from codom.ID(objects(p.Source()))
// it composes generators(e) for every edge e of p in order. For an identity path
// the result is exactly that seed.
//
// Complexity: O(len(p)) calls to Compose.
func Extend[Ob, Hom any](
	codom category.Category[Ob, Hom],
	objects func(fincat.Vertex) Ob,
	generators func(fincat.Edge) Hom,
	p fincat.Path,
) (Hom, error) {
	acc := codom.ID(objects(p.Source()))
	var err error
	for i, e := range p.Edges() {
		if acc, err = codom.Compose(acc, generators(e)); err != nil {
			var zero Hom
			return zero, fmt.Errorf("edge #%d (%d): %w", i, e, err)
		}
	}

	return acc, nil
}

// Failures lists every generator of fn's domain whose image does not run
// between the mapped endpoints, compared with the codomain's EqualOb.
// An empty result means fn is functorial on every generator it has an image
// for; generators added to the domain graph after fn was built are skipped.
//
// Complexity: O(E) lookups.
func Failures[Ob, Hom any](fn Functor[Ob, Hom]) []Failure[Ob] {
	g := fn.Domain().Graph()
	codom := fn.Codomain()

	limit := g.EdgeCount()
	if t, ok := fn.(tableShape); ok {
		_, nGenerators := t.tableSizes()
		limit = min(limit, nGenerators)
	}

	var out []Failure[Ob]
	var e int
	for e = 0; e < limit; e++ {
		img := fn.MapGenerator(fincat.Edge(e))
		f := Failure[Ob]{
			Edge:    fincat.Edge(e),
			WantSrc: fn.MapObject(fincat.Vertex(g.Src(e))),
			WantTgt: fn.MapObject(fincat.Vertex(g.Tgt(e))),
			GotSrc:  codom.Dom(img),
			GotTgt:  codom.Codom(img),
		}
		if !codom.EqualOb(f.WantSrc, f.GotSrc) || !codom.EqualOb(f.WantTgt, f.GotTgt) {
			out = append(out, f)
		}
	}

	return out
}
