// SPDX-License-Identifier: MIT

package presentation

import (
	"fmt"

	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/functor"
)

// CategoryNames returns the declared category names in document order.
func (p *Presentation) CategoryNames() []string {
	return append([]string(nil), p.categoryList...)
}

// FunctorNames returns the declared functor names in document order.
func (p *Presentation) FunctorNames() []string {
	return append([]string(nil), p.functorList...)
}

// Category returns the named free category or ErrUnknownCategory.
func (p *Presentation) Category(name string) (*fincat.FreeCategory, error) {
	c, ok := p.categories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	return c, nil
}

// Functor returns the named functor or ErrUnknownFunctor.
func (p *Presentation) Functor(name string) (*FreeFunctor, error) {
	fn, ok := p.functors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunctor, name)
	}

	return fn, nil
}

// Check reports functoriality for every functor in document order.
// Failure lines name generators and objects as in the document.
func (p *Presentation) Check() []Report {
	out := make([]Report, 0, len(p.functorList))
	for _, name := range p.functorList {
		fn := p.functors[name]
		spec := p.specs[name]
		dom := p.categories[spec.Domain]
		codom := p.categories[spec.Codomain]

		r := Report{Functor: name, Domain: spec.Domain, Codomain: spec.Codomain}
		for _, f := range functor.Failures[fincat.Vertex, fincat.Path](fn) {
			r.Failures = append(r.Failures, fmt.Sprintf("%s: want %s -> %s, got %s -> %s",
				dom.FormatPath(dom.Generator(f.Edge)),
				vertexName(codom, f.WantSrc),
				vertexName(codom, f.WantTgt),
				vertexName(codom, f.GotSrc),
				vertexName(codom, f.GotTgt)))
		}
		r.Functorial = len(r.Failures) == 0
		out = append(out, r)
	}

	return out
}

// Apply maps the path expression expr of the functor's domain and renders
// the image in its codomain.
func (p *Presentation) Apply(functorName, expr string) (string, error) {
	fn, err := p.Functor(functorName)
	if err != nil {
		return "", err
	}
	dom := p.categories[p.specs[functorName].Domain]
	codom := p.categories[p.specs[functorName].Codomain]

	path, err := dom.ParsePath(expr)
	if err != nil {
		return "", fmt.Errorf("functor %q: %w", functorName, err)
	}
	img, err := fn.MapMorphism(path)
	if err != nil {
		return "", fmt.Errorf("functor %q: %w", functorName, err)
	}

	return codom.FormatPath(img), nil
}

// Paths lists the morphisms from → to of the named category with at most
// maxLen edges (fincat.Unbounded for all), rendered as path expressions.
func (p *Presentation) Paths(categoryName, from, to string, maxLen int) ([]string, error) {
	c, err := p.Category(categoryName)
	if err != nil {
		return nil, err
	}
	x, err := c.CoerceOb(from)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", categoryName, err)
	}
	y, err := c.CoerceOb(to)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", categoryName, err)
	}
	ps, err := c.HomSet(x, y, maxLen)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", categoryName, err)
	}

	out := make([]string, len(ps))
	for i, path := range ps {
		out[i] = c.FormatPath(path)
	}

	return out, nil
}

// vertexName renders v by name.
func vertexName(c *fincat.FreeCategory, v fincat.Vertex) string {
	return c.Graph().(fincat.NamedGraph).VertexName(int(v))
}
