// SPDX-License-Identifier: MIT

// File: load.go
// Role: YAML decoding, validation, and construction of categories and functors.
// Determinism:
//   - Categories are built before functors, each in declaration order; the
//     first error aborts the load.

package presentation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fincat/core"
	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/functor"
)

// identPattern matches the identifiers of path expressions.
var identPattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_']*$`)

// documentValidate checks Document trees; "ident" is registered in init.
var documentValidate *validator.Validate

func init() {
	documentValidate = validator.New()
	_ = documentValidate.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
}

// LoadFile reads and loads the document at path; see Load.
func LoadFile(path string, opts ...Option) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("presentation: read %s: %w", path, err)
	}

	return Load(bytes.NewReader(data), opts...)
}

// Load decodes, validates and builds a presentation from r.
//
// Errors: see the package documentation. Reference errors from the
// categories (unknown vertex or edge names, malformed path expressions) are
// wrapped with the functor or category they occur in.
func Load(r io.Reader, opts ...Option) (*Presentation, error) {
	ld := newLoader(opts)

	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return nil, fmt.Errorf("%w: more than one YAML document in stream", ErrInvalidDocument)
	}

	return ld.build(doc)
}

// Build validates doc and constructs its categories and functors.
func Build(doc Document, opts ...Option) (*Presentation, error) {
	return newLoader(opts).build(doc)
}

func (ld *loader) build(doc Document) (*Presentation, error) {
	if err := documentValidate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	p := &Presentation{
		categories: make(map[string]*fincat.FreeCategory, len(doc.Categories)),
		functors:   make(map[string]*FreeFunctor, len(doc.Functors)),
		specs:      make(map[string]FunctorSpec, len(doc.Functors)),
	}
	for _, cs := range doc.Categories {
		if err := ld.addCategory(p, cs); err != nil {
			return nil, err
		}
	}
	for _, fs := range doc.Functors {
		if err := ld.addFunctor(p, fs); err != nil {
			return nil, err
		}
	}

	ld.log.Info("presentation loaded",
		"categories", len(p.categoryList),
		"functors", len(p.functorList))

	return p, nil
}

// addCategory builds the graph of cs and registers its free category.
func (ld *loader) addCategory(p *Presentation, cs CategorySpec) error {
	if _, dup := p.categories[cs.Name]; dup {
		return fmt.Errorf("%w: category %q", ErrDuplicateName, cs.Name)
	}

	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, v := range cs.Vertices {
		if _, err := g.AddVertex(v); err != nil {
			return categoryError(cs.Name, err)
		}
	}
	for _, e := range cs.Edges {
		if _, err := g.AddEdgeByName(e.Src, e.Tgt, e.Name); err != nil {
			return categoryError(cs.Name, fmt.Errorf("edge %q: %w", e.Name, err))
		}
	}

	c, err := fincat.NewFreeCategory(g)
	if err != nil {
		return categoryError(cs.Name, err)
	}
	p.categories[cs.Name] = c
	p.categoryList = append(p.categoryList, cs.Name)

	ld.log.Debug("category built",
		"category", cs.Name,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"finite", c.IsFinite())

	return nil
}

// categoryError maps core's duplicate-name errors to ErrDuplicateName and
// prefixes the category.
func categoryError(name string, err error) error {
	if errors.Is(err, core.ErrDuplicateVertex) || errors.Is(err, core.ErrDuplicateEdge) {
		return fmt.Errorf("%w: category %q: %v", ErrDuplicateName, name, err)
	}

	return fmt.Errorf("category %q: %w", name, err)
}

// addFunctor resolves fs's categories, orders its images by domain index and
// builds the functor through the codomain's coercions.
func (ld *loader) addFunctor(p *Presentation, fs FunctorSpec) error {
	if _, dup := p.functors[fs.Name]; dup {
		return fmt.Errorf("%w: functor %q", ErrDuplicateName, fs.Name)
	}
	dom, ok := p.categories[fs.Domain]
	if !ok {
		return fmt.Errorf("functor %q: %w: domain %q", fs.Name, ErrUnknownCategory, fs.Domain)
	}
	codom, ok := p.categories[fs.Codomain]
	if !ok {
		return fmt.Errorf("functor %q: %w: codomain %q", fs.Name, ErrUnknownCategory, fs.Codomain)
	}

	named := dom.Graph().(fincat.NamedGraph)
	objects, err := images(fs.Objects, dom.ObjectCount(), named.VertexName, named.VertexID)
	if err != nil {
		return fmt.Errorf("functor %q: objects: %w", fs.Name, err)
	}
	generators, err := images(fs.Generators, dom.GeneratorCount(), named.EdgeName, named.EdgeID)
	if err != nil {
		return fmt.Errorf("functor %q: generators: %w", fs.Name, err)
	}

	fn, err := functor.NewVectorFrom[fincat.Vertex, fincat.Path](dom, codom, objects, generators)
	if err != nil {
		return fmt.Errorf("functor %q: %w", fs.Name, err)
	}
	p.functors[fs.Name] = fn
	p.specs[fs.Name] = fs
	p.functorList = append(p.functorList, fs.Name)

	if fails := functor.Failures[fincat.Vertex, fincat.Path](fn); len(fails) > 0 {
		ld.log.Warn("functor is not functorial",
			"functor", fs.Name,
			"failures", len(fails))
	} else {
		ld.log.Debug("functor built", "functor", fs.Name, "domain", fs.Domain, "codomain", fs.Codomain)
	}

	return nil
}

// images lays the named images out by domain index. Every index needs an
// image; every key must name a domain element.
func images(
	byName map[string]string,
	n int,
	name func(int) string,
	id func(string) (int, error),
) ([]any, error) {
	keys := make([]string, 0, len(byName))
	for k := range byName {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if _, err := id(key); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", fincat.ErrUnknownName, key, err)
		}
	}
	out := make([]any, n)
	var i int
	for i = 0; i < n; i++ {
		img, ok := byName[name(i)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingImage, name(i))
		}
		out[i] = img
	}

	return out, nil
}
