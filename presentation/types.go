// SPDX-License-Identifier: MIT

package presentation

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/fincat/fincat"
	"github.com/katalvlaran/fincat/functor"
)

// Sentinel errors for document loading.
var (
	ErrInvalidDocument = errors.New("presentation: invalid document")
	ErrDuplicateName   = errors.New("presentation: duplicate name")
	ErrUnknownCategory = errors.New("presentation: unknown category")
	ErrUnknownFunctor  = errors.New("presentation: unknown functor")
	ErrMissingImage    = errors.New("presentation: missing image")
)

// Document is the YAML form of a presentation.
type Document struct {
	Categories []CategorySpec `yaml:"categories" validate:"required,min=1,dive"`
	Functors   []FunctorSpec  `yaml:"functors" validate:"dive"`
}

// CategorySpec declares a free category by its generating graph.
type CategorySpec struct {
	Name     string     `yaml:"name" validate:"required,ident"`
	Vertices []string   `yaml:"vertices" validate:"dive,required,ident"`
	Edges    []EdgeSpec `yaml:"edges" validate:"dive"`
}

// EdgeSpec declares a generator name: src → tgt.
type EdgeSpec struct {
	Name string `yaml:"name" validate:"required,ident"`
	Src  string `yaml:"src" validate:"required"`
	Tgt  string `yaml:"tgt" validate:"required"`
}

// FunctorSpec declares a functor by vertex-name and edge-name images.
// Object images are codomain vertex names; generator images are codomain
// path expressions.
type FunctorSpec struct {
	Name       string            `yaml:"name" validate:"required,ident"`
	Domain     string            `yaml:"domain" validate:"required"`
	Codomain   string            `yaml:"codomain" validate:"required"`
	Objects    map[string]string `yaml:"objects" validate:"dive,keys,required,endkeys,required"`
	Generators map[string]string `yaml:"generators" validate:"dive,keys,required,endkeys,required"`
}

// FreeFunctor is a functor between free categories.
type FreeFunctor = functor.Vector[fincat.Vertex, fincat.Path]

// Presentation is a loaded document: named categories and functors in
// declaration order.
type Presentation struct {
	categories   map[string]*fincat.FreeCategory
	functors     map[string]*FreeFunctor
	specs        map[string]FunctorSpec
	categoryList []string
	functorList  []string
}

// Report is the functoriality verdict for one functor.
type Report struct {
	Functor    string
	Domain     string
	Codomain   string
	Functorial bool
	Failures   []string // one line per failing generator, in edge order
}

// Option configures Load and LoadFile.
type Option func(*loader)

// WithLogger routes load diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(ld *loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// loader carries per-call settings.
type loader struct {
	log *slog.Logger
}

func newLoader(opts []Option) *loader {
	ld := &loader{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(ld)
	}

	return ld
}
