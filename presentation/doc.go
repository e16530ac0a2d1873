// SPDX-License-Identifier: MIT

// Package presentation reads finitely presented categories and functors
// between them from YAML documents.
//
//	categories:
//	  - name: C
//	    vertices: [A, B, C]
//	    edges:
//	      - {name: f, src: A, tgt: B}
//	      - {name: g, src: B, tgt: C}
//	  - name: D
//	    vertices: [X, Y]
//	    edges:
//	      - {name: h, src: X, tgt: Y}
//	functors:
//	  - name: F
//	    domain: C
//	    codomain: D
//	    objects: {A: X, B: Y, C: Y}
//	    generators: {f: h, g: "id(Y)"}
//
// Each category becomes a fincat.FreeCategory over a core.Graph (loops and
// parallel edges allowed). Each functor becomes a functor.Vector built with
// NewVectorFrom, so object images are vertex names and generator images are
// path expressions of the codomain ("h ; k", "id(Y)"). Every vertex and edge
// of the domain needs an image.
//
// Names must be identifiers (a letter or underscore, then letters, digits,
// underscores or primes) so they can appear in path expressions.
//
// Loading is strict: unknown YAML fields, validation failures and dangling
// references abort with an error; nothing is partially loaded. Functoriality
// is not required to load; see Presentation.Check.
//
// Errors:
//
//	ErrInvalidDocument – YAML or struct validation failure
//	ErrDuplicateName   – a category, functor, vertex or edge name used twice
//	ErrUnknownCategory – a functor refers to a category that is not declared
//	ErrUnknownFunctor  – lookup of an undeclared functor
//	ErrMissingImage    – a domain vertex or edge without an image
package presentation
