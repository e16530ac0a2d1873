// SPDX-License-Identifier: MIT

// Package fincat turns a finite graph into the free category on it and provides
// the path algebra that category is made of.
//
// Objects are the graph's vertices, generating morphisms are its edges, and
// every morphism is a Path: a finite chain of edges with explicit source and
// target. The empty path at v is the identity at v; composition is
// concatenation, so associativity and the unit laws hold by construction.
//
//	g := core.NewGraph()
//	a, _ := g.AddVertex("A")
//	b, _ := g.AddVertex("B")
//	f, _ := g.AddEdge(a, b, "f")
//
//	C, _ := fincat.NewFreeCategory(g)
//	p := C.Generator(fincat.Edge(f))      // ⟨f⟩ : A → B
//	q, _ := C.Compose(C.ID(fincat.Vertex(a)), p)  // == p
//
// Beyond the category contract, FreeCategory offers:
//
//   - ParsePath / FormatPath: textual morphisms "f ; g" and "id(A)".
//   - CoerceOb / CoerceHom: read indices, names, edge lists and expressions as
//     objects and paths (used by functor construction).
//   - IsFinite / HomSet: finiteness via acyclicity and bounded hom-set enumeration.
//
// Paths are immutable values; the graph is shared, never copied, so it must not
// gain or lose generators while categories built on it are in use (Clone the
// graph to extend a presentation).
//
// Errors:
//
//	ErrNilGraph         – NewFreeCategory(nil)
//	ErrEmptyPath        – PathFromEdges with no edges (use IdentityPath)
//	ErrBoundaryMismatch – Concatenate with target ≠ source (*BoundaryMismatchError)
//	ErrInvalidPath      – a path that does not live in this category's graph
//	ErrOutOfRange       – an index that is not an object or generator
//	ErrUnknownName      – a name that is not a vertex or edge of the graph
//	ErrUnnamedGraph     – name-based operations on a graph without names
//	ErrSyntax           – malformed path expression
//	ErrInfiniteHomSet   – unbounded enumeration on a graph with a cycle
package fincat
