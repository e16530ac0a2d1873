// SPDX-License-Identifier: MIT

package fincat

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fincat/category"
)

// Sentinel errors for path construction and free-category operations.
var (
	ErrNilGraph         = errors.New("fincat: graph is nil")
	ErrEmptyPath        = errors.New("fincat: path needs at least one edge")
	ErrBoundaryMismatch = errors.New("fincat: path boundary mismatch")
	ErrInvalidPath      = errors.New("fincat: path not in graph")
	ErrOutOfRange       = errors.New("fincat: index out of range")
	ErrUnknownName      = errors.New("fincat: unknown name")
	ErrUnnamedGraph     = errors.New("fincat: graph has no names")
	ErrSyntax           = errors.New("fincat: path expression syntax")
	ErrInfiniteHomSet   = errors.New("fincat: hom-set is infinite")
)

// Vertex is an object of a finitely presented category: the index of a graph vertex.
// It is a distinct type from a raw int so objects and indices cannot be confused.
type Vertex int

// Edge is a generating morphism: the index of a graph edge.
type Edge int

// Graph is the graph contract the free category consumes: vertices
// 0..VertexCount()-1 and edges 0..EdgeCount()-1 with their endpoints.
// Src and Tgt may panic on out-of-range edges. core.Graph implements it.
type Graph interface {
	VertexCount() int
	EdgeCount() int
	Src(e int) int
	Tgt(e int) int
}

// NamedGraph is a Graph whose vertices and edges carry unique names.
type NamedGraph interface {
	Graph
	VertexID(name string) (int, error)
	EdgeID(name string) (int, error)
	VertexName(v int) string
	EdgeName(e int) string
}

// FinCategory is a finitely presented category: objects are Vertex values,
// morphisms are Paths, and Graph() lists the generators.
type FinCategory interface {
	category.Category[Vertex, Path]
	ObjectCount() int
	GeneratorCount() int
	Graph() Graph
}

// Morphism is either a generator (Edge) or a composite (Path). The set is closed.
type Morphism interface {
	isMorphism()
}

func (Edge) isMorphism() {}
func (Path) isMorphism() {}

// BoundaryMismatchError reports a concatenation whose endpoints disagree.
// It matches both ErrBoundaryMismatch and category.ErrNotComposable.
type BoundaryMismatchError struct {
	Left  Vertex // target of the first path
	Right Vertex // source of the second path
}

// Error implements error.
func (e *BoundaryMismatchError) Error() string {
	return fmt.Sprintf("%v: target %d != source %d", ErrBoundaryMismatch, e.Left, e.Right)
}

// Is reports equivalence with ErrBoundaryMismatch and category.ErrNotComposable.
func (e *BoundaryMismatchError) Is(target error) bool {
	return target == ErrBoundaryMismatch || target == category.ErrNotComposable
}
