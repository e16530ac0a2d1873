// SPDX-License-Identifier: MIT

// File: free.go
// Role: The free category on a graph: the category contract over Vertex/Path.
// Concurrency:
//   - FreeCategory holds only the shared graph reference; all methods are pure
//     functions of their arguments and the graph, safe for concurrent use.

package fincat

import (
	"fmt"

	"github.com/katalvlaran/fincat/category"
)

// FreeCategory is the free category on a graph: objects are vertices,
// morphisms are paths, composition is concatenation.
type FreeCategory struct {
	graph Graph
}

var (
	_ FinCategory                     = (*FreeCategory)(nil)
	_ category.Coercer[Vertex, Path]  = (*FreeCategory)(nil)
	_ category.Category[Vertex, Path] = (*FreeCategory)(nil)
)

// NewFreeCategory wraps g. The graph is shared, not copied.
// Returns ErrNilGraph when g is nil.
func NewFreeCategory(g Graph) (*FreeCategory, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &FreeCategory{graph: g}, nil
}

// Graph returns the generating graph.
func (c *FreeCategory) Graph() Graph { return c.graph }

// ObjectCount returns the number of vertices.
func (c *FreeCategory) ObjectCount() int { return c.graph.VertexCount() }

// GeneratorCount returns the number of edges.
func (c *FreeCategory) GeneratorCount() int { return c.graph.EdgeCount() }

// HasObject reports whether v is a vertex of the graph.
func (c *FreeCategory) HasObject(v Vertex) bool {
	return v >= 0 && int(v) < c.graph.VertexCount()
}

// HasGenerator reports whether e is an edge of the graph.
func (c *FreeCategory) HasGenerator(e Edge) bool {
	return e >= 0 && int(e) < c.graph.EdgeCount()
}

// Objects returns every object in ascending order.
// Complexity: O(V).
func (c *FreeCategory) Objects() []Vertex {
	out := make([]Vertex, c.graph.VertexCount())
	for i := range out {
		out[i] = Vertex(i)
	}

	return out
}

// Generators returns every generating edge in ascending order.
// Complexity: O(E).
func (c *FreeCategory) Generators() []Edge {
	out := make([]Edge, c.graph.EdgeCount())
	for i := range out {
		out[i] = Edge(i)
	}

	return out
}

// Generator returns the length-1 path ⟨e⟩. e must be a generator.
func (c *FreeCategory) Generator(e Edge) Path { return PathFromEdge(c.graph, e) }

// Dom returns the source of p.
func (c *FreeCategory) Dom(p Path) Vertex { return p.Source() }

// Codom returns the target of p.
func (c *FreeCategory) Codom(p Path) Vertex { return p.Target() }

// ID returns the empty path at v.
func (c *FreeCategory) ID(v Vertex) Path { return IdentityPath(v) }

// Compose concatenates p then q; see Concatenate.
func (c *FreeCategory) Compose(p, q Path) (Path, error) { return Concatenate(p, q) }

// EqualOb compares vertices.
func (c *FreeCategory) EqualOb(x, y Vertex) bool { return x == y }

// EqualHom compares paths structurally.
func (c *FreeCategory) EqualHom(p, q Path) bool { return p.Equal(q) }

// CheckPath verifies that p is a morphism of this category: every edge exists,
// consecutive edges are contiguous, and the stored endpoints agree with the
// graph. Identities only need an existing vertex.
//
// Complexity: O(len(p)).
func (c *FreeCategory) CheckPath(p Path) error {
	if !c.HasObject(p.src) || !c.HasObject(p.tgt) {
		return fmt.Errorf("%w: endpoints %d -> %d", ErrInvalidPath, p.src, p.tgt)
	}
	if p.IsIdentity() {
		if p.src != p.tgt {
			return fmt.Errorf("%w: empty path %d -> %d", ErrInvalidPath, p.src, p.tgt)
		}
		return nil
	}
	at := p.src
	for i, e := range p.edges {
		if !c.HasGenerator(e) {
			return fmt.Errorf("%w: edge #%d: %v: %d", ErrInvalidPath, i, ErrOutOfRange, e)
		}
		if Vertex(c.graph.Src(int(e))) != at {
			return fmt.Errorf("%w: edge #%d (%d) does not start at %d", ErrInvalidPath, i, e, at)
		}
		at = Vertex(c.graph.Tgt(int(e)))
	}
	if at != p.tgt {
		return fmt.Errorf("%w: ends at %d, recorded target %d", ErrInvalidPath, at, p.tgt)
	}

	return nil
}
