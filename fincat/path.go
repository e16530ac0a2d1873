// SPDX-License-Identifier: MIT

// File: path.go
// Role: Path algebra: construction from edges, identities, concatenation, accessors.
// Determinism:
//   - Paths are values; no operation mutates or aliases an operand's edge storage.

package fincat

import (
	"fmt"
	"strings"
)

// Path is a morphism of a free category: edges in order plus explicit endpoints.
// A non-empty path runs from Src(first edge) to Tgt(last edge); the empty path
// at v is the identity at v. The zero Path is the identity at vertex 0.
type Path struct {
	edges []Edge
	src   Vertex
	tgt   Vertex
}

// PathFromEdge returns the length-1 path ⟨e⟩ : Src(e) → Tgt(e).
// e must be an edge of g.
// Complexity: O(1).
func PathFromEdge(g Graph, e Edge) Path {
	return Path{
		edges: []Edge{e},
		src:   Vertex(g.Src(int(e))),
		tgt:   Vertex(g.Tgt(int(e))),
	}
}

// PathFromEdges returns the path es[0], ..., es[n-1] from Src(es[0]) to Tgt(es[n-1]).
// Contiguity of the interior is the caller's responsibility (see FreeCategory.CheckPath).
//
// Errors:
//   - ErrEmptyPath: len(es) == 0; identities come from IdentityPath.
//
// Complexity: O(len(es)).
func PathFromEdges(g Graph, es []Edge) (Path, error) {
	if len(es) == 0 {
		return Path{}, ErrEmptyPath
	}

	return Path{
		edges: append([]Edge(nil), es...),
		src:   Vertex(g.Src(int(es[0]))),
		tgt:   Vertex(g.Tgt(int(es[len(es)-1]))),
	}, nil
}

// IdentityPath returns the empty path at v.
// Complexity: O(1).
func IdentityPath(v Vertex) Path {
	return Path{src: v, tgt: v}
}

// Concatenate returns p followed by q.
//
// Errors:
//   - *BoundaryMismatchError: p.Target() != q.Source().
//
// Complexity: O(len(p) + len(q)).
func Concatenate(p, q Path) (Path, error) {
	if p.tgt != q.src {
		return Path{}, &BoundaryMismatchError{Left: p.tgt, Right: q.src}
	}
	edges := make([]Edge, 0, len(p.edges)+len(q.edges))
	edges = append(edges, p.edges...)
	edges = append(edges, q.edges...)
	if len(edges) == 0 {
		edges = nil
	}

	return Path{edges: edges, src: p.src, tgt: q.tgt}, nil
}

// Edges returns a copy of the edge sequence (nil for identities).
func (p Path) Edges() []Edge {
	if len(p.edges) == 0 {
		return nil
	}

	return append([]Edge(nil), p.edges...)
}

// Source returns the source vertex.
func (p Path) Source() Vertex { return p.src }

// Target returns the target vertex.
func (p Path) Target() Vertex { return p.tgt }

// Len returns the number of edges.
func (p Path) Len() int { return len(p.edges) }

// IsIdentity reports whether p is an empty path.
func (p Path) IsIdentity() bool { return len(p.edges) == 0 }

// Equal reports structural equality: same endpoints and same edge sequence.
func (p Path) Equal(q Path) bool {
	if p.src != q.src || p.tgt != q.tgt || len(p.edges) != len(q.edges) {
		return false
	}
	for i := range p.edges {
		if p.edges[i] != q.edges[i] {
			return false
		}
	}

	return true
}

// String renders "id(v)" or "[e0 e1 ...]: src -> tgt" using indices.
func (p Path) String() string {
	if p.IsIdentity() {
		return fmt.Sprintf("id(%d)", p.src)
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range p.edges {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", e)
	}
	fmt.Fprintf(&sb, "]: %d -> %d", p.src, p.tgt)

	return sb.String()
}

// extend returns p followed by the single edge e : p.tgt → tgt.
func (p Path) extend(e Edge, tgt Vertex) Path {
	edges := make([]Edge, len(p.edges)+1)
	copy(edges, p.edges)
	edges[len(p.edges)] = e

	return Path{edges: edges, src: p.src, tgt: tgt}
}
