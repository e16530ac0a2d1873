// SPDX-License-Identifier: MIT

// File: coerce.go
// Role: Reading raw values as objects and paths of a free category.
// The accepted inputs form a closed set; anything else wraps category.ErrCoerce.

package fincat

import (
	"fmt"

	"github.com/katalvlaran/fincat/category"
)

// CoerceOb reads x as an object. Accepted: Vertex, int (vertex index),
// string (vertex name, NamedGraph only).
func (c *FreeCategory) CoerceOb(x any) (Vertex, error) {
	var v Vertex
	switch val := x.(type) {
	case Vertex:
		v = val
	case int:
		v = Vertex(val)
	case string:
		return c.vertexByName(val)
	default:
		return 0, fmt.Errorf("%w: %T as object", category.ErrCoerce, x)
	}
	if !c.HasObject(v) {
		return 0, fmt.Errorf("%w: vertex %d", ErrOutOfRange, v)
	}

	return v, nil
}

// CoerceHom reads x as a path. Accepted: Path (validated with CheckPath),
// Edge or int (lifted to a length-1 path), []Edge or []int (non-empty,
// contiguous), string (path expression, see ParsePath).
func (c *FreeCategory) CoerceHom(x any) (Path, error) {
	switch val := x.(type) {
	case Path:
		if err := c.CheckPath(val); err != nil {
			return Path{}, err
		}
		return val, nil
	case Edge:
		return c.edgePath(val)
	case int:
		return c.edgePath(Edge(val))
	case []Edge:
		return c.edgesPath(val)
	case []int:
		es := make([]Edge, len(val))
		for i, e := range val {
			es[i] = Edge(e)
		}
		return c.edgesPath(es)
	case string:
		return c.ParsePath(val)
	default:
		return Path{}, fmt.Errorf("%w: %T as morphism", category.ErrCoerce, x)
	}
}

// edgePath lifts a checked generator to ⟨e⟩.
func (c *FreeCategory) edgePath(e Edge) (Path, error) {
	if !c.HasGenerator(e) {
		return Path{}, fmt.Errorf("%w: edge %d", ErrOutOfRange, e)
	}

	return c.Generator(e), nil
}

// edgesPath builds and validates a path from checked generators.
func (c *FreeCategory) edgesPath(es []Edge) (Path, error) {
	for _, e := range es {
		if !c.HasGenerator(e) {
			return Path{}, fmt.Errorf("%w: edge %d", ErrOutOfRange, e)
		}
	}
	p, err := PathFromEdges(c.graph, es)
	if err != nil {
		return Path{}, err
	}
	if err = c.CheckPath(p); err != nil {
		return Path{}, err
	}

	return p, nil
}

// vertexByName resolves a vertex name through NamedGraph.
func (c *FreeCategory) vertexByName(name string) (Vertex, error) {
	named, ok := c.graph.(NamedGraph)
	if !ok {
		return 0, ErrUnnamedGraph
	}
	v, err := named.VertexID(name)
	if err != nil {
		return 0, fmt.Errorf("%w: vertex %q: %v", ErrUnknownName, name, err)
	}

	return Vertex(v), nil
}

// edgeByName resolves an edge name through NamedGraph.
func (c *FreeCategory) edgeByName(name string) (Edge, error) {
	named, ok := c.graph.(NamedGraph)
	if !ok {
		return 0, ErrUnnamedGraph
	}
	e, err := named.EdgeID(name)
	if err != nil {
		return 0, fmt.Errorf("%w: edge %q: %v", ErrUnknownName, name, err)
	}

	return Edge(e), nil
}
