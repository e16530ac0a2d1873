// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// api.go - public entry points.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors append to g: vertex and edge names come from the schemes
//     applied to the graph-wide index, so successive constructors build a
//     disjoint union without name clashes.
//   - Never panic on bad parameters; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fincat/core"
	"github.com/katalvlaran/fincat/fincat"
)

// Constructor appends a shape to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// cons in order. The first constructor error is wrapped with "BuildGraph: "
// and returned; no partial graph is returned.
//
// Complexity: Σ cost of the constructors.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildCategory is BuildGraph followed by fincat.NewFreeCategory.
func BuildCategory(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*fincat.FreeCategory, error) {
	g, err := BuildGraph(gopts, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return fincat.NewFreeCategory(g)
}

// addVertices appends n vertices named by cfg.idFn and returns the index of the first.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) (int, error) {
	base := g.VertexCount()
	var i int
	for i = 0; i < n; i++ {
		name := cfg.idFn(base + i)
		if _, err := g.AddVertex(name); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(%s): %w", method, name, err)
		}
	}

	return base, nil
}

// addEdge appends u → v named by cfg.edgeFn.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	name := cfg.edgeFn(g.EdgeCount())
	if _, err := g.AddEdge(u, v, name); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, %s): %w", method, u, v, name, err)
	}

	return nil
}
