// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// config.go - resolved per-call configuration and its defaults.

package builder

import (
	"math/rand"
)

// builderConfig is immutable once newBuilderConfig returns.
type builderConfig struct {
	// idFn names the vertex with graph-wide index i.
	idFn IDFn
	// edgeFn names the edge with graph-wide index i.
	edgeFn IDFn
	// rng drives RandomDAG; nil unless WithSeed/WithRand.
	rng *rand.Rand
}

// Default name prefixes: vertices v0, v1, …; edges e0, e1, ….
const (
	defaultVertexPrefix = "v"
	defaultEdgePrefix   = "e"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   SymbolNumberIDFn(defaultVertexPrefix),
		edgeFn: SymbolNumberIDFn(defaultEdgePrefix),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
