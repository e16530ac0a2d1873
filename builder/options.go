// SPDX-License-Identifier: MIT
// Package: fincat/builder
//
// options.go - functional options. Option constructors panic on nil
// arguments (programmer error); constructors never do.

package builder

import (
	"math/rand"
)

// BuilderOption configures a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme names vertices with fn.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithEdgeScheme names edges with fn.
func WithEdgeScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeScheme(nil)")
	}
	return func(c *builderConfig) {
		c.edgeFn = fn
	}
}

// WithRand uses r for stochastic shapes.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSymbolIDs names vertices A, B, …, Z, AA, AB, … (spreadsheet columns).
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithLowerEdgeIDs names edges f, g, h, … then f0, g0, … (see LowerEdgeIDFn).
func WithLowerEdgeIDs() BuilderOption {
	return WithEdgeScheme(LowerEdgeIDFn)
}
