// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for fincat/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Enforce concurrency-safe testing patterns (no *testing.T usage inside goroutines).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fincat/core"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"

	VertexBase = "Base"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
	NCloners        = 20
)

// NewGraphFull RETURNS a Graph configured for broad contract coverage
// (loops and parallel edges enabled).
func NewGraphFull() *core.Graph {
	return core.NewGraph(core.WithMultiEdges(), core.WithLoops())
}

// NewChain RETURNS the graph A --f--> B --g--> C.
//
// Notes:
//   - Vertex indices are A=0, B=1, C=2; edge indices f=0, g=1.
func NewChain(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	for _, name := range []string{VertexA, VertexB, VertexC} {
		_, err := g.AddVertex(name)
		require.NoError(t, err, "AddVertex(%s)", name)
	}
	_, err := g.AddEdgeByName(VertexA, VertexB, "f")
	require.NoError(t, err, "AddEdgeByName(A,B,f)")
	_, err = g.AddEdgeByName(VertexB, VertexC, "g")
	require.NoError(t, err, "AddEdgeByName(B,C,g)")

	return g
}

// MustNoErrorsFromChan FAILS the test if any non-nil error is received.
//
// Behavior highlights:
//   - Goroutines send errors to a channel; the parent goroutine validates.
//
// Notes:
//   - errCh must be closed by the caller.
func MustNoErrorsFromChan(t *testing.T, errCh <-chan error, op string) {
	t.Helper()

	for err := range errCh {
		if err == nil {
			continue
		}
		t.Fatalf("%s: unexpected concurrent error: %v", op, err)
	}
}
