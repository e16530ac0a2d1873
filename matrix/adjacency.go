// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/fincat/dfs"
	"github.com/katalvlaran/fincat/fincat"
)

// Adjacency returns the V×V matrix of edge multiplicities of g.
// Complexity: O(V² + E).
func Adjacency(g fincat.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var e int
	for e = 0; e < g.EdgeCount(); e++ {
		m.data[g.Src(e)*n+g.Tgt(e)]++
	}

	return m, nil
}

// PathCounts returns A^k: entry (i, j) is the number of paths i → j with
// exactly k edges (k = 0 gives the identities). Counts beyond math.MaxInt64
// fail with ErrOverflow.
func PathCounts(g fincat.Graph, k int) (*Dense, error) {
	a, err := Adjacency(g)
	if err != nil {
		return nil, err
	}

	return Pow(a, k)
}

// HomCounts returns H with H[i][j] = |Hom(i, j)| in the free category on g.
// It requires an acyclic graph; otherwise some hom-set is infinite.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrInfinite: g has a cycle (the message names one).
//   - ErrOverflow: some hom-set has more than math.MaxInt64 paths.
//
// Complexity: O(V⁴) worst case (V-1 products).
func HomCounts(g fincat.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cycle, found, err := dfs.FindCycle(g); err != nil {
		return nil, err
	} else if found {
		return nil, fmt.Errorf("%w: cycle through edges %v", ErrInfinite, cycle)
	}

	a, err := Adjacency(g)
	if err != nil {
		return nil, err
	}
	total, err := NewIdentity(a.r)
	if err != nil {
		return nil, err
	}
	power := total.Clone()
	for !power.IsZero() {
		if power, err = Mul(power, a); err != nil {
			return nil, err
		}
		if total, err = Add(total, power); err != nil {
			return nil, err
		}
	}

	return total, nil
}
