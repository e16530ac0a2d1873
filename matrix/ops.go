// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Add returns a + b, or ErrOverflow when an entry leaves the int64 range.
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := a.Clone()
	var ok bool
	for i, v := range b.data {
		if out.data[i], ok = addInt64(out.data[i], v); !ok {
			return nil, matrixErrorf(opAdd, fmt.Errorf("%w at (%d,%d)", ErrOverflow, i/a.c, i%a.c))
		}
	}

	return out, nil
}

// Mul returns the product a·b, or ErrOverflow when a product or partial sum
// leaves the int64 range.
// Complexity: O(a.r * a.c * b.c).
func Mul(a, b *Dense) (*Dense, error) {
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: b.c, data: make([]int64, a.r*b.c)}
	var i, k, j int
	var term int64
	var ok bool
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				idx := i*b.c + j
				if term, ok = mulInt64(aik, b.data[k*b.c+j]); ok {
					out.data[idx], ok = addInt64(out.data[idx], term)
				}
				if !ok {
					return nil, matrixErrorf(opMul, fmt.Errorf("%w at (%d,%d)", ErrOverflow, i, j))
				}
			}
		}
	}

	return out, nil
}

// Pow returns m^k by repeated squaring; m^0 is the identity. ErrOverflow is
// returned when the result or a squared intermediate leaves the int64 range.
// Complexity: O(n³ log k).
func Pow(m *Dense, k int) (*Dense, error) {
	if m.r != m.c {
		return nil, matrixErrorf(opPow, ErrDimensionMismatch)
	}
	if k < 0 {
		return nil, matrixErrorf(opPow, ErrNegativePower)
	}
	result, err := NewIdentity(m.r)
	if err != nil {
		return nil, err
	}
	base := m.Clone()
	for k > 0 {
		if k&1 == 1 {
			if result, err = Mul(result, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// addInt64 returns x + y and whether it fits in an int64.
func addInt64(x, y int64) (int64, bool) {
	s := x + y
	if (x > 0 && y > 0 && s < 0) || (x < 0 && y < 0 && s >= 0) {
		return 0, false
	}

	return s, true
}

// mulInt64 returns x * y and whether it fits in an int64.
func mulInt64(x, y int64) (int64, bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	p := x * y
	if p/y != x {
		return 0, false
	}

	return p, true
}
