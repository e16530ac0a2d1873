// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []int64
}

// NewDense creates an r×c zero matrix. 0×0 is allowed (the empty graph).
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewIdentity creates the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]int64(nil), m.data...)}
}

// Equal reports equal shape and elements.
func (m *Dense) Equal(o *Dense) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// IsZero reports whether every element is 0.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders rows on separate lines, e.g. "[0 1]\n[0 0]".
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
