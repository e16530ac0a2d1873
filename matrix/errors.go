// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be ≥ 0")

	// ErrOutOfRange is returned when a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativePower is returned by Pow for a negative exponent.
	ErrNegativePower = errors.New("matrix: negative power")

	// ErrGraphNil is returned when a nil graph is supplied.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrOverflow is returned when an entry leaves the int64 range.
	ErrOverflow = errors.New("matrix: int64 overflow")

	// ErrInfinite is returned by HomCounts when some hom-set is infinite.
	ErrInfinite = errors.New("matrix: infinitely many paths")
)

// Operation tags for error wrapping.
const (
	opAdd = "Add"
	opMul = "Mul"
	opPow = "Pow"
)

// matrixErrorf wraps a non-nil err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
