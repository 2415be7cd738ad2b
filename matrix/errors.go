// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All public operations return these
// sentinels (optionally wrapped with call context via fmt.Errorf("...: %w"))
// and tests match them via errors.Is. No operation panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is negative.
	// Zero-sized axes are legal and produce empty matrices.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSizeMismatch is returned when provided data does not hold exactly
	// rows*cols elements (construction) or exactly one axis run (fills).
	// Raised once, at the offending call, before any mutation.
	ErrSizeMismatch = errors.New("matrix: data length does not match dimensions")

	// ErrOutOfRange indicates that a row, column or view index is outside
	// the valid bounds. Raised at the point of the offending access.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrAliasViolation is returned when a disjoint-split request names the
	// same row or column more than once: the one request that would hand out
	// two live mutable views over the same elements.
	ErrAliasViolation = errors.New("matrix: mutable views would alias")
)

// cellErrorf wraps an underlying error with cell-access context.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", method, row, col, err)
}

// axisErrorf wraps an underlying error with single-axis context.
func axisErrorf(method string, index int, err error) error {
	return fmt.Errorf("matrix.%s(%d): %w", method, index, err)
}
