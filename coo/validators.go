// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/capacity checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → ...).
//  - Each validator documents what it assumes (e.g. no nil check).

package coo

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	return nil
}

// ValidateShape ensures a requested dense extent is usable: rows > 0, cols > 0.
//
// Returns ErrBadShape on violation.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrBadShape)
	}

	return nil
}

// ValidateBuffer ensures a dense buffer is present and long enough to hold a
// rows×cols row-major extent. Assumes the shape was validated by the caller.
//
// Returns ErrNilBuffer for nil input, ErrDimensionMismatch for a short buffer.
// Complexity: O(1).
func ValidateBuffer(buf []float64, rows, cols int) error {
	if buf == nil {
		return validatorErrorf("ValidateBuffer", ErrNilBuffer)
	}
	if len(buf) < rows*cols {
		return validatorErrorf("ValidateBuffer", ErrDimensionMismatch) // buffer shorter than rows*cols
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// BOTH row and column counts must match; a single matching dimension is a
// mismatch. Assumes a and b are not nil (caller must ensure).
//
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (matrix-product shape rule).
// Assumes a and b are not nil (caller must ensure).
//
// Returns ErrDimensionMismatch on violation.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateCapacity ensures m's declared capacity can hold need entries.
// Kernels call this BEFORE any write past the current bound; the capacity
// contract is checked, never discovered. Assumes m is not nil.
//
// Returns ErrCapacityExceeded on violation.
// Complexity: O(1).
func ValidateCapacity(m *Matrix, need int) error {
	if need > cap(m.entries) {
		return validatorErrorf("ValidateCapacity", ErrCapacityExceeded)
	}

	return nil
}

// ValidatePos ensures pos addresses a live entry: 0 ≤ pos < NNZ().
// Assumes m is not nil.
//
// Returns ErrOutOfRange on violation.
// Complexity: O(1).
func ValidatePos(m *Matrix, pos int) error {
	if pos < 0 || pos >= len(m.entries) {
		return validatorErrorf("ValidatePos", ErrOutOfRange)
	}

	return nil
}
