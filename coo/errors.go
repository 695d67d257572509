// SPDX-License-Identifier: MIT
// Package coo: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the coo
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package coo

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "coo: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with cooErrorf at the outer
// boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil references -> shape -> dimension mismatch -> capacity -> range.

var (
	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("coo: nil matrix")

	// ErrNilBuffer indicates that a required dense buffer argument was nil.
	ErrNilBuffer = errors.New("coo: nil dense buffer")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors and conversion kernels must validate shape before any write.
	ErrBadShape = errors.New("coo: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add with different shapes, Multiply where a.Cols != b.Rows, or a
	// dense buffer too short for the declared rows*cols extent.
	ErrDimensionMismatch = errors.New("coo: dimension mismatch")

	// ErrCapacityExceeded signals that a destination store's caller-declared
	// capacity is insufficient for the result. The capacity contract is the
	// principal failure mode of this engine: it is checked before any write
	// past the declared bound, never discovered after one.
	ErrCapacityExceeded = errors.New("coo: declared capacity exceeded")

	// ErrOutOfRange indicates that an entry position is outside [0, NNZ()).
	ErrOutOfRange = errors.New("coo: position out of range")
)

// cooErrorf wraps an underlying sentinel with the originating operation tag.
// Call sites wrap exactly once; validators return plain sentinels.
func cooErrorf(op string, err error) error {
	return fmt.Errorf("coo.%s: %w", op, err)
}
