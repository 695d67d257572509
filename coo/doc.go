// SPDX-License-Identifier: MIT

// Package coo implements a coordinate-triplet ("COO") sparse matrix engine
// over caller-owned, fixed-capacity storage.
//
// # Data model
//
// A Matrix is an explicit header {rows, cols} plus a flat slice of
// (Row, Col, Value) entries. len(entries) is the live count (nnz) and
// cap(entries) is the caller-declared capacity — the engine never grows,
// shrinks or frees a buffer; every appending kernel checks remaining
// capacity FIRST and fails with ErrCapacityExceeded. Construct stores with
// New (engine allocates once) or Wrap (bind a caller-owned buffer).
//
// A value is "present" once its magnitude is at or above the configured
// epsilon (DefaultEpsilon, overridable per call via WithEpsilon). Entries
// below threshold are removed only by dedicated pruning, never implicitly.
//
// # Ordering
//
// Generate appends in row-major scan order, and that is the only ordering
// guarantee given. Swap-and-pop removal (DeleteElement, PruneNearZero, and
// the pruning pass inside Add/Multiply) voids it: after any removal the
// store holds the same multiset of entries in unspecified order.
//
// # Operations
//
//	Generate / Expand      — dense↔sparse conversion
//	Copy / Clone           — value-semantics duplication
//	Transpose              — in-place relabeling, O(nnz)
//	DeleteElement          — positional swap-and-pop, O(1)
//	PruneNearZero          — idempotent below-threshold sweep
//	Add / Multiply         — merging arithmetic + automatic pruning
//
// Every kernel validates its inputs and returns sentinel errors matched via
// errors.Is: ErrNilMatrix, ErrNilBuffer, ErrBadShape, ErrDimensionMismatch,
// ErrCapacityExceeded, ErrOutOfRange.
//
// # Failure and aliasing contract
//
// Operations detect and report failure locally; there is no rollback. A
// store whose last mutating call returned an error is in an unspecified
// state and must not be reused before being rebuilt. Output stores must not
// alias inputs of the same call (e.g. Add(m, m, b) is unsupported), and Copy
// assumes distinct allocations. All kernels are synchronous and lock-free;
// concurrent mutation of a shared store is the caller's problem to exclude.
package coo
