// SPDX-License-Identifier: MIT

// Package coo: domain types of the triplet engine.
// This file intentionally contains ONLY the store types, constructors and
// read accessors. Errors, options and validators live in dedicated files
// (errors.go, options.go, validators.go) per the package conventions.
package coo

// Entry is a single stored matrix position: 0-based (Row, Col) indices and
// the held Value. An Entry is "present" once |Value| is at or above the
// configured epsilon; below-threshold entries are removed only by dedicated
// pruning operations, never implicitly by arithmetic scans.
type Entry struct {
	Row, Col int     // 0-based matrix position
	Value    float64 // stored magnitude-bearing value
}

// Matrix is a coordinate-triplet ("COO") sparse matrix over a fixed-capacity
// entry buffer.
//
// Storage model:
//   - rows, cols describe the logical dense extent (the "header").
//   - entries holds the nnz live triplets: len(entries) == NNZ() and
//     cap(entries) == Cap(), the caller-declared capacity.
//
// The engine NEVER grows the buffer: every appending kernel checks remaining
// capacity first and fails with ErrCapacityExceeded. Entry order is the
// row-major generation order and is preserved only until a swap-removal
// (DeleteElement, PruneNearZero) occurs. Entries are not guaranteed free of
// duplicate positions except where a kernel explicitly merges (Add, Multiply).
//
// Concurrency: a Matrix is a plain buffer with no internal locking; the
// engine assumes single-writer, non-aliased access (see package doc).
type Matrix struct {
	rows, cols int     // logical dense extent
	entries    []Entry // live triplets; len==nnz, cap==declared capacity
}

// New returns an empty rows×cols Matrix owning a fresh buffer able to hold
// up to capacity entries.
// Stage 1 (Validate): rows, cols > 0 and capacity ≥ 0.
// Stage 2 (Prepare): single allocation of the entry buffer.
// Complexity: O(1) alloc; zeroing is bounded by capacity.
func New(rows, cols, capacity int) (*Matrix, error) {
	// Validate the dense extent first (shape errors outrank capacity errors).
	if err := ValidateShape(rows, cols); err != nil {
		return nil, cooErrorf("New", err)
	}
	// A negative capacity is a nonsensical declaration, not a tight buffer.
	if capacity < 0 {
		return nil, cooErrorf("New", ErrCapacityExceeded)
	}

	return &Matrix{rows: rows, cols: cols, entries: make([]Entry, 0, capacity)}, nil
}

// Wrap binds a caller-owned entry buffer as the backing storage of an empty
// rows×cols Matrix. cap(buf) is the declared capacity; any existing length
// is discarded. The caller retains ownership: the engine only reads and
// writes within cap(buf) and never reallocates.
// Complexity: O(1).
func Wrap(rows, cols int, buf []Entry) (*Matrix, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, cooErrorf("Wrap", err)
	}

	// Re-slice to zero length; capacity (and ownership) stay with the caller.
	return &Matrix{rows: rows, cols: cols, entries: buf[:0]}, nil
}

// Rows returns the logical number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the count of currently stored entries ("number of non-zeros").
// Complexity: O(1).
func (m *Matrix) NNZ() int { return len(m.entries) }

// Cap returns the caller-declared entry capacity. Complexity: O(1).
func (m *Matrix) Cap() int { return cap(m.entries) }

// Entry returns the value entry at 0-based logical position pos.
// Returns ErrOutOfRange unless 0 ≤ pos < NNZ(). Complexity: O(1).
func (m *Matrix) Entry(pos int) (Entry, error) {
	if err := ValidatePos(m, pos); err != nil {
		return Entry{}, cooErrorf("Entry", err)
	}

	return m.entries[pos], nil
}

// Entries exposes the live entry slice for read-only iteration (diagnostics,
// formatters). Callers MUST NOT mutate the returned slice; use the kernels
// for every modification so the store invariants hold.
// Complexity: O(1), no copy.
func (m *Matrix) Entries() []Entry {
	return m.entries[:len(m.entries):len(m.entries)]
}

// Clone returns a deep copy of m with the same declared capacity.
// The returned Matrix is independent of the original.
// Complexity: O(nnz) time, O(capacity) memory.
func (m *Matrix) Clone() *Matrix {
	// Allocate a fresh buffer preserving the declared capacity.
	dup := make([]Entry, len(m.entries), cap(m.entries))
	copy(dup, m.entries)

	return &Matrix{rows: m.rows, cols: m.cols, entries: dup}
}
