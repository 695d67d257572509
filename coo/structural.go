// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//   - Structural mutation kernels over the triplet store: Copy, Transpose,
//     DeleteElement and PruneNearZero.
//
// Determinism & Performance:
//   - Transpose is a pure relabeling: no entry moves, entry order untouched.
//   - Deletion is swap-and-pop: O(1), but it destroys the generation-order
//     guarantee for all subsequent reads. Tests must not assume stable
//     ordering after any removal.

package coo

import "math"

// Copy deep-copies in's header and all entries into out, establishing value
// semantics: post-copy mutation of either store never affects the other.
// Implementation:
//   - Stage 1: validate both references and out's declared capacity.
//   - Stage 2: copy header, re-slice out to in's nnz, copy entries.
//
// Behavior highlights:
//   - out's declared capacity is preserved; only its header and logical
//     contents change.
//   - in and out must be distinct stores (aliasing is unsupported).
//
// Errors:
//   - ErrNilMatrix from validation,
//   - ErrCapacityExceeded when out cannot hold in's nnz entries.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func Copy(out, in *Matrix) error {
	if err := ValidateNotNil(out); err != nil {
		return cooErrorf("Copy", err)
	}
	if err := ValidateNotNil(in); err != nil {
		return cooErrorf("Copy", err)
	}
	// Capacity contract: checked before any write.
	if err := ValidateCapacity(out, len(in.entries)); err != nil {
		return cooErrorf("Copy", err)
	}

	// Header first, then the logical contents.
	out.rows, out.cols = in.rows, in.cols
	out.entries = out.entries[:len(in.entries)]
	copy(out.entries, in.entries)

	return nil
}

// Transpose relabels m in place: the header's rows/cols swap and every
// entry's Row/Col swap. No entry is moved, added or removed, so entry order
// is unchanged and no capacity is consumed.
//
// Errors:
//   - ErrNilMatrix for a nil store.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func Transpose(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return cooErrorf("Transpose", err)
	}

	// The header's dimension pair swaps exactly like an entry's index pair.
	m.rows, m.cols = m.cols, m.rows
	for k := range m.entries {
		m.entries[k].Row, m.entries[k].Col = m.entries[k].Col, m.entries[k].Row
	}

	return nil
}

// DeleteElement removes the entry at 0-based logical position pos via
// swap-and-pop: the last entry is copied into pos's slot and the logical
// count shrinks by one.
//
// Behavior highlights:
//   - O(1), but any prior ordering guarantee is void after the first call.
//   - Deleting the last position is a plain pop (the self-copy is harmless).
//
// Errors:
//   - ErrNilMatrix for a nil store,
//   - ErrOutOfRange unless 0 ≤ pos < NNZ().
//
// Complexity:
//   - Time O(1), Space O(1).
func DeleteElement(m *Matrix, pos int) error {
	if err := ValidateNotNil(m); err != nil {
		return cooErrorf("DeleteElement", err)
	}
	if err := ValidatePos(m, pos); err != nil {
		return cooErrorf("DeleteElement", err)
	}

	// Swap-and-pop: last entry fills the vacated slot.
	last := len(m.entries) - 1
	m.entries[pos] = m.entries[last]
	m.entries = m.entries[:last]

	return nil
}

// PruneNearZero sweeps the store and swap-removes every entry whose magnitude
// is below the configured epsilon.
// Implementation:
//   - Stage 1: validate the reference; resolve options.
//   - Stage 2: sweep with a held index — after a swap-removal the index does
//     NOT advance, so the swapped-in entry is re-examined (it may itself be
//     below threshold).
//
// Behavior highlights:
//   - Idempotent: a second run over an already-pruned store changes nothing.
//   - Entry order after pruning is removal-order dependent (swap-and-pop).
//
// Errors:
//   - ErrNilMatrix for a nil store.
//
// Complexity:
//   - Time O(nnz), Space O(1). Each iteration either advances the index or
//     shrinks the store, so the sweep terminates after at most 2*nnz steps.
func PruneNearZero(m *Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return cooErrorf("PruneNearZero", err)
	}
	o := gatherOptions(opts...)

	k := 0
	for k < len(m.entries) {
		if math.Abs(m.entries[k].Value) < o.eps {
			// Swap-remove and re-examine slot k without advancing.
			last := len(m.entries) - 1
			m.entries[k] = m.entries[last]
			m.entries = m.entries[:last]

			continue
		}
		k++
	}

	return nil
}
