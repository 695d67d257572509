// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//   - Arithmetic kernels over triplet stores: Add and Multiply. Both are
//     built on the structural kernels (Copy, PruneNearZero) and a shared
//     linear-search-or-append merge primitive.
//
// Determinism & Performance:
//   - Fixed entry-order loops; outputs are deterministic for given inputs.
//   - The merge is a deliberate linear scan per candidate contribution — the
//     contract fixes outputs, and this is the canonical O(n·m) rendition.
//     Callers needing index-accelerated variants can layer one behind the
//     same contract.

package coo

// mergeEntry accumulates v into out at (row, col): if an entry for that
// position already exists it is updated in place, otherwise a new entry is
// appended after a capacity check.
// Assumes out is non-nil. Returns ErrCapacityExceeded on a full store.
// Complexity: O(nnz(out)) per call (linear search).
func mergeEntry(out *Matrix, row, col int, v float64) error {
	// Linear search over current entries for a matching position.
	for k := range out.entries {
		if out.entries[k].Row == row && out.entries[k].Col == col {
			out.entries[k].Value += v // accumulate in place

			return nil
		}
	}

	// Not found: capacity contract, then append.
	if err := ValidateCapacity(out, len(out.entries)+1); err != nil {
		return err
	}
	out.entries = append(out.entries, Entry{Row: row, Col: col, Value: v})

	return nil
}

// Add stores in1 + in2 into out.
// Implementation:
//   - Stage 1: validate references; in1 and in2 must share BOTH dimensions.
//   - Stage 2: deep-copy in1 into out (reusing Copy's capacity contract).
//   - Stage 3: merge each entry of in2 via linear-search-or-append.
//   - Stage 4: prune entries that cancelled to near zero.
//
// Behavior highlights:
//   - The result holds at most one entry per position even when the inputs
//     carry duplicates among themselves.
//   - out must not alias in1 or in2 (unsupported aliasing pattern).
//   - On failure out is left in an unspecified state.
//
// Errors:
//   - ErrNilMatrix from validation,
//   - ErrDimensionMismatch unless rows AND cols both match,
//   - ErrCapacityExceeded when out cannot hold the merged result.
//
// Complexity:
//   - Time O(nnz1 × nnz2) worst case (linear search per merged entry),
//     Space O(1) beyond out's buffer.
func Add(out, in1, in2 *Matrix, opts ...Option) error {
	if err := ValidateNotNil(out); err != nil {
		return cooErrorf("Add", err)
	}
	if err := ValidateNotNil(in1); err != nil {
		return cooErrorf("Add", err)
	}
	if err := ValidateNotNil(in2); err != nil {
		return cooErrorf("Add", err)
	}
	// Both dimensions must match; a single matching dimension is a mismatch.
	if err := ValidateSameShape(in1, in2); err != nil {
		return cooErrorf("Add", err)
	}

	// Seed the result with in1's contents (header included).
	if err := Copy(out, in1); err != nil {
		return cooErrorf("Add", err)
	}

	// Merge in2 entry by entry.
	for _, e := range in2.entries {
		if err := mergeEntry(out, e.Row, e.Col, e.Value); err != nil {
			return cooErrorf("Add", err)
		}
	}

	// Opposite-signed inputs may have cancelled; sweep them out.
	if err := PruneNearZero(out, opts...); err != nil {
		return cooErrorf("Add", err)
	}

	return nil
}

// Multiply stores the matrix product in1 × in2 into out.
// Implementation:
//   - Stage 1: validate references; require in1.Cols == in2.Rows.
//   - Stage 2: reset out's header to in1.Rows × in2.Cols, count to zero.
//   - Stage 3: for every entry (i, k, v1) of in1, scan in2 for entries
//     (k, c, v2) and merge v1*v2 into position (i, c).
//   - Stage 4: prune near-zero results.
//
// Behavior highlights:
//   - This is the sparse-times-sparse triple product expressed without any
//     row/column adjacency index; the inner merge is a linear search.
//   - The engine trusts in1's header: entries internally inconsistent with
//     the declared dimensions are not detected here.
//   - out must not alias in1 or in2.
//
// Errors:
//   - ErrNilMatrix from validation,
//   - ErrDimensionMismatch unless in1.Cols == in2.Rows,
//   - ErrCapacityExceeded when out cannot hold the accumulated result.
//
// Complexity:
//   - Time O(nnz1 × nnz2 × nnz(out)) worst case, Space O(1) beyond out.
func Multiply(out, in1, in2 *Matrix, opts ...Option) error {
	if err := ValidateNotNil(out); err != nil {
		return cooErrorf("Multiply", err)
	}
	if err := ValidateNotNil(in1); err != nil {
		return cooErrorf("Multiply", err)
	}
	if err := ValidateNotNil(in2); err != nil {
		return cooErrorf("Multiply", err)
	}
	if err := ValidateMulCompatible(in1, in2); err != nil {
		return cooErrorf("Multiply", err)
	}

	// Result extent is in1.Rows × in2.Cols; start from an empty store.
	out.rows, out.cols = in1.rows, in2.cols
	out.entries = out.entries[:0]

	// Triple product: each in1 entry meets every in2 entry in its pivot row.
	for _, e1 := range in1.entries {
		for _, e2 := range in2.entries {
			if e2.Row != e1.Col {
				continue // not in the pivot row of e1
			}
			// Contribution v1*v2 lands at (i, c) = (e1.Row, e2.Col).
			if err := mergeEntry(out, e1.Row, e2.Col, e1.Value*e2.Value); err != nil {
				return cooErrorf("Multiply", err)
			}
		}
	}

	// Accumulation may have cancelled to near zero; sweep.
	if err := PruneNearZero(out, opts...); err != nil {
		return cooErrorf("Multiply", err)
	}

	return nil
}
