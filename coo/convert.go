// SPDX-License-Identifier: MIT
// Package: coo
//
// Purpose:
//   - Conversion kernels between dense row-major buffers and the triplet store:
//     Generate (dense→sparse) and Expand (sparse→dense).
//
// Determinism & Performance:
//   - Fixed row-major loop order (i→j); generation order is the ONLY entry
//     ordering guarantee the engine gives, preserved until a swap-removal.
//   - No hidden allocations: both kernels write exclusively into caller-owned
//     storage within declared bounds.

package coo

import "math"

// Generate scans a dense row-major buffer and rebuilds out as its sparse
// triplet form, keeping every value whose magnitude is at or above the
// configured epsilon (inclusive: |v| ≥ eps).
// Implementation:
//   - Stage 1: validate out, in, shape, buffer length; resolve options.
//   - Stage 2: reset out's header to rows×cols and its entry count to zero.
//   - Stage 3: row-major scan; capacity is checked BEFORE each append.
//
// Behavior highlights:
//   - Entries are appended in scan order (row-major), defining the canonical
//     generation order.
//   - Magnitude comparison uses |v|: negative values are stored like positive
//     ones. Values exactly at the threshold are kept.
//   - On failure out is left in an unspecified, partially-written state; the
//     caller must not use it (see package doc on failed operations).
//
// Inputs:
//   - out: destination store; its declared capacity bounds the result.
//   - in: dense row-major buffer, at least rows*cols long.
//   - rows, cols: dense extent of in; both must be > 0.
//
// Errors:
//   - ErrNilMatrix / ErrNilBuffer / ErrBadShape from validation,
//   - ErrDimensionMismatch when in is shorter than rows*cols,
//   - ErrCapacityExceeded when the discovered nonzero count outgrows out.
//
// Complexity:
//   - Time O(rows*cols), Space O(1) beyond the destination buffer.
func Generate(out *Matrix, in []float64, rows, cols int, opts ...Option) error {
	// Validate references and shape before touching any storage.
	if err := ValidateNotNil(out); err != nil {
		return cooErrorf("Generate", err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return cooErrorf("Generate", err)
	}
	if err := ValidateBuffer(in, rows, cols); err != nil {
		return cooErrorf("Generate", err)
	}
	// Resolve the numeric policy (epsilon) once.
	o := gatherOptions(opts...)

	// Reset the destination header and logical count; capacity is untouched.
	out.rows, out.cols = rows, cols
	out.entries = out.entries[:0]

	// Row-major scan with a cached row base offset.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		base := i * cols // flat offset of row i
		for j = 0; j < cols; j++ {
			v = in[base+j]
			// Below-threshold values are absent by definition; skip.
			if math.Abs(v) < o.eps {
				continue
			}
			// Capacity contract: check before the write, never after.
			if err := ValidateCapacity(out, len(out.entries)+1); err != nil {
				return cooErrorf("Generate", err)
			}
			out.entries = append(out.entries, Entry{Row: i, Col: j, Value: v})
		}
	}

	// nnz ≤ rows*cols holds by construction of the scan; no defensive recheck.
	return nil
}

// Expand scatters a triplet store into a dense row-major buffer.
// Implementation:
//   - Stage 1: validate in, out, shape; require in's header to equal (rows, cols).
//   - Stage 2: zero-fill the rows*cols extent of out.
//   - Stage 3: scatter each entry into out[Row*cols+Col].
//
// Behavior highlights:
//   - Duplicate positions in the store are not an error: last-write-wins in
//     entry order.
//   - Only the first rows*cols elements of out are touched.
//
// Inputs:
//   - out: destination dense buffer, at least rows*cols long.
//   - rows, cols: expected extent; must match in's header exactly.
//   - in: source store, read-only.
//
// Errors:
//   - ErrNilMatrix / ErrNilBuffer / ErrBadShape from validation,
//   - ErrDimensionMismatch when the header disagrees with (rows, cols) or
//     out is shorter than rows*cols.
//
// Complexity:
//   - Time O(rows*cols + nnz), Space O(1).
func Expand(out []float64, rows, cols int, in *Matrix) error {
	if err := ValidateNotNil(in); err != nil {
		return cooErrorf("Expand", err)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return cooErrorf("Expand", err)
	}
	if err := ValidateBuffer(out, rows, cols); err != nil {
		return cooErrorf("Expand", err)
	}
	// The store's own header is authoritative; the caller's extent must agree.
	if in.rows != rows || in.cols != cols {
		return cooErrorf("Expand", ErrDimensionMismatch)
	}

	// Zero-fill the full dense extent first.
	n := rows * cols
	for k := 0; k < n; k++ {
		out[k] = 0
	}

	// Scatter entries in order; duplicates resolve last-write-wins.
	for _, e := range in.entries {
		out[e.Row*cols+e.Col] = e.Value
	}

	return nil
}
