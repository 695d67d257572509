// SPDX-License-Identifier: MIT
// Package coo — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical kernel.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package coo

import (
	"math"

	"github.com/sparsekit/sparsekit/dense"
)

// ---------- Constructors bridging dense.Dense ----------

// FromDense builds a new triplet store from a dense matrix, sized to the
// exact nonzero count discovered under the configured epsilon.
// Implementation:
//   - Stage 1: flatten d into a row-major buffer (generic At path).
//   - Stage 2: count above-threshold values to size the store exactly.
//   - Stage 3: delegate to Generate.
//
// Complexity: O(r*c). The returned store has Cap() == NNZ(): any later
// appending operation on it requires the caller to re-declare capacity.
func FromDense(d *dense.Dense, opts ...Option) (*Matrix, error) {
	if d == nil {
		return nil, cooErrorf("FromDense", ErrNilBuffer)
	}
	o := gatherOptions(opts...)

	// Flatten once; Slice copies, so the store never aliases d.
	rows, cols := d.Rows(), d.Cols()
	buf := d.Slice()

	// Exact-fit capacity under the same threshold Generate will apply.
	need := 0
	for _, v := range buf {
		if math.Abs(v) >= o.eps {
			need++
		}
	}

	out, err := New(rows, cols, need)
	if err != nil {
		return nil, cooErrorf("FromDense", err)
	}
	if err = Generate(out, buf, rows, cols, opts...); err != nil {
		return nil, err // Generate already carries its operation tag
	}

	return out, nil
}

// ToDense expands a triplet store into a freshly allocated dense.Dense.
// Complexity: O(rows*cols + nnz).
func ToDense(m *Matrix) (*dense.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cooErrorf("ToDense", err)
	}

	buf := make([]float64, m.rows*m.cols)
	if err := Expand(buf, m.rows, m.cols, m); err != nil {
		return nil, err
	}

	d, err := dense.FromSlice(m.rows, m.cols, buf)
	if err != nil {
		return nil, cooErrorf("ToDense", err)
	}

	return d, nil
}

// ---------- Aliases (1:1 to kernels) ----------

// Sum is an alias for Add: out = in1 + in2.
// Complexity: O(nnz1 × nnz2).
func Sum(out, in1, in2 *Matrix, opts ...Option) error { return Add(out, in1, in2, opts...) }

// Mul is an alias for Multiply: out = in1 × in2.
// Complexity: O(nnz1 × nnz2 × nnz(out)).
func Mul(out, in1, in2 *Matrix, opts ...Option) error { return Multiply(out, in1, in2, opts...) }

// T is an alias for Transpose: relabels m in place.
// Complexity: O(nnz).
func T(m *Matrix) error { return Transpose(m) }

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(nnz) copy.
func CloneMatrix(m *Matrix) *Matrix {
	return m.Clone()
}
