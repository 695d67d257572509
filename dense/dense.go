// Package dense provides the row-major dense counterpart of the triplet
// store: a concrete matrix of float64 values over a flat slice, for
// performance and cache friendliness. Conversion kernels in package coo
// accept/produce raw row-major buffers; Dense is the structured wrapper
// callers hold around such a buffer.
package dense

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("dense: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("dense: index out of bounds")

// ErrBadBuffer indicates that a supplied backing slice does not match rows*cols.
var ErrBadBuffer = errors.New("dense: buffer length must equal rows*cols")

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Dense over a fresh zeroed slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice creates an r×c Dense matrix copying the given row-major values.
// The slice is copied, not retained: later mutation of values does not
// affect the returned matrix.
// Complexity: O(r*c).
func FromSlice(rows, cols int, values []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows*cols {
		return nil, ErrBadBuffer
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Slice returns a copy of the backing row-major buffer. Handy as the raw
// input of coo.Generate or as an oracle in tests.
// Complexity: O(r*c).
func (m *Dense) Slice() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
