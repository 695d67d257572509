// SPDX-License-Identifier: Apache-2.0
// Package dense_test contains unit tests for the row-major Dense matrix.
package dense_test

import (
	"testing"

	"github.com/sparsekit/sparsekit/dense"
	"github.com/stretchr/testify/require"
)

// TestNew covers shape validation and the zeroed initial state.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"valid 2x3", 2, 3, nil},
		{"1x1", 1, 1, nil},
		{"zero rows", 0, 3, dense.ErrInvalidDimensions},
		{"zero cols", 3, 0, dense.ErrInvalidDimensions},
		{"negative", -1, 2, dense.ErrInvalidDimensions},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := dense.New(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			v, err := m.At(0, 0)
			require.NoError(t, err)
			require.Zero(t, v)
		})
	}
}

// TestFromSlice covers buffer-length validation and copy semantics.
func TestFromSlice(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := dense.FromSlice(2, 3, src)
	require.NoError(t, err)

	// The source slice is copied, not retained.
	src[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = dense.FromSlice(2, 3, []float64{1, 2})
	require.ErrorIs(t, err, dense.ErrBadBuffer)
	_, err = dense.FromSlice(0, 3, nil)
	require.ErrorIs(t, err, dense.ErrInvalidDimensions)
}

// TestAtSet covers reads, writes and the bounds sentinel.
func TestAtSet(t *testing.T) {
	t.Parallel()

	m, err := dense.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, -2.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -2.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, dense.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(0, 2, 1), dense.ErrIndexOutOfBounds)
}

// TestCloneAndSlice covers deep-copy independence of both access paths.
func TestCloneAndSlice(t *testing.T) {
	t.Parallel()

	m, err := dense.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	dup := m.Clone()
	require.NoError(t, m.Set(0, 0, 9))
	v, err := dup.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	s := m.Slice()
	s[3] = 0 // mutating the snapshot must not reach the matrix
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
}

// TestString pins the debug rendition.
func TestString(t *testing.T) {
	t.Parallel()

	m, err := dense.FromSlice(2, 2, []float64{1, 0, 0.5, -2})
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0.5, -2]\n", m.String())
}
