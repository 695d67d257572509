// SPDX-License-Identifier: Apache-2.0
// Package sparsefmt_test pins the byte-for-byte diagnostic format.
package sparsefmt_test

import (
	"strings"
	"testing"

	"github.com/sparsekit/sparsekit/coo"
	"github.com/sparsekit/sparsekit/sparsefmt"
	"github.com/stretchr/testify/require"
)

// build generates a store from a dense row-major slice or fails the test.
func build(t *testing.T, in []float64, rows, cols int) *coo.Matrix {
	t.Helper()
	m, err := coo.New(rows, cols, rows*cols)
	require.NoError(t, err)
	require.NoError(t, coo.Generate(m, in, rows, cols))
	return m
}

// TestFprintFormat asserts the exact bytes: header line plus one fixed-point
// line per entry in store order.
func TestFprintFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         []float64
		rows, cols int
		want       string
	}{
		{
			"diagonal 2x2",
			[]float64{1, 0, 0, 2}, 2, 2,
			"Sparse matrix 2x2:\n(0,0) = 1.000000\n(1,1) = 2.000000\n",
		},
		{
			"negative and fractional",
			[]float64{0, -2.5, 0.125, 0, 0, 0}, 2, 3,
			"Sparse matrix 2x3:\n(0,1) = -2.500000\n(0,2) = 0.125000\n",
		},
		{
			"empty store keeps the header",
			make([]float64, 4), 2, 2,
			"Sparse matrix 2x2:\n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var sb strings.Builder
			require.NoError(t, sparsefmt.Fprint(&sb, build(t, tc.in, tc.rows, tc.cols)))
			require.Equal(t, tc.want, sb.String())
		})
	}
}

// TestSprint mirrors Fprint through the string convenience.
func TestSprint(t *testing.T) {
	t.Parallel()

	s, err := sparsefmt.Sprint(build(t, []float64{3, 0, 0, 0}, 2, 2))
	require.NoError(t, err)
	require.Equal(t, "Sparse matrix 2x2:\n(0,0) = 3.000000\n", s)
}

// TestErrors covers the nil surfaces; rendering never mutates the store.
func TestErrors(t *testing.T) {
	t.Parallel()

	m := build(t, []float64{1, 0, 0, 0}, 2, 2)
	require.ErrorIs(t, sparsefmt.Fprint(nil, m), sparsefmt.ErrNilWriter)

	var sb strings.Builder
	require.ErrorIs(t, sparsefmt.Fprint(&sb, nil), coo.ErrNilMatrix)

	_, err := sparsefmt.Sprint(nil)
	require.ErrorIs(t, err, coo.ErrNilMatrix)

	require.NoError(t, sparsefmt.Fprint(&sb, m))
	require.Equal(t, 1, m.NNZ())
}
