// SPDX-License-Identifier: Apache-2.0
// Package coo_test contains unit tests for the dense.Dense bridge facades.
package coo_test

import (
	"testing"

	"github.com/sparsekit/sparsekit/coo"
	"github.com/sparsekit/sparsekit/dense"
	"github.com/stretchr/testify/require"
)

// TestFromDense builds an exact-fit store from a dense.Dense.
func TestFromDense(t *testing.T) {
	t.Parallel()

	d, err := dense.FromSlice(2, 3, []float64{1, 0, 0.0005, 0, -2, 0})
	require.NoError(t, err)

	m, err := coo.FromDense(d)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 2, m.NNZ())       // 0.0005 is below the default threshold
	require.Equal(t, m.NNZ(), m.Cap()) // exact-fit capacity

	// The epsilon option flows through to both sizing and generation.
	loose, err := coo.FromDense(d, coo.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, 6, loose.NNZ())

	_, err = coo.FromDense(nil)
	require.ErrorIs(t, err, coo.ErrNilBuffer)
}

// TestToDense expands a store into an independent dense.Dense.
func TestToDense(t *testing.T) {
	t.Parallel()

	m := fromDense(t, []float64{0, 3, -4, 0}, 2, 2)

	d, err := coo.ToDense(m)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, -4, 0}, d.Slice())

	// Later store mutation must not reach the expanded matrix.
	require.NoError(t, coo.DeleteElement(m, 0))
	require.Equal(t, []float64{0, 3, -4, 0}, d.Slice())

	_, err = coo.ToDense(nil)
	require.ErrorIs(t, err, coo.ErrNilMatrix)
}

// TestRoundTripThroughDense: FromDense(ToDense(m)) preserves the multiset of
// entries for stores without duplicates.
func TestRoundTripThroughDense(t *testing.T) {
	t.Parallel()

	m := fromDense(t, []float64{1, 0, 0, 0, 5, 0, -3, 0, 9}, 3, 3)

	d, err := coo.ToDense(m)
	require.NoError(t, err)
	back, err := coo.FromDense(d)
	require.NoError(t, err)

	require.Equal(t, m.Rows(), back.Rows())
	require.Equal(t, m.Cols(), back.Cols())
	require.Equal(t, m.Entries(), back.Entries()) // both in row-major scan order
}

// TestAliases: facades delegate 1:1 to the kernels.
func TestAliases(t *testing.T) {
	t.Parallel()

	a := fromDense(t, []float64{1, 0, 0, 2}, 2, 2)
	b := fromDense(t, []float64{0, 3, 0, 0}, 2, 2)

	sum, err := coo.New(2, 2, 4)
	require.NoError(t, err)
	require.NoError(t, coo.Sum(sum, a, b))
	require.Equal(t, []float64{1, 3, 0, 2}, expand(t, sum))

	prod, err := coo.New(2, 2, 4)
	require.NoError(t, err)
	require.NoError(t, coo.Mul(prod, a, a))
	require.Equal(t, []float64{1, 0, 0, 4}, expand(t, prod))

	require.NoError(t, coo.T(a))
	require.Equal(t, 2, a.Rows())

	dup := coo.CloneMatrix(a)
	require.Equal(t, a.Entries(), dup.Entries())
}
