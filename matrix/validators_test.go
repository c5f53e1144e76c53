// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidateVecLen covers nil, short and exact vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
}

// TestIsInvalid pins the numeric policy: only NaN and ±Inf are invalid.
func TestIsInvalid(t *testing.T) {
	t.Parallel()

	require.True(t, matrix.IsInvalid(math.NaN()))
	require.True(t, matrix.IsInvalid(math.Inf(1)))
	require.True(t, matrix.IsInvalid(math.Inf(-1)))
	require.False(t, matrix.IsInvalid(0))
	require.False(t, matrix.IsInvalid(math.Copysign(0, -1)))
	require.False(t, matrix.IsInvalid(math.MaxFloat64))
	require.False(t, matrix.IsInvalid(-1e-300))
}

// TestValidateFinite reports the first offending element.
func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite([]float64{0, 1, -2}))
	require.NoError(t, matrix.ValidateFinite(nil))

	err := matrix.ValidateFinite([]float64{0, math.NaN(), math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
}
