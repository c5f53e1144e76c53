// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
	"gonum.org/v1/gonum/floats"
)

// Residual computes r = b - A·x into a freshly allocated slice owned by the caller.
// Row sums are accumulated in float64.
//
// Errors:
//   - ErrNilSystem, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (len(x) != n).
//
// Complexity: Time O(n²), Space O(n).
func Residual(s *System, x []float64) ([]float64, error) {
	if s == nil {
		return nil, ErrNilSystem
	}
	if err := matrix.ValidateVecLen(s.B, s.Size()); err != nil {
		return nil, fmt.Errorf("Residual: rhs: %w", err)
	}
	ax, err := matrix.MatVec(s.A, x)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	for i := range ax {
		ax[i] = s.B[i] - ax[i]
	}

	return ax, nil
}

// L2Norm returns sqrt(Σ r[i]²).
func L2Norm(r []float64) float64 {
	if len(r) == 0 {
		return 0
	}

	return floats.Norm(r, 2)
}

// ResidualNorm is Residual followed by L2Norm.
func ResidualNorm(s *System, x []float64) (float64, error) {
	r, err := Residual(s, x)
	if err != nil {
		return 0, err
	}

	return L2Norm(r), nil
}
