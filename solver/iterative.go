// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
)

// seed validates s and the optional initial guess and returns a fresh
// iterate buffer holding x0 (or zeros when x0 is nil).
func seed(op string, s *linsys.System, x0 []float64) ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, inputErrorf(op, err)
	}
	n := s.Size()
	x := make([]float64, n)
	if x0 == nil {
		return x, nil
	}
	if err := matrix.ValidateVecLen(x0, n); err != nil {
		return nil, inputErrorf(op, fmt.Errorf("initial guess: %w", err))
	}
	if err := matrix.ValidateFinite(x0); err != nil {
		return nil, inputErrorf(op, fmt.Errorf("initial guess: %w", err))
	}
	copy(x, x0)

	return x, nil
}

// relax returns the row-i update (b_i - Σ_{k≠i} a_ik·src[k]) / a_ii.
// A zero diagonal with a non-zero remainder is ErrNoSolution; any NaN/±Inf,
// including 0/0, is ErrNumeric.
func relax(row []float64, bi float64, i int, src []float64) (float64, error) {
	sum := matrix.ZeroSum
	for k, aik := range row {
		if k == i {
			continue
		}
		sum += aik * src[k]
		if matrix.IsInvalid(sum) {
			return 0, ErrNumeric
		}
	}

	rest := bi - sum
	if row[i] == 0 && rest != 0 {
		return 0, ErrNoSolution
	}
	v := rest / row[i]
	if matrix.IsInvalid(v) {
		return 0, ErrNumeric
	}

	return v, nil
}
