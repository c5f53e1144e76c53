// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/sirupsen/logrus"
)

// Gauss solves s by Gaussian elimination with partial pivoting followed by
// back-substitution.
// Implementation:
//   - Stage 1: validate s and clone it; the caller's system is never touched.
//   - Stage 2: for each pivot column k, swap in the row with the largest |a_ik|
//     (first maximal row on ties), then eliminate every row below it.
//   - Stage 3: back-substitute from the last row up, normalizing each diagonal to 1.
//
// Errors:
//   - ErrInvalidInput (nil/malformed system).
//   - ErrNoSolution   (zero pivot column or zero diagonal: singular system).
//   - ErrNumeric      (NaN/±Inf in a multiplier or an updated entry).
//
// Determinism:
//   - Fixed loop orders and first-maximal pivot tie-break: re-solving the same
//     system yields bit-identical results.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working clone.
func Gauss(s *linsys.System, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	log := o.logger.WithField("method", MethodGauss.String())
	if err := s.Validate(); err != nil {
		return Result{}, inputErrorf(opGauss, err)
	}

	work := s.Clone()
	start := o.clock()
	if err := eliminate(work, log); err != nil {
		log.WithError(err).Warn("elimination abandoned")
		return Result{}, solverErrorf(opGauss, err)
	}
	elapsed := o.clock().Sub(start)

	return Result{X: work.B, Converged: true, Elapsed: elapsed}, nil
}

// eliminate triangulates work in place and back-substitutes; on success the
// solution is left in work.B. work must be a validated, exclusively owned system.
func eliminate(work *linsys.System, log logrus.FieldLogger) error {
	var (
		n      = work.Size()
		a      = work.A
		b      = work.B
		i, j   int
		k, p   int
		pivot  float64
		m      float64
		rk, ri []float64
	)

	for k = 0; k < n-1; k++ {
		p = pivotRow(a, k)
		if p != k {
			_ = a.SwapRows(k, p) // both indices in [0, n)
			b[k], b[p] = b[p], b[k]
			log.Debugf("pivot column %d: swapped rows %d and %d", k, k, p)
		}
		rk, _ = a.Row(k)
		pivot = rk[k]
		if pivot == 0 {
			// The whole column from k down is zero: no row can be swapped in.
			return rowErrorf("eliminate", k, ErrNoSolution)
		}

		for i = k + 1; i < n; i++ {
			ri, _ = a.Row(i)
			m = ri[k] / pivot
			if matrix.IsInvalid(m) {
				return rowErrorf("eliminate", i, ErrNumeric)
			}
			ri[k] = 0
			if m == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				ri[j] -= m * rk[j]
				if matrix.IsInvalid(ri[j]) {
					return rowErrorf("eliminate", i, ErrNumeric)
				}
			}
			b[i] -= m * b[k]
			if matrix.IsInvalid(b[i]) {
				return rowErrorf("eliminate", i, ErrNumeric)
			}
		}
	}

	return backSubstitute(work)
}

// pivotRow returns the row in [k, n) holding the largest |a_ik|.
// Ties keep the first maximal row.
func pivotRow(a *matrix.Dense, k int) int {
	best := k
	row, _ := a.Row(k)
	peak := math.Abs(row[k])
	for i := k + 1; i < a.Rows(); i++ {
		row, _ = a.Row(i)
		if v := math.Abs(row[k]); v > peak {
			peak, best = v, i
		}
	}

	return best
}

// backSubstitute solves the upper-triangular work in place, from row n-1 up:
// b_i /= a_ii, a_ii = 1, then column i is eliminated from every row above.
func backSubstitute(work *linsys.System) error {
	var (
		n      = work.Size()
		a      = work.A
		b      = work.B
		i, r   int
		d      float64
		ri, rr []float64
	)
	for i = n - 1; i >= 0; i-- {
		ri, _ = a.Row(i)
		d = ri[i]
		if matrix.IsInvalid(d) {
			return rowErrorf("backSubstitute", i, ErrNumeric)
		}
		if d == 0 {
			return rowErrorf("backSubstitute", i, ErrNoSolution)
		}
		b[i] /= d
		if matrix.IsInvalid(b[i]) {
			return rowErrorf("backSubstitute", i, ErrNumeric)
		}
		ri[i] = 1

		for r = 0; r < i; r++ {
			rr, _ = a.Row(r)
			b[r] -= rr[i] * b[i]
			rr[i] = 0
			if matrix.IsInvalid(b[r]) {
				return rowErrorf("backSubstitute", r, ErrNumeric)
			}
		}
	}

	return nil
}
