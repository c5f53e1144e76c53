// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsolve/linsys"
)

// Jacobi solves s by Jacobi iteration starting from x0 (nil means zeros).
// Implementation:
//   - Stage 1: validate; unless disabled, require JacobiSufficient and fail with
//     ErrNotConvergent before any iteration work.
//   - Stage 2: sweep next[i] = (b_i - Σ_{k≠i} a_ik·cur[k]) / a_ii over all rows,
//     reading only the previous iterate cur.
//   - Stage 3: stop once no coordinate moved by more than s.Tol, or after the
//     sweep cap (WithMaxIterations, default 50).
//
// The returned Result carries the latest iterate, the number of sweeps and
// Converged=false when the cap was hit first.
//
// Errors:
//   - ErrInvalidInput, ErrNotConvergent, ErrNoSolution, ErrNumeric.
//
// Complexity:
//   - Time O(k·n²) for k sweeps, Space O(n).
func Jacobi(s *linsys.System, x0 []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	log := o.logger.WithField("method", MethodJacobi.String())

	cur, err := seed(opJacobi, s, x0)
	if err != nil {
		return Result{}, err
	}
	if o.checkConvergence && !JacobiSufficient(s) {
		log.Warn("system is not strictly diagonally dominant")
		return Result{}, solverErrorf(opJacobi, ErrNotConvergent)
	}

	var (
		n         = s.Size()
		next      = make([]float64, n)
		deltas    []float64
		iter      int
		converged bool
		delta     float64
	)
	start := o.clock()
	for iter < o.maxIter {
		for i := 0; i < n; i++ {
			row, _ := s.A.Row(i)
			if next[i], err = relax(row, s.B[i], i, cur); err != nil {
				log.WithField("iteration", iter+1).WithField("row", i).WithError(err).Warn("sweep abandoned")
				return Result{}, rowErrorf(opJacobi, i, err)
			}
		}
		iter++
		delta = MaxDistance(cur, next)
		deltas = append(deltas, delta)
		log.WithField("iteration", iter).Debugf("max delta %g", delta)
		if !TooDifferent(cur, next, s.Tol) {
			converged = true
			break
		}
		copy(cur, next)
	}
	elapsed := o.clock().Sub(start)
	if !converged {
		log.WithField("iteration", iter).Info("iteration cap reached before tolerance")
	}

	return Result{X: next, Iterations: iter, Converged: converged, Elapsed: elapsed, Deltas: deltas}, nil
}
