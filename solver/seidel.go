// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/katalvlaran/linsolve/linsys"
)

// Seidel solves s by Gauss-Seidel iteration starting from x0 (nil means zeros).
// It differs from Jacobi only in updating one shared iterate in place, so row i
// of a sweep already sees the new values of rows 0..i-1.
// The gate is SeidelSufficient; termination and errors follow Jacobi.
//
// Complexity:
//   - Time O(k·n²) for k sweeps, Space O(n).
func Seidel(s *linsys.System, x0 []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	log := o.logger.WithField("method", MethodSeidel.String())

	x, err := seed(opSeidel, s, x0)
	if err != nil {
		return Result{}, err
	}
	if o.checkConvergence && !SeidelSufficient(s) {
		log.Warn("Gauss-Seidel convergence coefficients reach 1")
		return Result{}, solverErrorf(opSeidel, ErrNotConvergent)
	}

	var (
		n         = s.Size()
		prev      = make([]float64, n)
		deltas    []float64
		iter      int
		converged bool
		delta     float64
	)
	start := o.clock()
	for iter < o.maxIter {
		copy(prev, x)
		for i := 0; i < n; i++ {
			row, _ := s.A.Row(i)
			if x[i], err = relax(row, s.B[i], i, x); err != nil {
				log.WithField("iteration", iter+1).WithField("row", i).WithError(err).Warn("sweep abandoned")
				return Result{}, rowErrorf(opSeidel, i, err)
			}
		}
		iter++
		delta = MaxDistance(prev, x)
		deltas = append(deltas, delta)
		log.WithField("iteration", iter).Debugf("max delta %g", delta)
		if !TooDifferent(prev, x, s.Tol) {
			converged = true
			break
		}
	}
	elapsed := o.clock().Sub(start)
	if !converged {
		log.WithField("iteration", iter).Info("iteration cap reached before tolerance")
	}

	return Result{X: x, Iterations: iter, Converged: converged, Elapsed: elapsed, Deltas: deltas}, nil
}
