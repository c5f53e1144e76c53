// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
	"gonum.org/v1/gonum/floats"
)

// Refine improves x, a solution of s produced by any method, by iterative
// refinement.
// Each pass:
//  1. r = b - A·x against the original system;
//  2. build the correction system: a clone of A with r as right-hand side;
//  3. solve it by Gaussian elimination for the correction w;
//  4. x += w.
//
// Stopping rule: a pass runs only while the residual L2 norm is above the
// threshold (WithResidualThreshold, default 5.0) and the pass cap
// (WithRefineIterations, default 10) is not reached; after a pass the loop
// also stops when no coordinate of x moved by s.Tol or more.
//
// The caller's x is not modified; the refined vector is Result.X.
// Result.Iterations counts completed passes (0 when x was already acceptable),
// Result.Residuals holds the norm before the first pass and after every pass.
//
// Errors:
//   - ErrInvalidInput, or the error of the inner Gaussian elimination
//     (ErrNoSolution, ErrNumeric) tagged with the failing pass.
func Refine(s *linsys.System, x []float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	log := o.logger.WithField("method", "refine")
	if err := s.Validate(); err != nil {
		return Result{}, inputErrorf(opRefine, err)
	}
	if err := matrix.ValidateVecLen(x, s.Size()); err != nil {
		return Result{}, inputErrorf(opRefine, fmt.Errorf("solution: %w", err))
	}
	if err := matrix.ValidateFinite(x); err != nil {
		return Result{}, inputErrorf(opRefine, fmt.Errorf("solution: %w", err))
	}

	cur := append([]float64(nil), x...)
	prev := make([]float64, len(cur))
	r, _ := linsys.Residual(s, cur) // shapes validated above
	norm := linsys.L2Norm(r)

	var (
		residuals = []float64{norm}
		deltas    []float64
		pass      int
		delta     float64
		settled   bool
	)
	start := o.clock()
	for pass < o.refineIter && norm > o.threshold {
		corr := s.Clone()
		corr.B = r
		if err := eliminate(corr, log); err != nil {
			log.WithField("pass", pass+1).WithError(err).Warn("correction solve abandoned")
			return Result{}, fmt.Errorf("%s: pass %d: %w", opRefine, pass+1, err)
		}

		copy(prev, cur)
		floats.Add(cur, corr.B)
		pass++

		r, _ = linsys.Residual(s, cur)
		norm = linsys.L2Norm(r)
		delta = MaxDistance(prev, cur)
		residuals = append(residuals, norm)
		deltas = append(deltas, delta)
		log.WithField("pass", pass).Debugf("residual norm %g, max delta %g", norm, delta)

		if delta < s.Tol {
			settled = true
			break
		}
	}
	elapsed := o.clock().Sub(start)

	return Result{
		X:          cur,
		Iterations: pass,
		Converged:  settled || norm <= o.threshold,
		Elapsed:    elapsed,
		Deltas:     deltas,
		Residuals:  residuals,
	}, nil
}
