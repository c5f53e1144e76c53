// SPDX-License-Identifier: MIT

// Package solver implements the dense linear-system solvers:
//
//   - Gauss: Gaussian elimination with partial pivoting and back-substitution.
//     Method: pick the largest-magnitude entry of each column as pivot (first
//     maximal row wins ties), eliminate below it, then back-substitute.
//     Time: O(n³). Memory: O(n²) for the private working clone.
//
//   - Jacobi: stationary iteration, every update reads only the previous iterate.
//     Gated by strict row diagonal dominance (JacobiSufficient).
//     Time: O(k·n²) for k sweeps. Memory: O(n).
//
//   - Seidel: Gauss-Seidel, updates in place so later rows see the new values.
//     Gated by the row-sequential coefficient test (SeidelSufficient).
//     Time: O(k·n²). Memory: O(n).
//
//   - Refine: iterative refinement: solve A·w = b - A·x with Gauss, x += w,
//     while the residual norm stays above a threshold and the pass cap allows.
//
// # Errors
//
// Every abandoned solve returns the zero Result and an error matching one of
// ErrNotConvergent, ErrNoSolution, ErrNumeric or ErrInvalidInput via errors.Is.
// Code maps them to the classic negative result codes (-1, -2, -3, -4).
//
// # Ownership
//
// No solver mutates the caller's System or initial guess. Working buffers and
// clones belong to the call that allocates them, so concurrent calls on
// independent systems are safe. Sharing one System between goroutines that
// mutate it is not supported.
//
// # Options
//
//	res, err := solver.Jacobi(sys, nil,
//	    solver.WithMaxIterations(100),
//	    solver.WithLogger(log),
//	)
package solver
