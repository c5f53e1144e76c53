// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used by the linear-system solvers.
//
// The matrix package provides:
//
//   - Dense, a row-major n×m buffer stored in one contiguous slice, with
//     bounds-checked At/Set and no-copy Row slices for hot loops.
//   - SwapRows and Clone, the two mutations elimination needs on a working copy.
//   - MatVec, the y = A·x kernel shared by residual computations.
//   - The numeric policy (IsInvalid, ValidateFinite): NaN and ±Inf are invalid,
//     zero is a legitimate value.
//
// All functions return sentinel errors (see errors.go) that callers match with
// errors.Is. Nothing in this package panics on user input.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set/Row O(1); SwapRows O(c); Clone O(r*c); MatVec O(r*c).
package matrix
