// SPDX-License-Identifier: MIT

package solver

import (
	"math"

	"github.com/katalvlaran/linsolve/linsys"
	"gonum.org/v1/gonum/floats"
)

// JacobiSufficient reports whether every row is strictly diagonally dominant:
//
//	Σ_{j≠i} |a_ij| < |a_ii|   for all i.
//
// This is a sufficient (not necessary) condition for Jacobi convergence.
// A nil or structurally invalid system is never sufficient.
// Complexity: O(n²).
func JacobiSufficient(s *linsys.System) bool {
	if s == nil || s.A == nil || s.A.Rows() != s.A.Cols() {
		return false
	}
	n := s.Size()

	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		row, _ := s.A.Row(i)
		off = 0
		for j = 0; j < n; j++ {
			if j != i {
				off += math.Abs(row[j])
			}
		}
		if !(off < math.Abs(row[i])) {
			return false
		}
	}

	return true
}

// SeidelSufficient reports whether the row-sequential Gauss-Seidel test holds.
// The coefficients are built row by row,
//
//	β_i = (Σ_{j<i} β_j·|a_ij| + Σ_{j>i} |a_ij|) / |a_ii|,
//
// and the test fails as soon as a numerator reaches |a_ii|, i.e. β_i ≥ 1.
// The test is order dependent and admits some systems Jacobi's test rejects.
// Complexity: Time O(n²), Space O(n).
func SeidelSufficient(s *linsys.System) bool {
	if s == nil || s.A == nil || s.A.Rows() != s.A.Cols() {
		return false
	}
	n := s.Size()
	beta := make([]float64, n)

	var i, j int
	var num, diag float64
	for i = 0; i < n; i++ {
		row, _ := s.A.Row(i)
		num = 0
		for j = 0; j < i; j++ {
			num += beta[j] * math.Abs(row[j])
		}
		for j = i + 1; j < n; j++ {
			num += math.Abs(row[j])
		}
		diag = math.Abs(row[i])
		if num >= diag {
			return false
		}
		beta[i] = num / diag
	}

	return true
}

// TooDifferent reports whether any coordinate of prev and curr differs by more
// than tol. Slices of different length are always too different.
func TooDifferent(prev, curr []float64, tol float64) bool {
	if len(prev) != len(curr) {
		return true
	}
	for i := range prev {
		if math.Abs(prev[i]-curr[i]) > tol {
			return true
		}
	}

	return false
}

// MaxDistance returns max_i |a[i] - b[i]| (the L∞ distance).
// a and b must have equal length.
func MaxDistance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}

	return floats.Distance(a, b, math.Inf(1))
}
