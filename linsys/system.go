// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"

	"github.com/katalvlaran/linsolve/matrix"
)

// System is the linear system A·x = b with its stopping tolerance.
//   - A is n×n, stored row-major in one contiguous block.
//   - B has length n.
//   - Tol is the stopping threshold of the iterative methods and of the
//     refinement loop's max-distance test.
type System struct {
	A   *matrix.Dense
	B   []float64
	Tol float64
}

// New allocates an n×n system with zeroed coefficients, zeroed right-hand
// side and a zero tolerance.
// An allocation the runtime cannot satisfy aborts the process.
//
// Errors:
//   - matrix.ErrInvalidDimensions when n <= 0.
func New(n int) (*System, error) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("linsys.New(%d): %w", n, err)
	}

	return &System{A: a, B: make([]float64, n)}, nil
}

// FromRows builds a system from literal coefficient rows, right-hand side and
// tolerance. The inputs are copied; the result is validated.
func FromRows(a [][]float64, b []float64, tol float64) (*System, error) {
	d, err := matrix.NewDenseFrom(a)
	if err != nil {
		return nil, fmt.Errorf("linsys.FromRows: %w", err)
	}
	s := &System{A: d, B: append([]float64(nil), b...), Tol: tol}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("linsys.FromRows: %w", err)
	}

	return s, nil
}

// Size returns the dimension n of the system (0 for a nil or empty system).
func (s *System) Size() int {
	if s == nil || s.A == nil {
		return 0
	}

	return s.A.Rows()
}

// Clone returns a deep copy of coefficients, right-hand side and tolerance.
// Mutating the clone never alters the receiver.
func (s *System) Clone() *System {
	if s == nil {
		return nil
	}
	c := &System{B: append([]float64(nil), s.B...), Tol: s.Tol}
	if s.A != nil {
		c.A = s.A.Copy()
	}

	return c
}

// Validate checks the structural and numeric invariants:
// non-nil, square A, len(B) == n, finite entries, finite tolerance >= 0.
// Complexity: O(n²).
func (s *System) Validate() error {
	if s == nil {
		return ErrNilSystem
	}
	if err := matrix.ValidateSquareNonNil(s.A); err != nil {
		return err
	}
	n := s.A.Rows()
	if err := matrix.ValidateVecLen(s.B, n); err != nil {
		return fmt.Errorf("rhs: %w", err)
	}
	for i := 0; i < n; i++ {
		row, _ := s.A.Row(i) // i < n
		if err := matrix.ValidateFinite(row); err != nil {
			return fmt.Errorf("coefficients: row %d: %w", i, err)
		}
	}
	if err := matrix.ValidateFinite(s.B); err != nil {
		return fmt.Errorf("rhs: %w", err)
	}
	if matrix.IsInvalid(s.Tol) || s.Tol < 0 {
		return ErrBadTolerance
	}

	return nil
}
