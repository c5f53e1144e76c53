// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConvergent is returned by the iterative methods, before any
	// iteration work, when the sufficient convergence condition fails.
	ErrNotConvergent = errors.New("solver: sufficient convergence condition not met")

	// ErrNoSolution is returned when a zero pivot or zero diagonal makes the
	// system singular or inconsistent.
	ErrNoSolution = errors.New("solver: system has no unique solution")

	// ErrNumeric is returned when a NaN or ±Inf appears mid-computation.
	ErrNumeric = errors.New("solver: floating point error")

	// ErrInvalidInput is returned for a nil or malformed system or initial guess.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
	ErrUnknownMethod = errors.New("solver: unknown method")
)

// Result codes reported by Code. Negative values are failures.
const (
	CodeOK            = 0
	CodeNotConvergent = -1
	CodeNoSolution    = -2
	CodeNumeric       = -3
	CodeInvalidInput  = -4
)

// Code maps err to its result code: CodeOK for nil, the matching negative
// code for the solver sentinels, and CodeInvalidInput for anything else.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrNotConvergent):
		return CodeNotConvergent
	case errors.Is(err, ErrNoSolution):
		return CodeNoSolution
	case errors.Is(err, ErrNumeric):
		return CodeNumeric
	default:
		return CodeInvalidInput
	}
}

// Operation name constants for unified error wrapping.
const (
	opGauss  = "Gauss"
	opJacobi = "Jacobi"
	opSeidel = "Seidel"
	opRefine = "Refine"
)

// solverErrorf wraps err with an operation tag, preserving it via %w.
func solverErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// rowErrorf wraps err with an operation tag and the row where it was detected.
func rowErrorf(op string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", op, row, err)
}

// inputErrorf marks a validation failure as ErrInvalidInput while keeping the
// underlying sentinel matchable.
func inputErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrInvalidInput, err)
}
