// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"strings"
	"time"
)

// Result reports a successful solve.
//   - X: the solution, owned by the caller.
//   - Iterations: sweeps (Jacobi, Gauss-Seidel) or passes (Refine); 0 for Gauss.
//   - Converged: false when an iterative method stopped on its cap.
//   - Elapsed: time spent in the algorithm body, read from the configured clock.
//   - Deltas: max |x_k+1 - x_k| after each sweep or pass.
//   - Residuals: residual L2 norm before the first pass and after each pass (Refine only).
type Result struct {
	X          []float64
	Iterations int
	Converged  bool
	Elapsed    time.Duration
	Deltas     []float64
	Residuals  []float64
}

// Method names one of the three solvers.
type Method int

const (
	// MethodGauss is Gaussian elimination with partial pivoting.
	MethodGauss Method = iota

	// MethodJacobi is the Jacobi iteration.
	MethodJacobi

	// MethodSeidel is the Gauss-Seidel iteration.
	MethodSeidel
)

var methodNames = [...]string{"gauss", "jacobi", "seidel"}

var methodLabels = [...]string{"Gaussian elimination", "Jacobi", "Gauss-Seidel"}

// String returns the short config name (gauss, jacobi, seidel).
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// Label returns the human-readable name used in reports.
func (m Method) Label() string {
	if m < 0 || int(m) >= len(methodLabels) {
		return m.String()
	}

	return methodLabels[m]
}

// Iterative reports whether m consumes an initial guess.
func (m Method) Iterative() bool { return m == MethodJacobi || m == MethodSeidel }

// ParseMethod resolves a short name, case-insensitively. "gauss-seidel" is
// accepted as an alias of "seidel".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gauss", "elimination":
		return MethodGauss, nil
	case "jacobi":
		return MethodJacobi, nil
	case "seidel", "gauss-seidel":
		return MethodSeidel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}
