// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/katalvlaran/linsolve/linsys"
)

// Solve dispatches to the solver named by m. x0 is ignored by MethodGauss.
func Solve(m Method, s *linsys.System, x0 []float64, opts ...Option) (Result, error) {
	switch m {
	case MethodGauss:
		return Gauss(s, opts...)
	case MethodJacobi:
		return Jacobi(s, x0, opts...)
	case MethodSeidel:
		return Seidel(s, x0, opts...)
	}

	return Result{}, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
}
