// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsolve/solver"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := solver.DefaultOptions()
	require.Equal(t, solver.DefaultMaxIterations, o.MaxIterations())
	require.Equal(t, solver.DefaultRefineIterations, o.RefineIterations())
	require.Equal(t, solver.DefaultResidualThreshold, o.ResidualThreshold())
	require.Equal(t, solver.DefaultConvergenceCheck, o.ConvergenceCheck())
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { solver.WithMaxIterations(0) })
	require.Panics(t, func() { solver.WithRefineIterations(-1) })
	require.Panics(t, func() { solver.WithResidualThreshold(-1) })
	require.Panics(t, func() { solver.WithResidualThreshold(math.NaN()) })
	require.Panics(t, func() { solver.WithResidualThreshold(math.Inf(1)) })
	require.Panics(t, func() { solver.WithClock(nil) })

	require.NotPanics(t, func() { solver.WithResidualThreshold(0) })
	require.NotPanics(t, func() { solver.WithLogger(nil) })
}

func TestCode(t *testing.T) {
	require.Equal(t, solver.CodeOK, solver.Code(nil))
	require.Equal(t, -1, solver.Code(solver.ErrNotConvergent))
	require.Equal(t, -2, solver.Code(solver.ErrNoSolution))
	require.Equal(t, -3, solver.Code(solver.ErrNumeric))
	require.Equal(t, -4, solver.Code(solver.ErrInvalidInput))
	require.Equal(t, -4, solver.Code(solver.ErrUnknownMethod))
}

func TestParseMethod(t *testing.T) {
	tests := map[string]solver.Method{
		"gauss":        solver.MethodGauss,
		"Elimination":  solver.MethodGauss,
		" jacobi ":     solver.MethodJacobi,
		"seidel":       solver.MethodSeidel,
		"Gauss-Seidel": solver.MethodSeidel,
	}
	for in, want := range tests {
		got, err := solver.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := solver.ParseMethod("cholesky")
	require.ErrorIs(t, err, solver.ErrUnknownMethod)
}

func TestMethodNames(t *testing.T) {
	require.Equal(t, "seidel", solver.MethodSeidel.String())
	require.Equal(t, "Gauss-Seidel", solver.MethodSeidel.Label())
	require.Equal(t, "Method(7)", solver.Method(7).String())
	require.False(t, solver.MethodGauss.Iterative())
	require.True(t, solver.MethodJacobi.Iterative())
}
