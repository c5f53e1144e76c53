// SPDX-License-Identifier: MIT
package solver_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const gaussEps = 1e-12

func TestGauss_Tridiagonal(t *testing.T) {
	s := tridiag3(t)
	res, err := solver.Gauss(s)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 2, 1}, res.X, gaussEps)
	require.True(t, res.Converged)
	require.Zero(t, res.Iterations)
	require.Empty(t, res.Deltas)

	norm, err := linsys.ResidualNorm(s, res.X)
	require.NoError(t, err)
	require.Less(t, norm, 1e-12)
}

func TestGauss_PivotSwap(t *testing.T) {
	res, err := solver.Gauss(swapped2(t))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, res.X, gaussEps)

	s := mustSystem(t, [][]float64{{0, 1}, {1, 0}}, []float64{2, 3}, 0)
	res, err = solver.Gauss(s)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2}, res.X)
}

func TestGauss_NoSolution(t *testing.T) {
	tests := []struct {
		name string
		a    [][]float64
		b    []float64
	}{
		{"zero pivot column", [][]float64{{0, 0}, {0, 1}}, []float64{1, 2}},
		{"dependent rows", [][]float64{{1, 1}, {1, 1}}, []float64{1, 2}},
		{"zero 1x1", [][]float64{{0}}, []float64{1}},
		{"zero last column", [][]float64{{1, 0}, {0, 0}}, []float64{1, 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Gauss(mustSystem(t, tc.a, tc.b, 0))
			require.ErrorIs(t, err, solver.ErrNoSolution)
			require.Equal(t, solver.CodeNoSolution, solver.Code(err))
			require.Nil(t, res.X)
		})
	}
}

func TestGauss_NumericOverflow(t *testing.T) {
	// a_11 - a_10/a_00·a_01 = -1e308 - 1e308 overflows to -Inf.
	s := mustSystem(t, [][]float64{{1, 1e308}, {1, -1e308}}, []float64{1, 1}, 0)
	_, err := solver.Gauss(s)
	require.ErrorIs(t, err, solver.ErrNumeric)
	require.Equal(t, solver.CodeNumeric, solver.Code(err))
}

func TestGauss_InvalidInput(t *testing.T) {
	_, err := solver.Gauss(nil)
	require.ErrorIs(t, err, solver.ErrInvalidInput)
	require.ErrorIs(t, err, linsys.ErrNilSystem)

	s := tridiag3(t)
	s.B = s.B[:2]
	_, err = solver.Gauss(s)
	require.ErrorIs(t, err, solver.ErrInvalidInput)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, solver.CodeInvalidInput, solver.Code(err))
}

func TestGauss_Identity(t *testing.T) {
	b := []float64{3, -1, 2.5}
	s := mustSystem(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, b, 0)
	res, err := solver.Gauss(s)
	require.NoError(t, err)
	require.Equal(t, b, res.X)
}

func TestGauss_UpperTriangular(t *testing.T) {
	// x_1 = 3, x_0 = 5 - 2·3
	s := mustSystem(t, [][]float64{{1, 2}, {0, 1}}, []float64{5, 3}, 0)
	res, err := solver.Gauss(s)
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 3}, res.X)
}

func TestGauss_DoesNotMutateInput(t *testing.T) {
	s := swapped2(t)
	before := s.Clone()
	_, err := solver.Gauss(s)
	require.NoError(t, err)
	require.Equal(t, before.A.Raw(), s.A.Raw())
	require.Equal(t, before.B, s.B)
}

func TestGauss_Deterministic(t *testing.T) {
	s, _ := dominant(t, 12, 7)
	first, err := solver.Gauss(s)
	require.NoError(t, err)
	second, err := solver.Gauss(s)
	require.NoError(t, err)
	require.Equal(t, first.X, second.X)
}

// TestGauss_AgainstGonum cross-checks with gonum's LU solver on random systems.
func TestGauss_AgainstGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		s, want := dominant(t, 10, seed)
		res, err := solver.Gauss(s)
		require.NoError(t, err)

		n := s.Size()
		var x mat.VecDense
		require.NoError(t, x.SolveVec(mat.NewDense(n, n, s.A.Raw()), mat.NewVecDense(n, append([]float64(nil), s.B...))))
		require.InDeltaSlice(t, x.RawVector().Data, res.X, 1e-9, "seed %d", seed)
		require.InDeltaSlice(t, want, res.X, 1e-9, "seed %d", seed)
	}
}

func TestGauss_ElapsedFromClock(t *testing.T) {
	clk := &fakeClock{step: time.Millisecond}
	res, err := solver.Gauss(tridiag3(t), solver.WithClock(clk.Now))
	require.NoError(t, err)
	require.Equal(t, time.Millisecond, res.Elapsed)
}

func TestSolve_Dispatch(t *testing.T) {
	s := tridiag3(t)
	for _, m := range []solver.Method{solver.MethodGauss, solver.MethodJacobi, solver.MethodSeidel} {
		res, err := solver.Solve(m, s, nil)
		require.NoError(t, err, m.String())
		require.InDeltaSlice(t, []float64{1, 2, 1}, res.X, 1e-3, m.String())
	}

	_, err := solver.Solve(solver.Method(42), s, nil)
	require.ErrorIs(t, err, solver.ErrUnknownMethod)
}
