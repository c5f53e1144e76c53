// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/linsolve/linsys"
	"github.com/stretchr/testify/require"
)

// mustSystem builds a validated system or fails the test.
func mustSystem(t testing.TB, a [][]float64, b []float64, tol float64) *linsys.System {
	t.Helper()
	s, err := linsys.FromRows(a, b, tol)
	require.NoError(t, err)

	return s
}

// tridiag3 is the 3×3 strictly diagonally dominant fixture; b = A·[1,2,1].
func tridiag3(t testing.TB) *linsys.System {
	return mustSystem(t,
		[][]float64{{4, -1, 0}, {-1, 4, -1}, {0, -1, 4}},
		[]float64{2, 6, 2},
		1e-4,
	)
}

// swapped2 needs a pivot swap and fails both sufficient conditions.
func swapped2(t testing.TB) *linsys.System {
	return mustSystem(t, [][]float64{{0, 1}, {1, 0}}, []float64{1, 1}, 1e-4)
}

// dominant returns a random n×n strictly diagonally dominant system and its
// exact solution, deterministic for a given seed.
func dominant(t testing.TB, n int, seed int64) (*linsys.System, []float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a := make([][]float64, n)
	want := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		off := 0.0
		for j := range a[i] {
			if j != i {
				a[i][j] = rng.Float64()*2 - 1
				off += math.Abs(a[i][j])
			}
		}
		a[i][i] = off + 1 + rng.Float64()
		want[i] = rng.Float64()*10 - 5
	}
	for i := range a {
		for j := range a[i] {
			b[i] += a[i][j] * want[j]
		}
	}

	return mustSystem(t, a, b, 1e-10), want
}

// fakeClock advances by step on every read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)

	return c.now
}

func nan() float64 { return math.NaN() }
