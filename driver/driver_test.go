// SPDX-License-Identifier: MIT
package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/driver"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const input = `3 1e-4
4 -1 0
-1 4 -1
0 -1 4
2 6 2

2 1e-4
0 1
1 0
1 1
`

func TestRun_AllMethods(t *testing.T) {
	var buf bytes.Buffer
	d, err := driver.New(config.DefaultConfig(), &buf, nil)
	require.NoError(t, err)

	sums, err := d.Run(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sums, 2)

	first := sums[0]
	require.Equal(t, 1, first.Index)
	require.Equal(t, 3, first.Size)
	require.Len(t, first.Outcomes, 3)
	for _, oc := range first.Outcomes {
		require.NoError(t, oc.Err, oc.Method.String())
		assert.Equal(t, solver.CodeOK, oc.Code)
		assert.InDeltaSlice(t, []float64{1, 2, 1}, oc.Result.X, 1e-3)
		assert.Less(t, oc.Norm, 1e-3)
		assert.Nil(t, oc.Refined, "small residuals are not refined")
	}

	second := sums[1]
	require.Len(t, second.Outcomes, 3)
	assert.Equal(t, solver.CodeOK, second.Outcomes[0].Code)
	assert.Equal(t, []float64{1, 1}, second.Outcomes[0].Result.X)
	assert.Equal(t, solver.CodeNotConvergent, second.Outcomes[1].Code)
	assert.Equal(t, solver.CodeNotConvergent, second.Outcomes[2].Code)

	out := buf.String()
	assert.Contains(t, out, "***** System 1 --> n = 3, tolerance: 0.000100")
	assert.Contains(t, out, "***** System 2 --> n = 2, tolerance: 0.000100")
	assert.Contains(t, out, "===> Gaussian elimination: ")
	assert.Contains(t, out, "===> Jacobi: failed with code -1")
	assert.Contains(t, out, "===> Gauss-Seidel: failed with code -1")
	assert.Contains(t, out, "SYSTEM")
	assert.NotContains(t, out, "Refinement")
}

func TestRun_RefinesLargeResidual(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"jacobi"}
	cfg.MaxIterations = 1 // one sweep leaves the residual norm at √550
	cfg.Plot = true

	var buf bytes.Buffer
	d, err := driver.New(cfg, &buf, nil)
	require.NoError(t, err)

	sums, err := d.Run(strings.NewReader("3 1e-4 4 -1 0 -1 4 -1 0 -1 4 20 60 20"))
	require.NoError(t, err)
	require.Len(t, sums, 1)

	oc := sums[0].Outcomes[0]
	require.NoError(t, oc.Err)
	assert.False(t, oc.Result.Converged)
	assert.Greater(t, oc.Norm, cfg.Refine.Threshold)
	require.NotNil(t, oc.Refined)
	require.NoError(t, oc.Refined.Err)
	assert.InDeltaSlice(t, []float64{10, 20, 10}, oc.Refined.Result.X, 1e-9)
	assert.LessOrEqual(t, oc.Refined.Norm, cfg.Refine.Threshold)

	out := buf.String()
	assert.Contains(t, out, "===> Refinement: ")
	assert.Contains(t, out, "jacobi+refine")
}

func TestRun_RefineDisabled(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"seidel"}
	cfg.MaxIterations = 1
	cfg.Refine.Enabled = false

	d, err := driver.New(cfg, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	sums, err := d.Run(strings.NewReader("3 1e-4 4 -1 0 -1 4 -1 0 -1 4 20 60 20"))
	require.NoError(t, err)
	assert.Nil(t, sums[0].Outcomes[0].Refined)
}

func TestRun_MalformedInput(t *testing.T) {
	d, err := driver.New(config.DefaultConfig(), &bytes.Buffer{}, nil)
	require.NoError(t, err)

	sums, err := d.Run(strings.NewReader("1 0.1 2 4\n2 0.1 1 2"))
	require.ErrorIs(t, err, linsys.ErrMalformedInput)
	require.Len(t, sums, 1, "systems before the bad one are kept")
}

func TestRun_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	d, err := driver.New(nil, &buf, nil)
	require.NoError(t, err)
	sums, err := d.Run(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sums)
	assert.Empty(t, buf.String())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"qr"}
	_, err := driver.New(cfg, &bytes.Buffer{}, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_LogsRefinement(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"jacobi"}
	cfg.MaxIterations = 1

	d, err := driver.New(cfg, &bytes.Buffer{}, logger)
	require.NoError(t, err)
	_, err = d.Run(strings.NewReader("3 1e-4 4 -1 0 -1 4 -1 0 -1 4 20 60 20"))
	require.NoError(t, err)

	var refining bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.InfoLevel && strings.Contains(e.Message, "refining") {
			refining = true
			assert.Equal(t, 1, e.Data["system"])
		}
	}
	assert.True(t, refining)
}

func TestRun_ShowSystem(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"gauss"}
	cfg.ShowSystem = true

	var buf bytes.Buffer
	d, err := driver.New(cfg, &buf, nil)
	require.NoError(t, err)
	_, err = d.Run(strings.NewReader("2 1e-4 2 0 0 2 1 3"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "--> A:\n2.000000 0.000000 \n0.000000 2.000000 \n--> b: 1.000000 3.000000 \n")
}

func TestRun_PlotsIterativeDeltasOnly(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Methods = []string{"gauss", "jacobi"}
	cfg.Plot = true

	var buf bytes.Buffer
	d, err := driver.New(cfg, &buf, nil)
	require.NoError(t, err)
	_, err = d.Run(strings.NewReader(input))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Jacobi: max delta per iteration (log10)")
	assert.NotContains(t, out, "Gaussian elimination: max delta")
	assert.NotContains(t, out, "--> A:", "system echo is off by default")
}
