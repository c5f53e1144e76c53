// SPDX-License-Identifier: MIT
package config_test

import "github.com/katalvlaran/linsolve/linsys"

func linsysTridiag() (*linsys.System, error) {
	return linsys.FromRows([][]float64{{4, -1, 0}, {-1, 4, -1}, {0, -1, 4}}, []float64{2, 6, 2}, 1e-4)
}
