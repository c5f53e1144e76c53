// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsolve/matrix"
)

// FormatVector renders v as "%f " per element.
func FormatVector(v []float64) string {
	var sb strings.Builder
	for _, x := range v {
		fmt.Fprintf(&sb, "%f ", x)
	}

	return sb.String()
}

// FormatMatrix renders m one row per line, each row formatted like FormatVector.
// A nil matrix renders as the empty string.
func FormatMatrix(m matrix.Matrix) string {
	if matrix.ValidateNotNil(m) != nil {
		return ""
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j) // indices within bounds
			fmt.Fprintf(&sb, "%f ", v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
