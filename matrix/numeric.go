// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// IsInvalid reports whether v is NaN or ±Inf.
// Zero is a valid value: a zero pivot or diagonal is a structural condition
// that solvers report on its own, never a numeric failure.
func IsInvalid(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateFinite checks every element of v against IsInvalid and returns
// ErrNaNInf tagged with the first offending index.
// Complexity: O(len(v)).
func ValidateFinite(v []float64) error {
	for i, x := range v {
		if IsInvalid(x) {
			return fmt.Errorf("ValidateFinite: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}
