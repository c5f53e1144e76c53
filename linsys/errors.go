// SPDX-License-Identifier: MIT

package linsys

import "errors"

var (
	// ErrNilSystem indicates that a nil *System was passed in.
	ErrNilSystem = errors.New("linsys: nil system")

	// ErrBadTolerance indicates a negative or non-finite stopping tolerance.
	ErrBadTolerance = errors.New("linsys: tolerance must be finite and >= 0")

	// ErrMalformedInput indicates that the text input ended early or held a
	// token that is not a number of the expected kind.
	ErrMalformedInput = errors.New("linsys: malformed input")
)
