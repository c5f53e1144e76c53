// SPDX-License-Identifier: MIT

// Package linsys defines the in-memory linear system Ax = b consumed by the
// solvers, the residual engine that measures a candidate solution, and the
// plain-text reader that populates systems from an input stream.
//
// A System owns its coefficients (one contiguous *matrix.Dense block), its
// right-hand side and its stopping tolerance. Ownership is single and
// exclusive: a solver that needs to mutate a system works on Clone(), never
// on the caller's value.
//
// Text format (whitespace separated, systems back to back until EOF):
//
//	n
//	tol
//	a11 a12 ... a1n
//	...
//	an1 an2 ... ann
//	b1 b2 ... bn
package linsys
