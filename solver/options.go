// SPDX-License-Identifier: MIT

// Package solver: functional configuration for the solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
package solver

import (
	"io"
	"time"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIterations caps the sweeps of Jacobi and Gauss-Seidel.
	DefaultMaxIterations = 50

	// DefaultRefineIterations caps the passes of the refinement loop.
	DefaultRefineIterations = 10

	// DefaultResidualThreshold is the residual L2 norm at or below which a
	// solution is accepted without (further) refinement.
	DefaultResidualThreshold = 5.0

	// DefaultConvergenceCheck gates the iterative methods on their sufficient
	// convergence condition.
	DefaultConvergenceCheck = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterInvalid    = "solver: WithMaxIterations: n must be >= 1"
	panicRefineIterInvalid = "solver: WithRefineIterations: n must be >= 1"
	panicThresholdInvalid  = "solver: WithResidualThreshold: threshold must be finite, non-negative"
	panicClockNil          = "solver: WithClock: clock must be non-nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxIter          int
	refineIter       int
	threshold        float64
	checkConvergence bool
	clock            func() time.Time
	logger           logrus.FieldLogger
}

// silent discards every entry; it is the logger used when none is configured.
var silent = newSilentLogger()

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		maxIter:          DefaultMaxIterations,
		refineIter:       DefaultRefineIterations,
		threshold:        DefaultResidualThreshold,
		checkConvergence: DefaultConvergenceCheck,
		clock:            time.Now,
		logger:           silent,
	}
}

// MaxIterations returns the Jacobi/Gauss-Seidel sweep cap.
func (o Options) MaxIterations() int { return o.maxIter }

// RefineIterations returns the refinement pass cap.
func (o Options) RefineIterations() int { return o.refineIter }

// ResidualThreshold returns the residual L2 norm above which refinement runs.
func (o Options) ResidualThreshold() float64 { return o.threshold }

// ConvergenceCheck reports whether the sufficient-condition gate is enabled.
func (o Options) ConvergenceCheck() bool { return o.checkConvergence }

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxIterations sets the sweep cap (MAXIT) of Jacobi and Gauss-Seidel.
// Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithRefineIterations sets the pass cap of the refinement loop.
// Panics when n < 1.
func WithRefineIterations(n int) Option {
	if n < 1 {
		panic(panicRefineIterInvalid)
	}

	return func(o *Options) { o.refineIter = n }
}

// WithResidualThreshold sets the residual L2 norm the refinement loop accepts.
// Panics when v is negative, NaN or ±Inf.
func WithResidualThreshold(v float64) Option {
	if matrix.IsInvalid(v) || v < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = v }
}

// WithConvergenceCheck toggles the sufficient-condition gate of the iterative
// methods. With the gate off, a system outside the condition is iterated
// anyway; the zero-diagonal and floating point guards stay active.
func WithConvergenceCheck(enabled bool) Option {
	return func(o *Options) { o.checkConvergence = enabled }
}

// WithClock sets the time source read around each algorithm body.
// Any monotonic clock works; tests inject a fake one.
// Panics when now is nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic(panicClockNil)
	}

	return func(o *Options) { o.clock = now }
}

// WithLogger routes solver diagnostics to l. A nil l restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.logger = silent
			return
		}
		o.logger = l
	}
}
