// SPDX-License-Identifier: MIT

// Package driver sequences a configured set of solvers over every system of
// an input stream and reports each outcome.
//
// For every system the driver prints a header, then for each method in order
// it solves from a zero initial guess, prints the solution, timing and
// residual L2 norm, and, when refinement is enabled and the norm exceeds the
// configured threshold, refines that solution and prints the refined outcome.
// A failed solve prints its numeric result code and the run continues.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/linsolve/config"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/report"
	"github.com/katalvlaran/linsolve/solver"
	"github.com/sirupsen/logrus"
)

const refineLabel = "Refinement"

// Outcome is the result of one method on one system.
//   - Code is solver.Code(Err); Result and Norm are meaningful only when Err is nil.
//   - Refined is set when refinement ran on this outcome's solution.
type Outcome struct {
	Method  solver.Method
	Result  solver.Result
	Norm    float64
	Code    int
	Err     error
	Refined *Outcome
}

// Summary collects the outcomes of every configured method on system Index (1-based).
type Summary struct {
	Index    int
	Size     int
	Outcomes []Outcome
}

// Driver runs the configured methods. It is not safe for concurrent use.
type Driver struct {
	cfg     *config.Config
	methods []solver.Method
	opts    []solver.Option
	out     *report.Printer
	log     logrus.FieldLogger
}

// New validates cfg and returns a Driver writing its report to w.
// A nil logger discards diagnostics.
func New(cfg *config.Config, w io.Writer, logger logrus.FieldLogger) (*Driver, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	methods, err := cfg.ParsedMethods()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Driver{
		cfg:     cfg,
		methods: methods,
		opts:    append(cfg.SolverOptions(), solver.WithLogger(logger)),
		out:     report.NewPrinter(w),
		log:     logger,
	}, nil
}

// Run solves every system read from r. It returns the summaries of all
// systems handled so far together with the first read or write error;
// solver failures are reported in the summaries, not as an error.
func (d *Driver) Run(r io.Reader) ([]Summary, error) {
	var (
		summaries []Summary
		rows      []report.Row
	)
	rd := linsys.NewReader(r)
	for idx := 1; ; idx++ {
		s, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			d.log.WithError(err).WithField("system", idx).Error("cannot read system")
			return summaries, err
		}

		sum, err := d.solveSystem(idx, s)
		summaries = append(summaries, sum)
		if err != nil {
			return summaries, err
		}
		rows = append(rows, tableRows(sum)...)
	}
	if len(rows) == 0 {
		return summaries, nil
	}

	return summaries, d.out.Table(rows)
}

// solveSystem runs every configured method on s; the error is a write error.
func (d *Driver) solveSystem(idx int, s *linsys.System) (Summary, error) {
	sum := Summary{Index: idx, Size: s.Size()}
	if err := d.out.SystemHeader(idx, s); err != nil {
		return sum, err
	}
	if d.cfg.ShowSystem {
		if err := d.out.System(s); err != nil {
			return sum, err
		}
	}
	log := d.log.WithField("system", idx)

	for _, m := range d.methods {
		res, err := solver.Solve(m, s, nil, d.opts...)
		oc, werr := d.record(m, m.Label(), s, res, err)
		if werr != nil {
			return sum, werr
		}
		log.WithField("method", m.String()).WithField("code", oc.Code).Debug("method finished")

		if oc.Err == nil && d.cfg.Refine.Enabled && oc.Norm > d.cfg.Refine.Threshold {
			log.WithField("method", m.String()).Infof("residual norm %g above %g, refining", oc.Norm, d.cfg.Refine.Threshold)
			rres, rerr := solver.Refine(s, res.X, d.opts...)
			refined, werr := d.record(m, refineLabel, s, rres, rerr)
			if werr != nil {
				return sum, werr
			}
			oc.Refined = &refined
		}
		sum.Outcomes = append(sum.Outcomes, oc)
	}

	return sum, nil
}

// record prints one outcome (and its plot when enabled) and returns it.
func (d *Driver) record(m solver.Method, label string, s *linsys.System, res solver.Result, err error) (Outcome, error) {
	oc := Outcome{Method: m, Code: solver.Code(err), Err: err}
	if err != nil {
		return oc, d.out.Failure(label, err)
	}

	oc.Result = res
	if oc.Norm, err = linsys.ResidualNorm(s, res.X); err != nil {
		return oc, fmt.Errorf("driver: residual of %s: %w", label, err)
	}
	if err = d.out.Outcome(label, res, oc.Norm); err != nil {
		return oc, err
	}
	if !d.cfg.Plot {
		return oc, nil
	}
	switch {
	case len(res.Residuals) > 0:
		return oc, d.out.Plot(label+": residual L2 norm (log10)", res.Residuals)
	case m.Iterative():
		return oc, d.out.Plot(label+": max delta per iteration (log10)", res.Deltas)
	}

	return oc, nil
}

func tableRows(sum Summary) []report.Row {
	rows := make([]report.Row, 0, len(sum.Outcomes))
	for _, oc := range sum.Outcomes {
		rows = append(rows, row(sum.Index, oc.Method.String(), oc))
		if oc.Refined != nil {
			rows = append(rows, row(sum.Index, oc.Method.String()+"+refine", *oc.Refined))
		}
	}

	return rows
}

func row(system int, method string, oc Outcome) report.Row {
	return report.Row{
		System:     system,
		Method:     method,
		Code:       oc.Code,
		Iterations: oc.Result.Iterations,
		Norm:       oc.Norm,
		Elapsed:    oc.Result.Elapsed,
	}
}
