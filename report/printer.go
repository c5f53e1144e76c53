// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/katalvlaran/linsolve/linsys"
	"github.com/katalvlaran/linsolve/solver"
)

// Plot geometry and the log10 floor used for exact zeros.
const (
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 60
	logFloor          = -16.0
)

// Printer writes run reports to w. It is not safe for concurrent use.
type Printer struct {
	w      io.Writer
	header lipgloss.Style
	label  lipgloss.Style
	fail   lipgloss.Style
	muted  lipgloss.Style
}

// NewPrinter returns a Printer whose styles are resolved against w's terminal
// capabilities.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)

	return &Printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff")),
		label:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		fail:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#666688")),
	}
}

// SystemHeader writes the banner that opens the report of system idx (1-based).
func (p *Printer) SystemHeader(idx int, s *linsys.System) error {
	line := fmt.Sprintf("***** System %d --> n = %d, tolerance: %f", idx, s.Size(), s.Tol)
	_, err := fmt.Fprintln(p.w, p.header.Render(line))

	return err
}

// System writes the coefficients and right-hand side of s.
func (p *Printer) System(s *linsys.System) error {
	_, err := fmt.Fprintf(p.w, "--> A:\n%s--> b: %s\n\n", FormatMatrix(s.A), FormatVector(s.B))

	return err
}

// Outcome writes a successful solve: elapsed milliseconds, iteration count
// when the method iterates, the solution vector and its residual norm.
func (p *Printer) Outcome(name string, res solver.Result, norm float64) error {
	var sb strings.Builder
	head := fmt.Sprintf("===> %s: %1.10f ms", name, millis(res.Elapsed))
	if res.Iterations > 0 {
		head += fmt.Sprintf(" --> %d iterations", res.Iterations)
	}
	sb.WriteString(p.label.Render(head))
	if !res.Converged {
		sb.WriteString(p.muted.Render(" (iteration cap reached)"))
	}
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "--> X: %s\n", FormatVector(res.X))
	fmt.Fprintf(&sb, "--> Residual L2 norm: %f\n\n", norm)
	_, err := io.WriteString(p.w, sb.String())

	return err
}

// Failure writes an abandoned solve with its numeric result code.
func (p *Printer) Failure(name string, err error) error {
	line := fmt.Sprintf("===> %s: failed with code %d: %v", name, solver.Code(err), err)
	_, werr := fmt.Fprintf(p.w, "%s\n\n", p.fail.Render(line))

	return werr
}

// Plot draws series on a log10 scale. Series shorter than two points are
// skipped; zeros are drawn at the floor 1e-16.
func (p *Printer) Plot(caption string, series []float64) error {
	if len(series) < 2 {
		return nil
	}
	graph := asciigraph.Plot(Log10(series),
		asciigraph.Height(DefaultPlotHeight),
		asciigraph.Width(DefaultPlotWidth),
		asciigraph.Caption(caption),
	)
	_, err := fmt.Fprintf(p.w, "%s\n\n", graph)

	return err
}

// Row is one line of the summary table.
type Row struct {
	System     int
	Method     string
	Code       int
	Iterations int
	Norm       float64
	Elapsed    time.Duration
}

// Table writes rows as an aligned summary table.
func (p *Printer) Table(rows []Row) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYSTEM\tMETHOD\tCODE\tITER\tRESIDUAL\tTIME(ms)")
	for _, r := range rows {
		norm := "-"
		if r.Code == solver.CodeOK {
			norm = fmt.Sprintf("%g", r.Norm)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%.4f\n", r.System, r.Method, r.Code, r.Iterations, norm, millis(r.Elapsed))
	}

	return tw.Flush()
}

// Log10 maps series to log10 values, clamping zeros and non-finite results to
// a fixed floor so the plot stays drawable.
func Log10(series []float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		l := math.Log10(math.Abs(v))
		if math.IsNaN(l) || math.IsInf(l, 0) || l < logFloor {
			l = logFloor
		}
		out[i] = l
	}

	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
