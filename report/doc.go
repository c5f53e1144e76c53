// SPDX-License-Identifier: MIT

// Package report renders solver runs as text.
//
// FormatVector and FormatMatrix are plain formatters. Printer writes the
// per-system blocks of a run (header, one outcome or failure per method,
// optional convergence plots) and a closing summary table to one io.Writer.
// Styling goes through a lipgloss renderer bound to that writer, so output
// redirected to a file or buffer carries no escape sequences.
package report
