// SPDX-License-Identifier: MIT

package linsys

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Reader decodes systems in the whitespace-separated text format described in
// the package documentation. One Reader may yield many systems.
type Reader struct {
	sc    *bufio.Scanner
	count int // systems decoded so far, used in error context
}

// NewReader returns a Reader tokenizing r on whitespace.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Next decodes the next system.
// It returns io.EOF when the stream ends cleanly before a new system starts,
// and an error wrapping ErrMalformedInput when a system is truncated or holds
// an invalid token.
func (r *Reader) Next() (*System, error) {
	tok, ok := r.token()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	r.count++

	n, err := strconv.Atoi(tok)
	if err != nil || n <= 0 {
		return nil, r.errorf("size %q", tok)
	}
	tol, err := r.float("tolerance")
	if err != nil {
		return nil, err
	}

	s, err := New(n)
	if err != nil {
		return nil, err
	}
	s.Tol = tol

	var i, j int
	var row []float64
	for i = 0; i < n; i++ {
		row, _ = s.A.Row(i) // i < n by construction
		for j = 0; j < n; j++ {
			if row[j], err = r.float(fmt.Sprintf("a[%d][%d]", i, j)); err != nil {
				return nil, err
			}
		}
	}
	for i = 0; i < n; i++ {
		if s.B[i], err = r.float(fmt.Sprintf("b[%d]", i)); err != nil {
			return nil, err
		}
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("linsys: system %d: %w", r.count, err)
	}

	return s, nil
}

// Read decodes exactly one system from r; see Reader.Next for the errors.
func Read(r io.Reader) (*System, error) {
	return NewReader(r).Next()
}

func (r *Reader) token() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}

	return r.sc.Text(), true
}

func (r *Reader) float(what string) (float64, error) {
	tok, ok := r.token()
	if !ok {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("linsys: system %d: %s: %w: %w", r.count, what, ErrMalformedInput, io.ErrUnexpectedEOF)
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, r.errorf("%s %q", what, tok)
	}

	return v, nil
}

func (r *Reader) errorf(format string, args ...any) error {
	return fmt.Errorf("linsys: system %d: %s: %w", r.count, fmt.Sprintf(format, args...), ErrMalformedInput)
}
