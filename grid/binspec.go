// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
)

// A Bins specifies the bin edges of one grid axis. The implementations
// are Count, Span, and Edges. Specifications are resolved to concrete
// edges exactly once, when a histogram is constructed.
type Bins interface {
	// edges resolves the specification to bin edges. xs is the data
	// along the axis, used only by specifications that derive their
	// range from the data.
	edges(xs []float64) ([]float64, error)
}

// Count specifies equal-width bins spanning the range of the data along
// an axis. If the data is empty or has zero range, the range is padded
// by 0.5 on both sides.
type Count int

func (n Count) edges(xs []float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: bin count %d < 1", ErrInvalidEdges, n)
	}
	lo, hi := 0.0, 0.0
	if len(xs) > 0 {
		lo, hi = floats.Min(xs), floats.Max(xs)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return vec.Linspace(lo, hi, int(n)+1), nil
}

// Span specifies N equal-width bins over the fixed interval [Lo, Hi).
type Span struct {
	N      int
	Lo, Hi float64
}

func (s Span) edges(xs []float64) ([]float64, error) {
	if s.N < 1 {
		return nil, fmt.Errorf("%w: bin count %d < 1", ErrInvalidEdges, s.N)
	}
	if !(s.Lo < s.Hi) {
		return nil, fmt.Errorf("%w: span [%g, %g)", ErrInvalidEdges, s.Lo, s.Hi)
	}
	return vec.Linspace(s.Lo, s.Hi, s.N+1), nil
}

// Edges specifies explicit bin edges, used exactly as given.
type Edges []float64

func (e Edges) edges(xs []float64) ([]float64, error) { return e, nil }

// Histogram bins the given points. Each row of pts is one point; all
// rows must share one dimension, which must match the number of bin
// specifications. A single specification broadcasts to every axis, and
// no specification at all defaults to Count(10). Points outside the grid
// are dropped silently. Empty input yields a zero histogram whose
// dimension is the number of bin specifications.
func Histogram(pts [][]float64, bins ...Bins) (*Hist, error) {
	edges, err := prepare(pts, bins)
	if err != nil {
		return nil, err
	}
	h, err := New(edges...)
	if err != nil {
		return nil, err
	}
	if _, err := h.Fill(pts); err != nil {
		return nil, err
	}
	return h, nil
}

// prepare validates the points and resolves the bin specifications to
// per-axis edges.
func prepare(pts [][]float64, bins []Bins) ([][]float64, error) {
	d := len(bins)
	if len(pts) > 0 {
		d = len(pts[0])
	}
	if d == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrInvalidEdges)
	}
	if err := checkDim(pts, d); err != nil {
		return nil, err
	}
	switch len(bins) {
	case 0:
		bins = []Bins{Count(10)}
		fallthrough
	case 1:
		b := bins[0]
		bins = make([]Bins, d)
		for j := range bins {
			bins[j] = b
		}
	}
	if len(bins) != d {
		return nil, fmt.Errorf("%w: %d bin specifications for dimension %d", ErrDimensionMismatch, len(bins), d)
	}
	edges := make([][]float64, d)
	for j := range bins {
		e, err := bins[j].edges(column(pts, j))
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", j, err)
		}
		edges[j] = e
	}
	return edges, nil
}

func checkDim(pts [][]float64, d int) error {
	for _, p := range pts {
		if len(p) != d {
			return fmt.Errorf("%w: point has dimension %d, grid has %d", ErrDimensionMismatch, len(p), d)
		}
	}
	return nil
}

// column extracts coordinate j of every point.
func column(pts [][]float64, j int) []float64 {
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p[j]
	}
	return xs
}
