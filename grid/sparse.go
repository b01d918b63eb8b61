// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A SparseHist is the sparse form of a histogram: only cells with
// nonzero counts are stored. It is exactly equivalent to the dense form
// on the same grid; Sparse and Dense convert between the two.
//
// Indices and Counts are parallel: Indices[k] is the multi-index of a
// cell and Counts[k] its count. Histograms built by SparseHistogram or
// Hist.Sparse list cells in ascending row-major order.
type SparseHist struct {
	Indices [][]int
	Counts  []float64
	Edges   [][]float64
}

// SparseHistogram bins the given points without materializing the dense
// cell array, which matters when the grid has far more cells than
// occupied ones. It accepts the same points and bin specifications as
// Histogram and agrees with it cell for cell.
func SparseHistogram(pts [][]float64, bins ...Bins) (*SparseHist, error) {
	edges, err := prepare(pts, bins)
	if err != nil {
		return nil, err
	}
	if err := validateAxes(edges); err != nil {
		return nil, err
	}
	frame := &Hist{Edges: edges}
	stride := frame.strides()
	acc := make(map[int]float64)
	for _, p := range pts {
		flat, ok := 0, true
		for j, x := range p {
			i, in := digitize(edges[j], x)
			if !in {
				ok = false
				break
			}
			flat += i * stride[j]
		}
		if ok {
			acc[flat]++
		}
	}

	flats := make([]int, 0, len(acc))
	for f := range acc {
		flats = append(flats, f)
	}
	sort.Ints(flats)
	s := &SparseHist{
		Indices: make([][]int, len(flats)),
		Counts:  make([]float64, len(flats)),
		Edges:   edges,
	}
	for k, f := range flats {
		ix := make([]int, len(edges))
		frame.unflatten(f, ix)
		s.Indices[k] = ix
		s.Counts[k] = acc[f]
	}
	return s, nil
}

// Sparse returns the sparse form of h: its nonzero cells in ascending
// row-major order.
func (h *Hist) Sparse() *SparseHist {
	s := &SparseHist{Edges: h.Edges}
	for flat, w := range h.Counts {
		if w == 0 {
			continue
		}
		ix := make([]int, len(h.Edges))
		h.unflatten(flat, ix)
		s.Indices = append(s.Indices, ix)
		s.Counts = append(s.Counts, w)
	}
	return s
}

// Dense returns the dense form of s. Cells listed more than once
// accumulate. It returns ErrInvalidEdges for bad edges and a wrapped
// ErrInvalidHistogram for indices outside the grid.
func (s *SparseHist) Dense() (*Hist, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	h, err := New(s.Edges...)
	if err != nil {
		return nil, err
	}
	for k, ix := range s.Indices {
		h.Counts[h.flat(ix)] += s.Counts[k]
	}
	return h, nil
}

// check validates the edges and multi-indices of s.
func (s *SparseHist) check() error {
	if err := validateAxes(s.Edges); err != nil {
		return err
	}
	if len(s.Indices) != len(s.Counts) {
		return fmt.Errorf("%w: %d indices for %d counts", ErrInvalidHistogram, len(s.Indices), len(s.Counts))
	}
	for k, ix := range s.Indices {
		if len(ix) != len(s.Edges) {
			return fmt.Errorf("%w: index %d has dimension %d, grid has %d", ErrInvalidHistogram, k, len(ix), len(s.Edges))
		}
		for j, i := range ix {
			if i < 0 || i >= len(s.Edges[j])-1 {
				return fmt.Errorf("%w: index %d out of range on axis %d", ErrInvalidHistogram, k, j)
			}
		}
	}
	return nil
}

// Dim returns the number of grid axes.
func (s *SparseHist) Dim() int { return len(s.Edges) }

// Shape returns the number of bins along each axis.
func (s *SparseHist) Shape() []int {
	shape := make([]int, len(s.Edges))
	for j, e := range s.Edges {
		shape[j] = len(e) - 1
	}
	return shape
}

// Len returns the number of stored cells.
func (s *SparseHist) Len() int { return len(s.Counts) }

// Sum returns the total weight of the histogram.
func (s *SparseHist) Sum() float64 { return floats.Sum(s.Counts) }
