// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Mean returns the center of mass of the histogram: the average of the
// cell centers weighted by their counts. A histogram with zero total
// weight has a NaN mean.
func (h *Hist) Mean() []float64 {
	d := len(h.Edges)
	mean := make([]float64, d)
	sum := h.Sum()
	if sum == 0 {
		for j := range mean {
			mean[j] = nan
		}
		return mean
	}
	centers := h.Centers()
	ix := make([]int, d)
	for flat, w := range h.Counts {
		if w == 0 {
			continue
		}
		h.unflatten(flat, ix)
		for j, i := range ix {
			mean[j] += w * centers[j][i]
		}
	}
	floats.Scale(1/sum, mean)
	return mean
}

// Cov returns the covariance matrix of the histogram, treating the
// counts as weights on the cell centers. This is the population
// covariance of the gridded distribution, not of the points it was
// built from; the two converge as the grid is refined. It returns
// ErrEmptyDistribution for a histogram with zero total weight.
func (h *Hist) Cov() (*mat.SymDense, error) {
	sum := h.Sum()
	if sum == 0 {
		return nil, ErrEmptyDistribution
	}
	d := len(h.Edges)
	mean := h.Mean()
	centers := h.Centers()
	s := mat.NewSymDense(d, nil)
	ix := make([]int, d)
	dx := make([]float64, d)
	for flat, w := range h.Counts {
		if w == 0 {
			continue
		}
		h.unflatten(flat, ix)
		for j, i := range ix {
			dx[j] = centers[j][i] - mean[j]
		}
		for a := 0; a < d; a++ {
			for b := a; b < d; b++ {
				s.SetSym(a, b, s.At(a, b)+w*dx[a]*dx[b])
			}
		}
	}
	for a := 0; a < d; a++ {
		for b := a; b < d; b++ {
			s.SetSym(a, b, s.At(a, b)/sum)
		}
	}
	return s, nil
}
