// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws n points from the distribution defined by the histogram.
// Each draw selects a cell with probability proportional to its count
// and then places the point uniformly at random inside the cell, so the
// result is distributed like the data the histogram was built from, up
// to the grid resolution. This is inverse transform sampling over the
// cell weights; see Devroye, Non-Uniform Random Variate Generation,
// Springer, 1986, chapter III.
//
// All randomness comes from src: two calls with sources in the same
// state return identical points. Coordinates along axis j of a point in
// cell i lie in [Edges[j][i], Edges[j][i+1]).
//
// Sample returns ErrInvalidHistogram if any count is negative, NaN, or
// infinite, and ErrEmptyDistribution if the total weight is zero. n of
// zero returns an empty slice and no error. Negative n panics.
func (h *Hist) Sample(n int, src rand.Source) ([][]float64, error) {
	if n < 0 {
		panic("grid: negative sample count")
	}
	if _, err := checkWeights(h.Counts); err != nil {
		return nil, err
	}
	cat := distuv.NewCategorical(h.Counts, src)
	d := len(h.Edges)
	ix := make([]int, d)
	out := make([][]float64, n)
	for k := range out {
		h.unflatten(int(cat.Rand()), ix)
		p := make([]float64, d)
		for j, i := range ix {
			e := h.Edges[j]
			p[j] = distuv.Uniform{Min: e[i], Max: e[i+1], Src: src}.Rand()
		}
		out[k] = p
	}
	return out, nil
}

// Sample draws n points from the distribution defined by the histogram.
// It behaves exactly like Hist.Sample but draws over the stored cells
// only, so it never materializes the dense grid.
func (s *SparseHist) Sample(n int, src rand.Source) ([][]float64, error) {
	if n < 0 {
		panic("grid: negative sample count")
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	if _, err := checkWeights(s.Counts); err != nil {
		return nil, err
	}
	cat := distuv.NewCategorical(s.Counts, src)
	out := make([][]float64, n)
	for k := range out {
		ix := s.Indices[int(cat.Rand())]
		p := make([]float64, len(s.Edges))
		for j, i := range ix {
			e := s.Edges[j]
			p[j] = distuv.Uniform{Min: e[i], Max: e[i+1], Src: src}.Rand()
		}
		out[k] = p
	}
	return out, nil
}

// checkWeights verifies that ws can serve as categorical weights and
// returns their total.
func checkWeights(ws []float64) (float64, error) {
	sum := 0.0
	for i, w := range ws {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: count %d is %g", ErrInvalidHistogram, i, w)
		}
		sum += w
	}
	if sum == 0 {
		return 0, ErrEmptyDistribution
	}
	return sum, nil
}
