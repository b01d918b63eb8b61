// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Hist is a dense histogram on a rectilinear N-dimensional grid.
//
// Axis j of the grid is divided into len(Edges[j])-1 bins. Bin i of axis
// j covers the half-open interval [Edges[j][i], Edges[j][i+1]), except
// that the final bin also includes its upper edge. Cell counts are stored
// flat in row-major order: the last axis varies fastest.
//
// The zero Hist is not valid; construct one with New, Histogram, or
// SparseHist.Dense.
type Hist struct {
	// Counts holds the weight of every grid cell in row-major order.
	Counts []float64

	// Edges holds the bin edges of each axis. Edges[j] must have at
	// least two strictly increasing, finite values.
	Edges [][]float64
}

// New returns a zero-filled histogram on the grid defined by the given
// per-axis bin edges. It returns ErrInvalidEdges if any axis has fewer
// than two edges, a non-increasing step, or a non-finite edge.
func New(edges ...[]float64) (*Hist, error) {
	if err := validateAxes(edges); err != nil {
		return nil, err
	}
	size := 1
	for _, e := range edges {
		size *= len(e) - 1
	}
	return &Hist{Counts: make([]float64, size), Edges: edges}, nil
}

// validateAxes checks every axis of a per-axis edge list.
func validateAxes(edges [][]float64) error {
	if len(edges) == 0 {
		return fmt.Errorf("%w: no axes", ErrInvalidEdges)
	}
	for j, e := range edges {
		if err := validEdges(e); err != nil {
			return fmt.Errorf("axis %d: %w", j, err)
		}
	}
	return nil
}

func validEdges(e []float64) error {
	if len(e) < 2 {
		return fmt.Errorf("%w: need at least two edges, have %d", ErrInvalidEdges, len(e))
	}
	for i, x := range e {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: edge %d is not finite", ErrInvalidEdges, i)
		}
		if i > 0 && x <= e[i-1] {
			return fmt.Errorf("%w: edges not strictly increasing at %d", ErrInvalidEdges, i)
		}
	}
	return nil
}

// Dim returns the number of grid axes.
func (h *Hist) Dim() int { return len(h.Edges) }

// Shape returns the number of bins along each axis.
func (h *Hist) Shape() []int {
	s := make([]int, len(h.Edges))
	for j, e := range h.Edges {
		s[j] = len(e) - 1
	}
	return s
}

// Size returns the total number of grid cells.
func (h *Hist) Size() int {
	n := 1
	for _, e := range h.Edges {
		n *= len(e) - 1
	}
	return n
}

// Sum returns the total weight of the histogram.
func (h *Hist) Sum() float64 { return floats.Sum(h.Counts) }

// At returns the count of the cell with multi-index ix. It panics if ix
// has the wrong dimension or is out of range.
func (h *Hist) At(ix ...int) float64 {
	return h.Counts[h.flat(ix)]
}

// Clone returns a deep copy of h.
func (h *Hist) Clone() *Hist {
	counts := make([]float64, len(h.Counts))
	copy(counts, h.Counts)
	edges := make([][]float64, len(h.Edges))
	for j, e := range h.Edges {
		edges[j] = make([]float64, len(e))
		copy(edges[j], e)
	}
	return &Hist{Counts: counts, Edges: edges}
}

// Centers returns the per-axis bin centers.
func (h *Hist) Centers() [][]float64 {
	cs := make([][]float64, len(h.Edges))
	for j, e := range h.Edges {
		c := make([]float64, len(e)-1)
		for i := range c {
			c[i] = 0.5 * (e[i] + e[i+1])
		}
		cs[j] = c
	}
	return cs
}

// Widths returns the per-axis bin widths.
func (h *Hist) Widths() [][]float64 {
	ws := make([][]float64, len(h.Edges))
	for j, e := range h.Edges {
		w := make([]float64, len(e)-1)
		for i := range w {
			w[i] = e[i+1] - e[i]
		}
		ws[j] = w
	}
	return ws
}

// CellVolume returns the volume of the cell with multi-index ix.
func (h *Hist) CellVolume(ix []int) float64 {
	if len(ix) != len(h.Edges) {
		panic("grid: multi-index has wrong dimension")
	}
	v := 1.0
	for j, i := range ix {
		v *= h.Edges[j][i+1] - h.Edges[j][i]
	}
	return v
}

// Bin returns the multi-index of the cell containing point p, or false
// if p lies outside the grid (including NaN coordinates). It panics if
// p does not have the grid's dimension.
func (h *Hist) Bin(p []float64) ([]int, bool) {
	if len(p) != len(h.Edges) {
		panic("grid: point has wrong dimension")
	}
	ix := make([]int, len(p))
	for j, x := range p {
		i, ok := digitize(h.Edges[j], x)
		if !ok {
			return nil, false
		}
		ix[j] = i
	}
	return ix, true
}

// digitize returns the bin index of x in the edge sequence e. Bins are
// half-open on the right except the final bin, which is closed.
func digitize(e []float64, x float64) (int, bool) {
	if x == e[len(e)-1] {
		return len(e) - 2, true
	}
	i := sort.SearchFloat64s(e, x)
	if i < len(e) && e[i] == x {
		return i, true
	}
	i--
	if i < 0 || i >= len(e)-1 {
		return 0, false
	}
	return i, true
}

// Fill adds each point of pts to the histogram. Points outside the grid
// are dropped silently. It returns the number of points binned and
// ErrDimensionMismatch if a point does not have the grid's dimension.
func (h *Hist) Fill(pts [][]float64) (int, error) {
	d := len(h.Edges)
	stride := h.strides()
	binned := 0
	for _, p := range pts {
		if len(p) != d {
			return binned, fmt.Errorf("%w: point has dimension %d, grid has %d", ErrDimensionMismatch, len(p), d)
		}
		flat, ok := 0, true
		for j, x := range p {
			i, in := digitize(h.Edges[j], x)
			if !in {
				ok = false
				break
			}
			flat += i * stride[j]
		}
		if ok {
			h.Counts[flat]++
			binned++
		}
	}
	return binned, nil
}

// strides returns the row-major stride of each axis.
func (h *Hist) strides() []int {
	s := make([]int, len(h.Edges))
	acc := 1
	for j := len(h.Edges) - 1; j >= 0; j-- {
		s[j] = acc
		acc *= len(h.Edges[j]) - 1
	}
	return s
}

// flat converts a multi-index to a flat row-major index. It panics if ix
// has the wrong dimension or is out of range.
func (h *Hist) flat(ix []int) int {
	if len(ix) != len(h.Edges) {
		panic("grid: multi-index has wrong dimension")
	}
	flat := 0
	for j, i := range ix {
		if i < 0 || i >= len(h.Edges[j])-1 {
			panic("grid: multi-index out of range")
		}
		flat = flat*(len(h.Edges[j])-1) + i
	}
	return flat
}

// unflatten converts a flat row-major index to a multi-index, storing
// the result in ix.
func (h *Hist) unflatten(flat int, ix []int) {
	for j := len(h.Edges) - 1; j >= 0; j-- {
		k := len(h.Edges[j]) - 1
		ix[j] = flat % k
		flat /= k
	}
}
