// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// Project returns the histogram summed onto the given axes, in the
// given order. The total weight is preserved. It panics if an axis is
// out of range or repeated.
func (h *Hist) Project(axes ...int) *Hist {
	if len(axes) == 0 {
		panic("grid: projection onto no axes")
	}
	d := len(h.Edges)
	seen := make([]bool, d)
	edges := make([][]float64, len(axes))
	for k, a := range axes {
		if a < 0 || a >= d {
			panic("grid: projection axis out of range")
		}
		if seen[a] {
			panic("grid: repeated projection axis")
		}
		seen[a] = true
		edges[k] = h.Edges[a]
	}
	out, err := New(edges...)
	if err != nil {
		// Only reachable for a hand-built Hist with bad edges.
		panic(err)
	}
	ostride := out.strides()
	ix := make([]int, d)
	for flat, w := range h.Counts {
		if w == 0 {
			continue
		}
		h.unflatten(flat, ix)
		oflat := 0
		for k, a := range axes {
			oflat += ix[a] * ostride[k]
		}
		out.Counts[oflat] += w
	}
	return out
}

// SliceIdx returns the part of the histogram whose bin index along the
// given axis lies in the half-open range [lo, hi). The result keeps all
// axes; the sliced axis has hi-lo bins. It panics if the axis is out of
// range, if the bounds lie outside the axis, or if lo >= hi.
func (h *Hist) SliceIdx(axis, lo, hi int) *Hist {
	d := len(h.Edges)
	if axis < 0 || axis >= d {
		panic("grid: slice axis out of range")
	}
	if lo < 0 || hi > len(h.Edges[axis])-1 || lo >= hi {
		panic("grid: slice bounds out of range")
	}
	edges := make([][]float64, d)
	copy(edges, h.Edges)
	edges[axis] = h.Edges[axis][lo : hi+1]
	out, err := New(edges...)
	if err != nil {
		// Only reachable for a hand-built Hist with bad edges.
		panic(err)
	}
	ix := make([]int, d)
	ostride := out.strides()
	for flat, w := range h.Counts {
		if w == 0 {
			continue
		}
		h.unflatten(flat, ix)
		if ix[axis] < lo || ix[axis] >= hi {
			continue
		}
		oflat := 0
		for j, i := range ix {
			if j == axis {
				i -= lo
			}
			oflat += i * ostride[j]
		}
		out.Counts[oflat] += w
	}
	return out
}

// Density returns the histogram normalized to a probability density:
// each count is divided by the total weight times the cell volume, so
// the result integrates to one over the grid. A histogram with zero
// total weight normalizes to all zeros.
func (h *Hist) Density() *Hist {
	out := h.Clone()
	sum := h.Sum()
	if sum == 0 {
		return out
	}
	ws := h.Widths()
	ix := make([]int, len(h.Edges))
	for flat := range out.Counts {
		h.unflatten(flat, ix)
		v := 1.0
		for j, i := range ix {
			v *= ws[j][i]
		}
		out.Counts[flat] /= sum * v
	}
	return out
}

// PDF returns the probability density of the histogram at point p. It
// is zero outside the grid and for a histogram with zero total weight.
// PDF panics if p does not have the grid's dimension.
func (h *Hist) PDF(p []float64) float64 {
	ix, ok := h.Bin(p)
	if !ok {
		return 0
	}
	sum := h.Sum()
	if sum == 0 {
		return 0
	}
	return h.Counts[h.flat(ix)] / (sum * h.CellVolume(ix))
}
