// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"fmt"

	"github.com/austin-hoover/psdist/grid"
)

// Slices select subsets of a cloud. Like transforms, they return new
// clouds and never mutate the receiver.

// SlicePlanar keeps the points whose coordinate along the given axis
// lies in [lo, hi). It panics if the axis is out of range.
func (c Cloud) SlicePlanar(axis int, lo, hi float64) Cloud {
	if axis < 0 || axis >= c.Dim() {
		panic("cloud: slice axis out of range")
	}
	var out [][]float64
	for _, p := range c.X {
		if lo <= p[axis] && p[axis] < hi {
			out = append(out, append([]float64(nil), p...))
		}
	}
	return Cloud{X: out}
}

// SliceSphere keeps the points whose distance from the origin lies in
// the shell [rmin, rmax).
func (c Cloud) SliceSphere(rmin, rmax float64) Cloud {
	rs := c.Radii()
	var out [][]float64
	for i, p := range c.X {
		if rmin <= rs[i] && rs[i] < rmax {
			out = append(out, append([]float64(nil), p...))
		}
	}
	return Cloud{X: out}
}

// SliceEllipsoid keeps the points whose Mahalanobis radius under the
// cloud's own covariance lies in the shell [rmin, rmax).
func (c Cloud) SliceEllipsoid(rmin, rmax float64) (Cloud, error) {
	rs, err := c.EllipsoidRadii()
	if err != nil {
		return Cloud{}, err
	}
	var out [][]float64
	for i, p := range c.X {
		if rmin <= rs[i] && rs[i] < rmax {
			out = append(out, append([]float64(nil), p...))
		}
	}
	return Cloud{X: out}, nil
}

// SliceContour bins the cloud and keeps the points lying in cells whose
// count, relative to the fullest cell, falls in [lmin, lmax]. With
// lmin = 0.5 and lmax = 1, for example, it keeps the points inside the
// half-maximum contour of the binned density.
func (c Cloud) SliceContour(lmin, lmax float64, bins ...grid.Bins) (Cloud, error) {
	h, err := c.Hist(bins...)
	if err != nil {
		return Cloud{}, err
	}
	max := 0.0
	for _, w := range h.Counts {
		if w > max {
			max = w
		}
	}
	if max == 0 {
		return Cloud{}, fmt.Errorf("%w: no occupied cells", ErrEmptyDistribution)
	}
	var out [][]float64
	for _, p := range c.X {
		ix, ok := h.Bin(p)
		if !ok {
			continue
		}
		f := h.At(ix...) / max
		if lmin <= f && f <= lmax {
			out = append(out, append([]float64(nil), p...))
		}
	}
	return Cloud{X: out}, nil
}
