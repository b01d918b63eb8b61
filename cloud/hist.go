// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"fmt"
	"math"

	"github.com/austin-hoover/psdist/grid"
)

// Hist bins the cloud on a grid described by the bin specifications;
// see grid.Histogram for the specification rules.
func (c Cloud) Hist(bins ...grid.Bins) (*grid.Hist, error) {
	return grid.Histogram(c.X, bins...)
}

// SparseHist bins the cloud without materializing the dense cell array;
// see grid.SparseHistogram.
func (c Cloud) SparseHist(bins ...grid.Bins) (*grid.SparseHist, error) {
	return grid.SparseHistogram(c.X, bins...)
}

// RadialDensity returns a 1-D histogram of density over spherical
// shells around the origin: the count of points in each shell divided
// by the shell's volume. The result's Counts are densities, so its Sum
// is not the number of points.
func (c Cloud) RadialDensity(redges []float64) (*grid.Hist, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("%w: no points to bin", ErrEmptyDistribution)
	}
	if len(redges) > 0 && redges[0] < 0 {
		return nil, fmt.Errorf("%w: negative shell edge", grid.ErrInvalidEdges)
	}
	rs := c.Radii()
	pts := make([][]float64, len(rs))
	for i, r := range rs {
		pts[i] = []float64{r}
	}
	h, err := grid.Histogram(pts, grid.Edges(redges))
	if err != nil {
		return nil, err
	}
	d := c.Dim()
	for i := range h.Counts {
		v := ballVolume(d, redges[i+1]) - ballVolume(d, redges[i])
		h.Counts[i] /= v
	}
	return h, nil
}

// ballVolume returns the volume of the d-ball of radius r.
func ballVolume(d int, r float64) float64 {
	k := float64(d)
	return math.Pow(math.Pi, k/2) * math.Pow(r, k) / math.Gamma(k/2+1)
}
