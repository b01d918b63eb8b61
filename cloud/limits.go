// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LimitsOptions controls Limits. The zero value gives the plain
// per-axis data range.
type LimitsOptions struct {
	// RMS, if positive, replaces the data range of each axis with
	// mean ± RMS standard deviations.
	RMS float64

	// Pad expands each interval by Pad times its half-width on both
	// sides.
	Pad float64

	// ZeroCenter makes each interval symmetric about zero.
	ZeroCenter bool

	// Share lists groups of axes that share limits: each axis in a
	// group gets the hull of the group's intervals. Use it to give
	// position axes (or momentum axes) a common scale.
	Share [][]int
}

// Limits returns a bounding interval for each axis of the cloud.
func (c Cloud) Limits(opt LimitsOptions) ([][2]float64, error) {
	if len(c.X) == 0 {
		return nil, fmt.Errorf("%w: no points to bound", ErrEmptyDistribution)
	}
	d := c.Dim()
	lims := make([][2]float64, d)
	for j := 0; j < d; j++ {
		xs := c.Col(j)
		var lo, hi float64
		if opt.RMS > 0 {
			m := stat.Mean(xs, nil)
			s := stat.StdDev(xs, nil)
			lo, hi = m-opt.RMS*s, m+opt.RMS*s
		} else {
			lo, hi = floats.Min(xs), floats.Max(xs)
		}
		if opt.Pad != 0 {
			h := 0.5 * (hi - lo)
			lo -= opt.Pad * h
			hi += opt.Pad * h
		}
		if opt.ZeroCenter {
			a := math.Max(math.Abs(lo), math.Abs(hi))
			lo, hi = -a, a
		}
		lims[j] = [2]float64{lo, hi}
	}
	for _, group := range opt.Share {
		lo, hi := nan, nan
		for _, j := range group {
			if j < 0 || j >= d {
				return nil, fmt.Errorf("%w: shared axis %d for dimension %d", ErrDimensionMismatch, j, d)
			}
			if math.IsNaN(lo) || lims[j][0] < lo {
				lo = lims[j][0]
			}
			if math.IsNaN(hi) || lims[j][1] > hi {
				hi = lims[j][1]
			}
		}
		for _, j := range group {
			lims[j] = [2]float64{lo, hi}
		}
	}
	return lims, nil
}
