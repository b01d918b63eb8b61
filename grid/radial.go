// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// RadialProfile returns the mean probability density in each spherical
// shell around center. Shell i collects the cells whose center's
// distance from center lies in [redges[i], redges[i+1]), with the final
// shell closed, matching the binning rule. Shells containing no cell
// centers are NaN.
//
// RadialProfile returns ErrInvalidEdges for an invalid shell-edge
// sequence and panics if center does not have the grid's dimension.
func (h *Hist) RadialProfile(center []float64, redges []float64) ([]float64, error) {
	if len(center) != len(h.Edges) {
		panic("grid: center has wrong dimension")
	}
	if err := validEdges(redges); err != nil {
		return nil, err
	}
	dens := h.Density()
	sums := make([]float64, len(redges)-1)
	n := make([]int, len(redges)-1)
	centers := h.Centers()
	ix := make([]int, len(h.Edges))
	for flat, v := range dens.Counts {
		h.unflatten(flat, ix)
		r := 0.0
		for j, i := range ix {
			dr := centers[j][i] - center[j]
			r += dr * dr
		}
		i, ok := digitize(redges, math.Sqrt(r))
		if !ok {
			continue
		}
		sums[i] += v
		n[i]++
	}
	for i := range sums {
		if n[i] == 0 {
			sums[i] = nan
		} else {
			sums[i] /= float64(n[i])
		}
	}
	return sums, nil
}
