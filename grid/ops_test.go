// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"testing"
)

// hist2x2 returns a 2x2 histogram with counts {{1,2},{3,4}}.
func hist2x2(t *testing.T) *Hist {
	t.Helper()
	h, err := New([]float64{0, 1, 2}, []float64{0, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	copy(h.Counts, []float64{1, 2, 3, 4})
	return h
}

func TestProject(t *testing.T) {
	h := hist2x2(t)

	p := h.Project(0)
	if !aeqs([]float64{3, 7}, p.Counts) {
		t.Errorf("Project(0) = %v, want [3 7]", p.Counts)
	}
	p = h.Project(1)
	if !aeqs([]float64{4, 6}, p.Counts) {
		t.Errorf("Project(1) = %v, want [4 6]", p.Counts)
	}

	// Axis order permutes the result.
	p = h.Project(1, 0)
	if !aeqs([]float64{1, 3, 2, 4}, p.Counts) {
		t.Errorf("Project(1, 0) = %v, want [1 3 2 4]", p.Counts)
	}

	// Projection preserves the total weight.
	if got := h.Project(0).Sum(); !aeq(h.Sum(), got) {
		t.Errorf("projected Sum = %v, want %v", got, h.Sum())
	}
}

func TestProjectPanics(t *testing.T) {
	h := hist2x2(t)
	for _, axes := range [][]int{{2}, {-1}, {0, 0}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Project(%v) did not panic", axes)
				}
			}()
			h.Project(axes...)
		}()
	}
}

func TestSliceIdx(t *testing.T) {
	h := hist2x2(t)

	s := h.SliceIdx(0, 1, 2)
	if !aeqs([]float64{3, 4}, s.Counts) {
		t.Errorf("SliceIdx(0, 1, 2) = %v, want [3 4]", s.Counts)
	}
	if want, got := []float64{1, 2}, s.Edges[0]; !aeqs(want, got) {
		t.Errorf("sliced edges = %v, want %v", got, want)
	}

	s = h.SliceIdx(1, 0, 1)
	if !aeqs([]float64{1, 3}, s.Counts) {
		t.Errorf("SliceIdx(1, 0, 1) = %v, want [1 3]", s.Counts)
	}
}

func TestDensity(t *testing.T) {
	h, err := New([]float64{0, 1, 3})
	if err != nil {
		t.Fatal(err)
	}
	copy(h.Counts, []float64{1, 3})

	d := h.Density()
	if !aeqs([]float64{0.25, 0.375}, d.Counts) {
		t.Errorf("Density = %v, want [0.25 0.375]", d.Counts)
	}

	// The density integrates to one over the grid.
	integral := 0.0
	for i, v := range d.Counts {
		integral += v * (h.Edges[0][i+1] - h.Edges[0][i])
	}
	if !aeq(1, integral) {
		t.Errorf("integral = %v, want 1", integral)
	}

	// Zero weight normalizes to zeros, not NaNs.
	z, _ := New([]float64{0, 1, 2})
	for _, v := range z.Density().Counts {
		if v != 0 {
			t.Errorf("zero-weight density = %v, want zeros", z.Density().Counts)
		}
	}
}

func TestPDF(t *testing.T) {
	h, _ := New([]float64{0, 1, 3})
	copy(h.Counts, []float64{1, 3})
	testFunc(t, "PDF", func(x float64) float64 { return h.PDF([]float64{x}) }, map[float64]float64{
		-1:  0,
		0:   0.25,
		0.5: 0.25,
		2:   0.375,
		3:   0.375, // upper edge is closed
		3.5: 0,
	})
	if got := h.PDF([]float64{math.NaN()}); got != 0 {
		t.Errorf("PDF(NaN) = %v, want 0", got)
	}
}
