// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"errors"
	"math"
	"testing"
)

func TestNewErrors(t *testing.T) {
	check := func(edges ...[]float64) {
		t.Helper()
		if _, err := New(edges...); !errors.Is(err, ErrInvalidEdges) {
			t.Errorf("for edges %v, want ErrInvalidEdges, got %v", edges, err)
		}
	}
	check()
	check([]float64{})
	check([]float64{1})
	check([]float64{1, 1})
	check([]float64{2, 1})
	check([]float64{0, nan})
	check([]float64{0, inf})
	check([]float64{0, 1}, []float64{1, 0})
}

func TestDigitize(t *testing.T) {
	e := []float64{0, 1, 2, 3}
	for x, want := range map[float64]int{
		0: 0, 0.5: 0, 1: 1, 1.999: 1, 2: 2, 2.5: 2, 3: 2,
	} {
		i, ok := digitize(e, x)
		if !ok || i != want {
			t.Errorf("digitize(%v) = %v, %v, want %v, true", x, i, ok, want)
		}
	}
	for _, x := range []float64{-0.001, 3.001, nan, inf, -inf} {
		if i, ok := digitize(e, x); ok {
			t.Errorf("digitize(%v) = %v, true, want out of range", x, i)
		}
	}
}

func TestFill(t *testing.T) {
	h, err := New([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	pts := [][]float64{
		{0.5, 0.5},
		{1.5, 0.5},
		{3, 3},    // upper corner: final bins are closed
		{3.5, 1},  // out of range
		{nan, 1},  // dropped
		{1, -0.5}, // out of range
	}
	n, err := h.Fill(pts)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("binned %d points, want 3", n)
	}
	if got := h.Sum(); got != 3 {
		t.Errorf("Sum = %v, want 3", got)
	}
	for _, c := range []struct {
		ix   []int
		want float64
	}{
		{[]int{0, 0}, 1},
		{[]int{1, 0}, 1},
		{[]int{2, 2}, 1},
		{[]int{2, 0}, 0},
	} {
		if got := h.At(c.ix...); got != c.want {
			t.Errorf("At(%v) = %v, want %v", c.ix, got, c.want)
		}
	}
}

func TestFillDimensionMismatch(t *testing.T) {
	h, _ := New([]float64{0, 1}, []float64{0, 1})
	if _, err := h.Fill([][]float64{{0.5, 0.5, 0.5}}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestFillEmpty(t *testing.T) {
	h, _ := New([]float64{0, 1, 2})
	n, err := h.Fill(nil)
	if err != nil || n != 0 {
		t.Fatalf("Fill(nil) = %v, %v", n, err)
	}
	if got := h.Sum(); got != 0 {
		t.Errorf("Sum = %v, want 0", got)
	}
}

func TestBin(t *testing.T) {
	h, _ := New([]float64{0, 1, 2}, []float64{0, 10, 20})
	ix, ok := h.Bin([]float64{1.5, 10})
	if !ok || ix[0] != 1 || ix[1] != 1 {
		t.Errorf("Bin = %v, %v, want [1 1], true", ix, ok)
	}
	if _, ok := h.Bin([]float64{1.5, 25}); ok {
		t.Errorf("Bin out of range, want false")
	}
}

func TestGeometry(t *testing.T) {
	h, _ := New([]float64{0, 1, 3}, []float64{-1, 1})
	if want, got := []float64{0.5, 2}, h.Centers()[0]; !aeqs(want, got) {
		t.Errorf("Centers[0] = %v, want %v", got, want)
	}
	if want, got := []float64{0}, h.Centers()[1]; !aeqs(want, got) {
		t.Errorf("Centers[1] = %v, want %v", got, want)
	}
	if want, got := []float64{1, 2}, h.Widths()[0]; !aeqs(want, got) {
		t.Errorf("Widths[0] = %v, want %v", got, want)
	}
	if want, got := 4.0, h.CellVolume([]int{1, 0}); !aeq(want, got) {
		t.Errorf("CellVolume = %v, want %v", got, want)
	}
	if want, got := 2, h.Size(); want != got {
		t.Errorf("Size = %v, want %v", got, want)
	}
}

func TestHistogramConservation(t *testing.T) {
	pts := [][]float64{
		{0.1, 0.2}, {0.3, 0.4}, {0.5, 0.6}, {0.7, 0.8}, {2, 2},
	}
	h, err := Histogram(pts, Span{N: 4, Lo: 0, Hi: 1}, Span{N: 4, Lo: 0, Hi: 1})
	if err != nil {
		t.Fatal(err)
	}
	// (2,2) is out of range and dropped silently.
	if got := h.Sum(); got != 4 {
		t.Errorf("Sum = %v, want 4", got)
	}
}

func TestHistogramBroadcast(t *testing.T) {
	pts := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	h, err := Histogram(pts, Count(4))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := []int{4, 4}, h.Shape(); got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Shape = %v, want %v", got, want)
	}
	if got := h.Sum(); got != 3 {
		t.Errorf("Sum = %v, want 3", got)
	}

	// Default is ten bins per axis.
	h, err = Histogram(pts)
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Shape(); got[0] != 10 || got[1] != 10 {
		t.Errorf("default Shape = %v, want [10 10]", got)
	}

	if _, err := Histogram(pts, Count(2), Count(2), Count(2)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("want ErrDimensionMismatch, got %v", err)
	}
}

func TestHistogramEmptyInput(t *testing.T) {
	h, err := Histogram(nil, Count(4))
	if err != nil {
		t.Fatal(err)
	}
	if h.Dim() != 1 || h.Shape()[0] != 4 || h.Sum() != 0 {
		t.Errorf("empty input: dim %d shape %v sum %v", h.Dim(), h.Shape(), h.Sum())
	}
}

func TestCountConstantColumn(t *testing.T) {
	// A constant column has zero range; Count pads it by 0.5 each side.
	pts := [][]float64{{1}, {1}, {1}}
	h, err := Histogram(pts, Count(2))
	if err != nil {
		t.Fatal(err)
	}
	if want, got := []float64{0.5, 1, 1.5}, h.Edges[0]; !aeqs(want, got) {
		t.Errorf("Edges[0] = %v, want %v", got, want)
	}
	if got := h.Sum(); got != 3 {
		t.Errorf("Sum = %v, want 3", got)
	}
}

func TestSpanErrors(t *testing.T) {
	if _, err := Histogram([][]float64{{0}}, Span{N: 0, Lo: 0, Hi: 1}); !errors.Is(err, ErrInvalidEdges) {
		t.Errorf("want ErrInvalidEdges, got %v", err)
	}
	if _, err := Histogram([][]float64{{0}}, Span{N: 3, Lo: 1, Hi: 1}); !errors.Is(err, ErrInvalidEdges) {
		t.Errorf("want ErrInvalidEdges, got %v", err)
	}
	if _, err := Histogram([][]float64{{0}}, Count(0)); !errors.Is(err, ErrInvalidEdges) {
		t.Errorf("want ErrInvalidEdges, got %v", err)
	}
}

func TestClone(t *testing.T) {
	h, _ := New([]float64{0, 1, 2})
	h.Counts[0] = 5
	g := h.Clone()
	g.Counts[0] = 7
	g.Edges[0][0] = -1
	if h.Counts[0] != 5 || h.Edges[0][0] != 0 {
		t.Errorf("Clone shares storage with original")
	}
}

func TestUpperCorner(t *testing.T) {
	// The point exactly on the upper corner of the grid lands in the
	// final bin of every axis.
	h, _ := New([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 3})
	if _, err := h.Fill([][]float64{{3, 3}}); err != nil {
		t.Fatal(err)
	}
	if got := h.At(2, 2); got != 1 {
		t.Errorf("At(2, 2) = %v, want 1", got)
	}
	if got := h.Sum(); got != 1 {
		t.Errorf("Sum = %v, want 1", got)
	}
}

func TestBinCenterLookup(t *testing.T) {
	h, _ := New([]float64{0, 1, 2, 3})
	testFunc(t, "bin", func(x float64) float64 {
		ix, ok := h.Bin([]float64{x})
		if !ok {
			return -1
		}
		return float64(ix[0])
	}, map[float64]float64{
		-1: -1, 0: 0, 0.5: 0, 1.5: 1, 2.5: 2, 3: 2, 4: -1,
		math.Inf(1): -1,
	})
}
