// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid provides histograms on rectilinear N-dimensional grids.
//
// A histogram is a set of bin counts over a grid defined by per-axis bin
// edges. Histograms come in a dense form (Hist), which stores every cell,
// and a sparse form (SparseHist), which stores only nonzero cells. Both
// forms are built by digitizing point clouds, and both can be resampled
// back into point clouds by inverse transform sampling.
package grid // import "github.com/austin-hoover/psdist/grid"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
