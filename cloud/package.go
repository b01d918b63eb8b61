// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloud provides statistics, transforms, and slices of point
// clouds in N-dimensional space, and builds grid histograms from them.
//
// Phase-space conventions apply throughout: points are rows, coordinate
// pairs (x, x'), (y, y'), ... occupy adjacent columns, and radii are
// measured from the origin, so center a cloud before radial operations
// if it is not already centered.
package cloud // import "github.com/austin-hoover/psdist/cloud"

import "math"

var nan = math.NaN()
