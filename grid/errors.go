// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "errors"

var (
	// ErrInvalidEdges indicates a bin-edge sequence with fewer than two
	// edges, a non-increasing step, or a non-finite value.
	ErrInvalidEdges = errors.New("grid: invalid bin edges")

	// ErrDimensionMismatch indicates that a point, index, or bin
	// specification does not match the dimension of the grid.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrEmptyDistribution indicates a histogram with zero total weight
	// where a probability distribution is required.
	ErrEmptyDistribution = errors.New("grid: empty distribution")

	// ErrInvalidHistogram indicates bin counts that cannot be interpreted
	// as weights: negative, NaN, or infinite values, or indices outside
	// the grid.
	ErrInvalidHistogram = errors.New("grid: invalid histogram")
)
