// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cov analyzes covariance matrices of phase-space
// distributions.
//
// The conventions come from accelerator physics: a 2n-dimensional
// phase space interleaves positions and momenta {x, x', y, y', ...},
// so a 2n×2n covariance matrix splits into n two-dimensional planes,
// the (2i, 2i+1) diagonal blocks. Each plane carries an rms emittance
// (the area of its rms ellipse over π) and a set of Courant-Snyder
// parameters describing the ellipse's shape and tilt.
//
// Courant, E. D.; Snyder, H. S. (1958). "Theory of the
// Alternating-Gradient Synchrotron". Annals of Physics. 3 (1): 1–48.
package cov // import "github.com/austin-hoover/psdist/cov"
