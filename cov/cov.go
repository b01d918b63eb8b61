// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cov

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDimensionMismatch indicates a matrix or vector whose size
	// does not fit the requested operation.
	ErrDimensionMismatch = errors.New("cov: dimension mismatch")

	// ErrDegenerate indicates a covariance matrix that is not
	// positive definite where the operation requires it.
	ErrDegenerate = errors.New("cov: degenerate covariance matrix")
)

// Corr returns the correlation matrix of covariance matrix s: entry
// (i, j) is s_ij / √(s_ii s_jj). Axes with zero variance yield NaN
// entries, as they have no defined correlation.
func Corr(s mat.Symmetric) *mat.SymDense {
	n := s.SymmetricDim()
	sig := make([]float64, n)
	for i := range sig {
		sig[i] = math.Sqrt(s.At(i, i))
	}
	r := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r.SetSym(i, j, s.At(i, j)/(sig[i]*sig[j]))
		}
	}
	return r
}

// CovFromCorr reconstructs a covariance matrix from a correlation
// matrix and per-axis standard deviations: entry (i, j) is
// r_ij σ_i σ_j. It is the inverse of Corr.
func CovFromCorr(r mat.Symmetric, sigma []float64) (*mat.SymDense, error) {
	n := r.SymmetricDim()
	if len(sigma) != n {
		return nil, fmt.Errorf("%w: %d standard deviations for %d×%d matrix", ErrDimensionMismatch, len(sigma), n, n)
	}
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, r.At(i, j)*sigma[i]*sigma[j])
		}
	}
	return s, nil
}

// Emittance returns the rms emittance of a two-dimensional phase
// plane: the square root of the determinant of its 2×2 covariance
// matrix, which is the area of the rms ellipse divided by π. It
// returns ErrDegenerate if the determinant is not positive.
func Emittance(s mat.Symmetric) (float64, error) {
	if n := s.SymmetricDim(); n != 2 {
		return 0, fmt.Errorf("%w: need a 2×2 matrix, have %d×%d", ErrDimensionMismatch, n, n)
	}
	det := s.At(0, 0)*s.At(1, 1) - s.At(0, 1)*s.At(0, 1)
	if det <= 0 {
		return 0, fmt.Errorf("%w: determinant %v", ErrDegenerate, det)
	}
	return math.Sqrt(det), nil
}

// Emittances returns the rms emittance of each phase plane of a 2n×2n
// covariance matrix, taking the planes to be the (2i, 2i+1) diagonal
// blocks.
func Emittances(s mat.Symmetric) ([]float64, error) {
	n := s.SymmetricDim()
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: odd dimension %d", ErrDimensionMismatch, n)
	}
	eps := make([]float64, n/2)
	for i := range eps {
		e, err := Emittance(block(s, 2*i))
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		eps[i] = e
	}
	return eps, nil
}

// block extracts the 2×2 diagonal block of s starting at row i.
func block(s mat.Symmetric, i int) *mat.SymDense {
	b := mat.NewSymDense(2, nil)
	b.SetSym(0, 0, s.At(i, i))
	b.SetSym(0, 1, s.At(i, i+1))
	b.SetSym(1, 1, s.At(i+1, i+1))
	return b
}

// IntrinsicEmittances returns the two mode emittances of a 4×4
// covariance matrix,
//
//	eps = ½ √( -tr (ΣU)² ± √( tr²((ΣU)²) - 16 det Σ ) )
//
// with U the unit symplectic matrix. The intrinsic emittances are
// invariant under coupled symplectic transforms, where the apparent
// per-plane emittances are not; for an uncoupled matrix the two sets
// coincide. It returns ErrDegenerate if the matrix does not describe
// a nondegenerate distribution.
//
// Lebedev, V. A.; Bogacz, S. A. (2010). "Betatron Motion with
// Coupling of Horizontal and Vertical Degrees of Freedom". Journal of
// Instrumentation. 5: P10010.
func IntrinsicEmittances(s mat.Symmetric) (eps1, eps2 float64, err error) {
	if n := s.SymmetricDim(); n != 4 {
		return 0, 0, fmt.Errorf("%w: need a 4×4 matrix, have %d×%d", ErrDimensionMismatch, n, n)
	}
	for i := 0; i < 4; i++ {
		if s.At(i, i) <= 0 {
			return 0, 0, fmt.Errorf("%w: non-positive variance %v", ErrDegenerate, s.At(i, i))
		}
	}
	det := mat.Det(s)
	if det <= 0 {
		return 0, 0, fmt.Errorf("%w: determinant %v", ErrDegenerate, det)
	}
	var su, su2 mat.Dense
	su.Mul(s, unitSymplectic(4))
	su2.Mul(&su, &su)
	tr := mat.Trace(&su2)
	disc := tr*tr - 16*det
	if disc < 0 || tr > 0 {
		return 0, 0, fmt.Errorf("%w: complex mode emittances", ErrDegenerate)
	}
	r := math.Sqrt(disc)
	eps1 = 0.5 * math.Sqrt(-tr+r)
	eps2 = 0.5 * math.Sqrt(-tr-r)
	return eps1, eps2, nil
}

// unitSymplectic returns the d×d unit symplectic matrix, the block
// diagonal of [[0, 1], [-1, 0]].
func unitSymplectic(d int) *mat.Dense {
	u := mat.NewDense(d, d, nil)
	for i := 0; i < d; i += 2 {
		u.Set(i, i+1, 1)
		u.Set(i+1, i, -1)
	}
	return u
}

// RMSEllipseDims returns the orientation of the rms ellipse of a 2×2
// covariance matrix: the tilt angle below the first axis in radians
// and the two semi-axis widths.
func RMSEllipseDims(s mat.Symmetric) (angle, cx, cy float64, err error) {
	if n := s.SymmetricDim(); n != 2 {
		return 0, 0, 0, fmt.Errorf("%w: need a 2×2 matrix, have %d×%d", ErrDimensionMismatch, n, n)
	}
	sxx, syy, sxy := s.At(0, 0), s.At(1, 1), s.At(0, 1)
	angle = -0.5 * math.Atan2(2*sxy, sxx-syy)
	sin, cos := math.Sin(angle), math.Cos(angle)
	cx = math.Sqrt(math.Abs(sxx*cos*cos + syy*sin*sin - 2*sxy*sin*cos))
	cy = math.Sqrt(math.Abs(sxx*sin*sin + syy*cos*cos + 2*sxy*sin*cos))
	return angle, cx, cy, nil
}
