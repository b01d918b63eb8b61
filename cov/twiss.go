// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Twiss holds the Courant-Snyder parameters of one phase plane. They
// describe the rms ellipse of the plane's 2×2 covariance matrix Σ:
//
//	alpha = -Σ01/eps, beta = Σ00/eps, eps = √det Σ
//
// Beta sets the ellipse's aspect ratio, alpha its tilt, and eps its
// area over π.
type Twiss struct {
	Alpha float64
	Beta  float64
	Eps   float64
}

// TwissOf returns the Courant-Snyder parameters of a 2×2 covariance
// matrix. It returns ErrDegenerate if the matrix is not positive
// definite.
func TwissOf(s mat.Symmetric) (Twiss, error) {
	eps, err := Emittance(s)
	if err != nil {
		return Twiss{}, err
	}
	if s.At(0, 0) <= 0 {
		return Twiss{}, fmt.Errorf("%w: non-positive variance %v", ErrDegenerate, s.At(0, 0))
	}
	return Twiss{
		Alpha: -s.At(0, 1) / eps,
		Beta:  s.At(0, 0) / eps,
		Eps:   eps,
	}, nil
}

// Gamma returns the third Courant-Snyder parameter, (1 + alpha²)/beta.
// The three satisfy beta·gamma - alpha² = 1.
func (t Twiss) Gamma() float64 {
	return (1 + t.Alpha*t.Alpha) / t.Beta
}

// Matrix reconstructs the covariance matrix described by t,
//
//	eps · ⎡ beta   -alpha ⎤
//	      ⎣ -alpha  gamma ⎦
//
// It inverts TwissOf.
func (t Twiss) Matrix() *mat.SymDense {
	s := mat.NewSymDense(2, nil)
	s.SetSym(0, 0, t.Eps*t.Beta)
	s.SetSym(0, 1, -t.Eps*t.Alpha)
	s.SetSym(1, 1, t.Eps*t.Gamma())
	return s
}

// Norm returns the matrix that maps the plane to normalized
// coordinates,
//
//	⎡ 1/√beta        0 ⎤
//	⎣ alpha/√beta  √beta ⎦
//
// In normalized coordinates the rms ellipse is a circle: the
// covariance matrix becomes eps·I, with alpha = 0 and beta = 1.
func (t Twiss) Norm() *mat.Dense {
	rb := math.Sqrt(t.Beta)
	return mat.NewDense(2, 2, []float64{
		1 / rb, 0,
		t.Alpha / rb, rb,
	})
}

// NormMatrix returns the block-diagonal 2n×2n matrix that maps every
// phase plane of covariance matrix s to normalized coordinates. The
// (2i, 2i+1) diagonal blocks are the per-plane Norm matrices; cross-
// plane correlations are left alone.
func NormMatrix(s mat.Symmetric) (*mat.Dense, error) {
	n := s.SymmetricDim()
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: odd dimension %d", ErrDimensionMismatch, n)
	}
	v := mat.NewDense(n, n, nil)
	for i := 0; i < n; i += 2 {
		t, err := TwissOf(block(s, i))
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i/2, err)
		}
		b := t.Norm()
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				v.Set(i+r, i+c, b.At(r, c))
			}
		}
	}
	return v, nil
}
