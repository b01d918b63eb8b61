// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrEmptyDistribution indicates an operation that needs at least
	// one point.
	ErrEmptyDistribution = errors.New("cloud: empty distribution")

	// ErrDimensionMismatch indicates an argument whose dimension does
	// not match the cloud's.
	ErrDimensionMismatch = errors.New("cloud: dimension mismatch")

	// ErrSingular indicates a degenerate covariance matrix where an
	// invertible one is required.
	ErrSingular = errors.New("cloud: singular covariance matrix")
)

// A Cloud is a set of points in a common d-dimensional space, one row
// per point. All rows must have equal length.
type Cloud struct {
	X [][]float64
}

// Len returns the number of points.
func (c Cloud) Len() int { return len(c.X) }

// Dim returns the dimension of the points, or 0 for an empty cloud.
func (c Cloud) Dim() int {
	if len(c.X) == 0 {
		return 0
	}
	return len(c.X[0])
}

// Col returns a copy of coordinate j of every point. It panics if j is
// out of range.
func (c Cloud) Col(j int) []float64 {
	if j < 0 || j >= c.Dim() {
		panic("cloud: axis out of range")
	}
	xs := make([]float64, len(c.X))
	for i, p := range c.X {
		xs[i] = p[j]
	}
	return xs
}

// Mean returns the per-axis mean, or nil for an empty cloud.
func (c Cloud) Mean() []float64 {
	if len(c.X) == 0 {
		return nil
	}
	d := c.Dim()
	mean := make([]float64, d)
	for _, p := range c.X {
		for j, x := range p {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(c.X))
	}
	return mean
}

// Std returns the per-axis sample standard deviation, or nil for an
// empty cloud.
func (c Cloud) Std() []float64 {
	if len(c.X) == 0 {
		return nil
	}
	d := c.Dim()
	std := make([]float64, d)
	for j := 0; j < d; j++ {
		std[j] = stat.StdDev(c.Col(j), nil)
	}
	return std
}

// dense copies the cloud into an n×d matrix.
func (c Cloud) dense() *mat.Dense {
	n, d := c.Len(), c.Dim()
	m := mat.NewDense(n, d, nil)
	for i, p := range c.X {
		m.SetRow(i, p)
	}
	return m
}

// Cov returns the sample covariance matrix of the cloud. It returns
// ErrEmptyDistribution if the cloud has fewer than two points.
func (c Cloud) Cov() (*mat.SymDense, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("%w: covariance needs at least two points", ErrEmptyDistribution)
	}
	var s mat.SymDense
	stat.CovarianceMatrix(&s, c.dense(), nil)
	return &s, nil
}

// Corr returns the sample correlation matrix of the cloud. It returns
// ErrEmptyDistribution if the cloud has fewer than two points.
func (c Cloud) Corr() (*mat.SymDense, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("%w: correlation needs at least two points", ErrEmptyDistribution)
	}
	var s mat.SymDense
	stat.CorrelationMatrix(&s, c.dense(), nil)
	return &s, nil
}

// Radii returns the distance of each point from the origin.
func (c Cloud) Radii() []float64 {
	rs := make([]float64, len(c.X))
	for i, p := range c.X {
		r := 0.0
		for _, x := range p {
			r += x * x
		}
		rs[i] = math.Sqrt(r)
	}
	return rs
}

// EllipsoidRadii returns the Mahalanobis distance of each point from
// the origin under the cloud's own covariance: sqrt(xᵀ Σ⁻¹ x). Points
// on the rms ellipsoid have radius 1. It returns ErrSingular if the
// covariance matrix is not positive definite.
func (c Cloud) EllipsoidRadii() ([]float64, error) {
	s, err := c.Cov()
	if err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if !ch.Factorize(s) {
		return nil, ErrSingular
	}
	d := c.Dim()
	zero := mat.NewVecDense(d, nil)
	rs := make([]float64, len(c.X))
	for i, p := range c.X {
		rs[i] = stat.Mahalanobis(mat.NewVecDense(d, p), zero, &ch)
	}
	return rs, nil
}

// EnclosingSphere returns the radius of the origin-centered sphere that
// contains the given fraction of the points.
func (c Cloud) EnclosingSphere(frac float64) (float64, error) {
	if len(c.X) == 0 {
		return 0, ErrEmptyDistribution
	}
	s := stats.Sample{Xs: c.Radii()}
	return s.Quantile(frac), nil
}

// EnclosingEllipsoid returns the scale of the rms ellipsoid that
// contains the given fraction of the points: the ellipsoid xᵀ Σ⁻¹ x = r²
// with r the returned value.
func (c Cloud) EnclosingEllipsoid(frac float64) (float64, error) {
	rs, err := c.EllipsoidRadii()
	if err != nil {
		return 0, err
	}
	s := stats.Sample{Xs: rs}
	return s.Quantile(frac), nil
}

// KDE returns a Gaussian kernel density estimate of the distribution
// along one axis, with the bandwidth from Scott's rule. It panics if
// the axis is out of range.
func (c Cloud) KDE(axis int) stats.Dist {
	return &stats.KDE{
		Kernel: stats.GaussianKernel,
		Sample: stats.Sample{Xs: c.Col(axis)},
	}
}
