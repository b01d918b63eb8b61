// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Transforms return new clouds; the receiver is never mutated.

// Shift translates every point by v.
func (c Cloud) Shift(v []float64) (Cloud, error) {
	if len(v) != c.Dim() {
		return Cloud{}, fmt.Errorf("%w: shift has dimension %d, cloud has %d", ErrDimensionMismatch, len(v), c.Dim())
	}
	out := make([][]float64, len(c.X))
	for i, p := range c.X {
		q := make([]float64, len(p))
		for j, x := range p {
			q[j] = x + v[j]
		}
		out[i] = q
	}
	return Cloud{X: out}, nil
}

// Scale multiplies coordinate j of every point by v[j].
func (c Cloud) Scale(v []float64) (Cloud, error) {
	if len(v) != c.Dim() {
		return Cloud{}, fmt.Errorf("%w: scale has dimension %d, cloud has %d", ErrDimensionMismatch, len(v), c.Dim())
	}
	out := make([][]float64, len(c.X))
	for i, p := range c.X {
		q := make([]float64, len(p))
		for j, x := range p {
			q[j] = x * v[j]
		}
		out[i] = q
	}
	return Cloud{X: out}, nil
}

// Transform applies the linear map m to every point: each row becomes
// m·x. The matrix may be rectangular; an r×d matrix maps a
// d-dimensional cloud to an r-dimensional one.
func (c Cloud) Transform(m mat.Matrix) (Cloud, error) {
	r, d := m.Dims()
	if d != c.Dim() {
		return Cloud{}, fmt.Errorf("%w: matrix is %dx%d, cloud has dimension %d", ErrDimensionMismatch, r, d, c.Dim())
	}
	out := make([][]float64, len(c.X))
	for i, p := range c.X {
		q := make([]float64, r)
		for a := 0; a < r; a++ {
			sum := 0.0
			for j, x := range p {
				sum += m.At(a, j) * x
			}
			q[a] = sum
		}
		out[i] = q
	}
	return Cloud{X: out}, nil
}

// Project keeps the listed coordinates of every point, in the listed
// order. It panics if an axis is out of range.
func (c Cloud) Project(axes ...int) Cloud {
	d := c.Dim()
	for _, a := range axes {
		if a < 0 || a >= d {
			panic("cloud: projection axis out of range")
		}
	}
	out := make([][]float64, len(c.X))
	for i, p := range c.X {
		q := make([]float64, len(axes))
		for k, a := range axes {
			q[k] = p[a]
		}
		out[i] = q
	}
	return Cloud{X: out}
}

// Decorrelate shuffles the (2j, 2j+1) coordinate pairs of each plane
// with an independent random permutation of the points. Every plane
// keeps its exact set of pairs, so per-plane moments and emittances
// are unchanged; only the correlations between planes are destroyed.
// It returns ErrDimensionMismatch if the dimension is odd.
func (c Cloud) Decorrelate(src rand.Source) (Cloud, error) {
	d := c.Dim()
	if d%2 != 0 {
		return Cloud{}, fmt.Errorf("%w: odd dimension %d", ErrDimensionMismatch, d)
	}
	rng := rand.New(src)
	out := make([][]float64, len(c.X))
	for i := range out {
		out[i] = make([]float64, d)
	}
	for j := 0; j < d; j += 2 {
		for i, k := range rng.Perm(len(c.X)) {
			out[i][j] = c.X[k][j]
			out[i][j+1] = c.X[k][j+1]
		}
	}
	return Cloud{X: out}, nil
}

// Whiten centers the cloud, rotates it into the eigenbasis of its
// covariance matrix, and scales each principal axis to unit variance,
// so the result has identity covariance. It returns ErrSingular if
// the covariance matrix is degenerate.
func (c Cloud) Whiten() (Cloud, error) {
	rot, vals, err := c.eigen()
	if err != nil {
		return Cloud{}, err
	}
	out, err := c.rotate(rot)
	if err != nil {
		return Cloud{}, err
	}
	for j, v := range vals {
		if v <= 0 {
			return Cloud{}, fmt.Errorf("%w: eigenvalue %d is %g", ErrSingular, j, v)
		}
		s := 1 / math.Sqrt(v)
		for _, p := range out.X {
			p[j] *= s
		}
	}
	return out, nil
}

// eigen returns the eigenvectors (as rows of a transform) and
// eigenvalues of the cloud's covariance matrix.
func (c Cloud) eigen() (mat.Matrix, []float64, error) {
	s, err := c.Cov()
	if err != nil {
		return nil, nil, err
	}
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, ErrSingular
	}
	var v mat.Dense
	es.VectorsTo(&v)
	return v.T(), es.Values(nil), nil
}

// rotate centers the cloud and applies rot.
func (c Cloud) rotate(rot mat.Matrix) (Cloud, error) {
	mean := c.Mean()
	for j := range mean {
		mean[j] = -mean[j]
	}
	centered, err := c.Shift(mean)
	if err != nil {
		return Cloud{}, err
	}
	return centered.Transform(rot)
}

// Downsample returns n points chosen uniformly at random without
// replacement, in their original order. If n is at least the size of
// the cloud, the whole cloud is copied. Negative n panics.
func (c Cloud) Downsample(n int, src rand.Source) Cloud {
	if n < 0 {
		panic("cloud: negative sample count")
	}
	if n > len(c.X) {
		n = len(c.X)
	}
	perm := rand.New(src).Perm(len(c.X))[:n]
	sort.Ints(perm)
	out := make([][]float64, n)
	for i, k := range perm {
		out[i] = append([]float64(nil), c.X[k]...)
	}
	return Cloud{X: out}
}
