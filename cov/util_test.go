// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cov

import "math"

func aeq(expect, got float64) bool {
	if math.IsNaN(expect) && math.IsNaN(got) {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

func aeqs(expect, got []float64) bool {
	if len(expect) != len(got) {
		return false
	}
	for i := range expect {
		if !aeq(expect[i], got[i]) {
			return false
		}
	}
	return true
}
