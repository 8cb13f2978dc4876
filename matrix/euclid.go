// SPDX-License-Identifier: MIT

// Package matrix - planar distance materialization.

package matrix

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// NewEuclidean returns the n×n matrix of planar distances between pts,
// d[i][j] = |pts[i] − pts[j]|. The result is symmetric with a zero diagonal.
//
// Errors:
//   - ErrInvalidDimensions when pts is empty,
//   - ErrNaNInf when any coordinate is NaN or ±Inf.
//
// Complexity: Time O(n²), Space O(n²).
func NewEuclidean(pts []orb.Point) (*Dense, error) {
	n := len(pts)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	var i, j int
	for i = 0; i < n; i++ {
		if !finite(pts[i]) {
			return nil, denseErrorf(ctxSet, i, i, ErrNaNInf)
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Fill the upper triangle and mirror it; the diagonal stays zero.
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = planar.Distance(pts[i], pts[j])
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

func finite(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) &&
		!math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}
