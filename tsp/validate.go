// Package tsp - construction-time validation.
//
// All user-facing validation happens here, once, before an Optimizer exists.
// After construction nothing in the package returns an error.
//
// Design principles:
//   - Deterministic, side-effect free (except Options normalization).
//   - Every failure is an *InvalidInputError naming the argument and position.
package tsp

import "math"

// validateOptions rejects malformed knobs and fills zero values with defaults.
//
// Complexity: O(1).
func validateOptions(opts *Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return invalid("options", -1, ErrBadOptions)
	}
	if opts.MaxSegment < 0 {
		return invalid("options", -1, ErrBadOptions)
	}
	if opts.MaxSegment == 0 {
		opts.MaxSegment = DefaultMaxSegment
	}

	return nil
}

// validatePoints requires n ≥ 2 and finite coordinates everywhere.
//
// Complexity: O(n).
func validatePoints(points []Visitable) error {
	if len(points) < 2 {
		return invalid("points", -1, ErrTooFewPoints)
	}
	for i, p := range points {
		if !finitePoint(p.Entry) || !finitePoint(p.Exit) {
			return invalid("points", i, ErrNonFinitePoint)
		}
	}

	return nil
}

// fixedMask turns the fixed-order index list into a per-visitable flag slice.
// Duplicates collapse; the synthetic boundaries are pinned anyway and are
// therefore left unmarked.
//
// Complexity: O(n + len(fixed)).
func fixedMask(n int, fixed []int) ([]bool, error) {
	mask := make([]bool, n)
	for k, f := range fixed {
		if f < 0 || f >= n {
			return nil, invalid("fixed", k, ErrFixedIndexOutOfRange)
		}
		if f == 0 || f == n-1 {
			continue
		}
		mask[f] = true
	}

	return mask, nil
}
