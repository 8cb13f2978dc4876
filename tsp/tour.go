// Package tsp — tour utilities.
//
// Helpers that operate purely on tour structure (index sequences) without
// touching coordinates:
//   - ValidateTour: permutation + pinned boundary invariants.
//   - RespectsOrder: fixed-order invariant check against input order.
//   - CopyTour: independent copy of a tour slice.
//   - DebugString: compact printable representation for tests/debug.
//   - reverseInPlace / relocateBlock: primitives used by the moves.
package tsp

import (
	"fmt"
	"strings"
)

// ValidateTour enforces the open-path invariants for n visitables:
//
//	len(tour) == n, tour[0] == 0, tour[n-1] == n-1,
//	each index in [0..n-1] appears exactly once.
//
// Returns ErrInvalidInput-wrapped sentinels so callers can use errors.Is.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 2 {
		return invalid("tour", -1, ErrTooFewPoints)
	}
	if len(tour) != n {
		return invalid("tour", -1, fmt.Errorf("length %d, want %d", len(tour), n))
	}
	if tour[0] != 0 || tour[n-1] != n-1 {
		return invalid("tour", -1, fmt.Errorf("boundaries %d..%d, want 0..%d", tour[0], tour[n-1], n-1))
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return invalid("tour", i, fmt.Errorf("index %d out of range", v))
		}
		if seen[v] {
			return invalid("tour", i, fmt.Errorf("index %d repeated", v))
		}
		seen[v] = true
	}

	return nil
}

// RespectsOrder reports whether every pair of fixed indices keeps its input
// relative order in tour. Input order is index order, so the fixed members
// must appear in increasing index order. Indices absent from tour are ignored.
//
// Complexity: O(n + len(fixed)).
func RespectsOrder(tour []int, fixed []int) bool {
	if len(fixed) < 2 {
		return true
	}
	member := make(map[int]struct{}, len(fixed))
	for _, f := range fixed {
		member[f] = struct{}{}
	}

	last := -1
	for _, v := range tour {
		if _, ok := member[v]; !ok {
			continue
		}
		if v < last {
			return false
		}
		last = v
	}

	return true
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation, e.g. "[0 | 3 1 2 | 4]"
// where the bars separate the pinned boundaries from the movable interior.
//
// Complexity: O(n).
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	if len(tour) == 1 {
		return fmt.Sprintf("[%d]", tour[0])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d |", tour[0])
	for _, v := range tour[1 : len(tour)-1] {
		fmt.Fprintf(&sb, " %d", v)
	}
	fmt.Fprintf(&sb, " | %d]", tour[len(tour)-1])

	return sb.String()
}

// reverseInPlace reverses the inclusive segment tour[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// relocateBlock moves the inclusive block tour[i..j] into the gap after
// position g (g < i or g > j), keeping the block's orientation.
// scratch must have capacity ≥ j-i+1.
//
// Complexity: O(|g-i| + block) time, no allocations.
func relocateBlock(tour []int, i, j, g int, scratch []int) {
	s := j - i + 1
	block := scratch[:s]
	copy(block, tour[i:j+1])
	if g < i {
		// Shift tour[g+1..i-1] right by s, then drop the block at g+1.
		copy(tour[g+1+s:j+1], tour[g+1:i])
		copy(tour[g+1:g+1+s], block)
		return
	}
	// Shift tour[j+1..g] left by s, then drop the block ending at g.
	copy(tour[i:g-s+1], tour[j+1:g+1])
	copy(tour[g-s+1:g+1], block)
}
