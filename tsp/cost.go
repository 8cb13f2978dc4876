// Package tsp — distance model and cost utilities.
//
// Every visitable v contributes two endpoint slots to a 2N×2N planar distance
// table: slot 2v is its supplied entry, slot 2v+1 its supplied exit. A flipped
// shape simply reads the opposite slots, so direction changes never touch the
// table.
//
// Design:
//   - The table is built once with matrix.NewEuclidean and prefetched into a
//     flat []float64 so hot loops avoid interface indirection.
//   - Costs are stabilized to 1e-9 via round1e9 to keep comparisons
//     reproducible across platforms.
package tsp

import (
	"math"

	"github.com/katalvlaran/lvroute/matrix"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// distTable is the prefetched endpoint-to-endpoint distance table.
type distTable struct {
	w []float64 // w[a*m+b], row-major
	m int       // 2N
}

// newDistTable builds the table for points. The caller has already rejected
// non-finite coordinates, so a matrix error here means a programming bug and
// is returned as-is.
//
// Complexity: Time O(N²), Space O(N²).
func newDistTable(points []Visitable) (distTable, error) {
	slots := make([]orb.Point, 2*len(points))
	for v, p := range points {
		slots[2*v] = p.Entry
		slots[2*v+1] = p.Exit
	}
	d, err := matrix.NewEuclidean(slots)
	if err != nil {
		return distTable{}, err
	}

	m := len(slots)
	w := make([]float64, m*m)
	var (
		a, b int
		x    float64
	)
	for a = 0; a < m; a++ {
		for b = 0; b < m; b++ {
			if x, err = d.At(a, b); err != nil {
				return distTable{}, err
			}
			w[a*m+b] = x
		}
	}

	return distTable{w: w, m: m}, nil
}

// exitSlot is the table slot the tool leaves v from.
func exitSlot(v int, flipped bool) int {
	if flipped {
		return 2 * v
	}
	return 2*v + 1
}

// entrySlot is the table slot the tool enters v at.
func entrySlot(v int, flipped bool) int {
	if flipped {
		return 2*v + 1
	}
	return 2 * v
}

// link is the rapid distance from u (with direction uf) to v (with direction vf).
//
// Complexity: O(1).
func (t distTable) link(u int, uf bool, v int, vf bool) float64 {
	return t.w[exitSlot(u, uf)*t.m+entrySlot(v, vf)]
}

// pathCost sums the rapid distances along tour under the flip states.
//
// Complexity: O(n).
func (t distTable) pathCost(tour []int, flipped []bool) float64 {
	var (
		sum  float64
		p    int
		u, v int
	)
	for p = 0; p+1 < len(tour); p++ {
		u = tour[p]
		v = tour[p+1]
		sum += t.link(u, flipped[u], v, flipped[v])
	}

	return round1e9(sum)
}

// RouteCost computes the rapid travel of visiting points in the order given by
// tour with supplied directions. It is the reference the Optimizer's internal
// bookkeeping must agree with, and is handy for comparing candidate orders.
//
// Returns ErrInvalidInput-wrapped errors on out-of-range indices or non-finite
// coordinates.
//
// Complexity: O(len(tour)).
func RouteCost(points []Visitable, tour []int) (float64, error) {
	var sum float64
	for p := 0; p < len(tour); p++ {
		if tour[p] < 0 || tour[p] >= len(points) {
			return 0, invalid("tour", p, ErrIndexOutOfRange)
		}
		if p == 0 {
			continue
		}
		a := points[tour[p-1]].Exit
		b := points[tour[p]].Entry
		if !finitePoint(a) || !finitePoint(b) {
			return 0, invalid("points", tour[p], ErrNonFinitePoint)
		}
		sum += planar.Distance(a, b)
	}

	return round1e9(sum), nil
}

func finitePoint(p orb.Point) bool {
	return !math.IsNaN(p[0]) && !math.IsInf(p[0], 0) &&
		!math.IsNaN(p[1]) && !math.IsInf(p[1], 0)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
