// Package tsp_test — shared helpers for optimizer tests.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvroute/tsp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

const (
	seedDet   = 42   // deterministic seed for random instances
	costDelta = 1e-6 // tolerance between incremental and reference costs
)

// withBoundaries wraps shapes with the tool origin as synthetic start and end.
func withBoundaries(origin orb.Point, shapes ...tsp.Visitable) []tsp.Visitable {
	out := make([]tsp.Visitable, 0, len(shapes)+2)
	out = append(out, tsp.Visitable{Entry: origin, Exit: origin})
	out = append(out, shapes...)
	out = append(out, tsp.Visitable{Entry: origin, Exit: origin})

	return out
}

// seg is a shorthand for a shape cut from a to b.
func seg(ax, ay, bx, by float64) tsp.Visitable {
	return tsp.Visitable{Entry: orb.Point{ax, ay}, Exit: orb.Point{bx, by}}
}

// randomInstance builds n random segments in a 100×100 box plus boundaries at the origin.
func randomInstance(rng *rand.Rand, n int) []tsp.Visitable {
	shapes := make([]tsp.Visitable, n)
	for i := range shapes {
		shapes[i] = seg(rng.Float64()*100, rng.Float64()*100, rng.Float64()*100, rng.Float64()*100)
	}

	return withBoundaries(orb.Point{0, 0}, shapes...)
}

// randomFixed picks roughly a third of the interior indices.
func randomFixed(rng *rand.Rand, n int) []int {
	var fixed []int
	for v := 1; v <= n; v++ {
		if rng.Intn(3) == 0 {
			fixed = append(fixed, v)
		}
	}

	return fixed
}

// oriented returns points with entry/exit swapped where the optimizer flipped a shape.
func oriented(opt *tsp.Optimizer, points []tsp.Visitable) []tsp.Visitable {
	out := make([]tsp.Visitable, len(points))
	for v, p := range points {
		if opt.Reversed(v) {
			p.Entry, p.Exit = p.Exit, p.Entry
		}
		out[v] = p
	}

	return out
}

// requireInvariants checks permutation, boundaries, fixed order and cost agreement.
func requireInvariants(t *testing.T, opt *tsp.Optimizer, points []tsp.Visitable, fixed []int) {
	t.Helper()
	tour := opt.Tour()
	require.NoError(t, tsp.ValidateTour(tour, len(points)))
	require.True(t, tsp.RespectsOrder(tour, fixed), "fixed order broken: %s", tsp.DebugString(tour))

	ref, err := tsp.RouteCost(oriented(opt, points), tour)
	require.NoError(t, err)
	require.InDelta(t, ref, opt.Cost(), costDelta)
}

// bruteForce enumerates every interior order (and, with flips, every direction
// mask of movable shapes) that respects fixed, returning the best cost and order.
func bruteForce(points []tsp.Visitable, fixed []int, flips bool) (float64, []int) {
	n := len(points)
	isFixed := make(map[int]bool, len(fixed))
	for _, f := range fixed {
		isFixed[f] = true
	}
	interior := make([]int, 0, n-2)
	for v := 1; v <= n-2; v++ {
		interior = append(interior, v)
	}

	var (
		best      = math.Inf(1)
		bestOrder []int
	)
	visit := func(order []int) {
		tour := append(append([]int{0}, order...), n-1)
		if !tsp.RespectsOrder(tour, fixed) {
			return
		}
		masks := 1
		if flips {
			masks = 1 << len(order)
		}
		for mask := 0; mask < masks; mask++ {
			pts := make([]tsp.Visitable, n)
			copy(pts, points)
			skip := false
			for b, v := range order {
				if mask&(1<<b) == 0 {
					continue
				}
				if isFixed[v] {
					skip = true
					break
				}
				pts[v].Entry, pts[v].Exit = pts[v].Exit, pts[v].Entry
			}
			if skip {
				continue
			}
			c, _ := tsp.RouteCost(pts, tour)
			if c < best-1e-12 {
				best = c
				bestOrder = append([]int(nil), order...)
			}
		}
	}
	permute(interior, 0, visit)

	return best, bestOrder
}

// permute calls fn with every permutation of a (Heap-free recursive swap).
func permute(a []int, k int, fn func([]int)) {
	if k == len(a) {
		fn(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, fn)
		a[k], a[i] = a[i], a[k]
	}
}

// runToConvergence drives opt until it converges or limit calls were made.
func runToConvergence(opt *tsp.Optimizer, limit int) {
	for it := 0; it < limit && !opt.Converged(); it++ {
		opt.AdvanceIteration()
	}
}
