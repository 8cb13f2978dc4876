// Package tsp - neighborhood moves for the open-path local search.
//
// For each interior position i (in scan order) the search tries, in turn:
//   - relocate: shift block tour[i..j] (1..MaxSegment long) into another gap,
//   - swap:     exchange tour[i] and tour[k], k > i,
//   - reverse:  reverse tour[i..k]; with AllowReverse also the variant that
//     flips every shape of the segment (classic 2-opt),
//   - flip:     swap entry/exit of tour[i] (AllowReverse only).
//
// Legality keeps the fixed-order subsequence intact:
//   - relocate: the block and the region it passes over must not both hold fixed shapes,
//   - swap:     if either endpoint is fixed, it must be the only fixed shape in [i..k],
//   - reverse:  at most one fixed shape in [i..k]; none for the flipping variant,
//   - flip:     never on a fixed shape.
//
// Acceptance: the O(1)/O(k) delta must be below −Eps, then the exact cost is
// recomputed and the move is rolled back unless the rounded cost strictly drops.
// That second check keeps the cost monotone even when the incremental delta
// and the full sum disagree in the last bits.
package tsp

// improve applies the first legal improving move and returns its kind.
//
// Complexity: one full scan is O(n²·MaxSegment) delta evaluations.
func (o *Optimizer) improve() MoveKind {
	for _, i := range o.order {
		if o.tryRelocate(i) {
			return MoveRelocate
		}
		if o.trySwap(i) {
			return MoveSwap
		}
		if o.tryReverse(i) {
			return MoveReverse
		}
		if o.opts.AllowReverse && o.tryFlip(i) {
			return MoveFlip
		}
	}

	return MoveNone
}

// arc is the rapid distance u→v under the current directions.
func (o *Optimizer) arc(u, v int) float64 {
	return o.dist.link(u, o.flipped[u], v, o.flipped[v])
}

func (o *Optimizer) tryRelocate(i int) bool {
	var (
		t    = o.tour
		last = o.n - 2 // last interior position
		eps  = o.opts.Eps
	)
	var (
		s, j, g                 int
		prev, first, tail, next int
		a, b                    int
		gain, delta             float64
		blockFixed              bool
	)
	for s = 1; s <= o.opts.MaxSegment; s++ {
		j = i + s - 1
		if j > last {
			break
		}
		blockFixed = o.fixedIn(i, j) > 0
		prev, first, tail, next = t[i-1], t[i], t[j], t[j+1]
		// Travel saved by cutting the block out and closing the hole.
		gain = o.arc(prev, first) + o.arc(tail, next) - o.arc(prev, next)

		for g = 0; g <= last; g++ {
			if g >= i-1 && g <= j {
				continue // same place
			}
			if blockFixed {
				if g < i && o.fixedIn(g+1, i-1) > 0 {
					continue
				}
				if g > j && o.fixedIn(j+1, g) > 0 {
					continue
				}
			}
			a, b = t[g], t[g+1]
			delta = o.arc(a, first) + o.arc(tail, b) - o.arc(a, b) - gain
			if delta >= -eps {
				continue
			}
			o.snapshot()
			relocateBlock(t, i, j, g, o.scratch)
			if o.commit() {
				return true
			}
		}
	}

	return false
}

func (o *Optimizer) trySwap(i int) bool {
	var (
		t    = o.tour
		last = o.n - 2
		eps  = o.opts.Eps
	)
	var (
		k          int
		x, y, a, b int
		xn, yp     int
		delta      float64
	)
	for k = i + 1; k <= last; k++ {
		x, y = t[i], t[k]
		if (o.fixed[x] || o.fixed[y]) && o.fixedIn(i, k) > 1 {
			continue
		}
		a, b = t[i-1], t[k+1]
		if k == i+1 {
			delta = o.arc(a, y) + o.arc(y, x) + o.arc(x, b) -
				o.arc(a, x) - o.arc(x, y) - o.arc(y, b)
		} else {
			xn, yp = t[i+1], t[k-1]
			delta = o.arc(a, y) + o.arc(y, xn) + o.arc(yp, x) + o.arc(x, b) -
				o.arc(a, x) - o.arc(x, xn) - o.arc(yp, y) - o.arc(y, b)
		}
		if delta >= -eps {
			continue
		}
		o.snapshot()
		t[i], t[k] = y, x
		if o.commit() {
			return true
		}
	}

	return false
}

func (o *Optimizer) tryReverse(i int) bool {
	var (
		t       = o.tour
		f       = o.flipped
		last    = o.n - 2
		eps     = o.opts.Eps
		canFlip = o.opts.AllowReverse
		a       = t[i-1]
	)
	var (
		k, cnt, b, p   int
		fwd, rev, revF float64 // segment-internal travel: as is, reversed, reversed+flipped
		before, delta  float64
	)
	for k = i + 1; k <= last; k++ {
		cnt = o.fixedIn(i, k)
		if cnt > 1 {
			break // the count only grows with k
		}
		fwd += o.arc(t[k-1], t[k])
		rev += o.arc(t[k], t[k-1])
		b = t[k+1]
		before = o.arc(a, t[i]) + fwd + o.arc(t[k], b)

		delta = o.arc(a, t[k]) + rev + o.arc(t[i], b) - before
		if delta < -eps {
			o.snapshot()
			reverseInPlace(t, i, k)
			if o.commit() {
				return true
			}
		}

		if !canFlip || cnt > 0 {
			continue
		}
		revF += o.dist.link(t[k], !f[t[k]], t[k-1], !f[t[k-1]])
		delta = o.dist.link(a, f[a], t[k], !f[t[k]]) + revF +
			o.dist.link(t[i], !f[t[i]], b, f[b]) - before
		if delta < -eps {
			o.snapshot()
			for p = i; p <= k; p++ {
				f[t[p]] = !f[t[p]]
			}
			reverseInPlace(t, i, k)
			if o.commit() {
				return true
			}
		}
	}

	return false
}

func (o *Optimizer) tryFlip(i int) bool {
	var (
		t = o.tour
		f = o.flipped
		v = t[i]
	)
	if o.fixed[v] {
		return false
	}
	a, b := t[i-1], t[i+1]
	delta := o.dist.link(a, f[a], v, !f[v]) + o.dist.link(v, !f[v], b, f[b]) -
		o.arc(a, v) - o.arc(v, b)
	if delta >= -o.opts.Eps {
		return false
	}
	o.snapshot()
	f[v] = !f[v]

	return o.commit()
}

// snapshot saves tour and directions before a tentative move.
func (o *Optimizer) snapshot() {
	copy(o.backupTour, o.tour)
	copy(o.backupFlip, o.flipped)
}

// commit keeps the tentative move only if the exact rounded cost strictly
// drops; otherwise the snapshot is restored in place.
//
// Complexity: O(n).
func (o *Optimizer) commit() bool {
	c := o.dist.pathCost(o.tour, o.flipped)
	if c < o.cost {
		o.cost = c
		o.rebuildPrefix()
		return true
	}
	copy(o.tour, o.backupTour)
	copy(o.flipped, o.backupFlip)

	return false
}
