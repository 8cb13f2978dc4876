package tsp

import (
	"fmt"
	"math/rand"
)

// Optimizer owns one tour-ordering instance: the distance model, the current
// tour with per-shape directions, and the iteration bookkeeping.
//
// An Optimizer is not safe for concurrent use. Drive it from a single
// goroutine and stop calling AdvanceIteration to cancel.
type Optimizer struct {
	n    int
	opts Options
	dist distTable

	fixed   []bool // fixed[v]: v keeps its relative order among fixed visitables
	tour    []int  // tour[p] = visitable at position p; tour[0]==0, tour[n-1]==n-1
	flipped []bool // flipped[v]: v is entered at its Exit and left at its Entry
	prefix  []int  // prefix[p] = number of fixed visitables in tour[0..p-1]

	cost    float64
	initial float64

	order   []int // interior positions in scan order
	rng     *rand.Rand
	scratch []int // relocate buffer, len MaxSegment

	// snapshot for rolling back a move the exact recomputation rejects
	backupTour []int
	backupFlip []bool

	iterations int
	accepted   int
	converged  bool
	last       MoveKind
}

// New validates its inputs and returns an Optimizer whose tour is the
// identity permutation.
//
// points[0] and points[len-1] are the synthetic start and end of the tool;
// fixed lists visitable indices whose relative order must be preserved.
//
// Errors: *InvalidInputError (matching ErrInvalidInput) for fewer than two
// points, out-of-range fixed indices, non-finite coordinates or malformed
// options.
//
// Complexity: O(N²) time and space for the distance table.
func New(points []Visitable, fixed []int, opts Options) (*Optimizer, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}
	n := len(points)
	mask, err := fixedMask(n, fixed)
	if err != nil {
		return nil, err
	}
	dist, err := newDistTable(points)
	if err != nil {
		return nil, err
	}

	o := &Optimizer{
		n:          n,
		opts:       opts,
		dist:       dist,
		fixed:      mask,
		tour:       make([]int, n),
		flipped:    make([]bool, n),
		prefix:     make([]int, n+1),
		scratch:    make([]int, opts.MaxSegment),
		backupTour: make([]int, n),
		backupFlip: make([]bool, n),
	}
	var p int
	for p = 0; p < n; p++ {
		o.tour[p] = p
	}
	o.rebuildPrefix()
	o.cost = o.dist.pathCost(o.tour, o.flipped)
	o.initial = o.cost

	if n > 2 {
		o.order = make([]int, 0, n-2)
		for p = 1; p <= n-2; p++ {
			o.order = append(o.order, p)
		}
	}
	if opts.Shuffle {
		o.rng = rngFromSeed(opts.Seed)
		shuffleIntsInPlace(o.order, o.rng)
	}

	return o, nil
}

// AdvanceIteration performs one local-search step: the first legal move that
// strictly lowers the cost is applied. When a full scan finds none, the
// instance is marked converged and every later call is a no-op. Each call,
// including no-ops, increments Iterations.
func (o *Optimizer) AdvanceIteration() {
	o.iterations++
	o.last = MoveNone
	if o.converged {
		return
	}

	kind := o.improve()
	if kind == MoveNone {
		o.converged = true
		return
	}
	o.accepted++
	o.last = kind
	if o.rng != nil {
		shuffleIntsInPlace(o.order, o.rng)
	}
}

// CurrentRoute returns the current visiting order without the two synthetic
// boundaries. Values are visitable indices in [1, N-2]. The slice is a copy.
func (o *Optimizer) CurrentRoute() []int {
	if o.n <= 2 {
		return []int{}
	}

	return CopyTour(o.tour[1 : o.n-1])
}

// Tour returns a copy of the full tour including the boundaries.
func (o *Optimizer) Tour() []int { return CopyTour(o.tour) }

// Cost is the current rapid travel distance (rounded to 1e-9).
func (o *Optimizer) Cost() float64 { return o.cost }

// InitialCost is the cost of the identity tour computed at construction.
func (o *Optimizer) InitialCost() float64 { return o.initial }

// Converged reports whether the last full neighborhood scan found no improvement.
func (o *Optimizer) Converged() bool { return o.converged }

// Iterations counts AdvanceIteration calls.
func (o *Optimizer) Iterations() int { return o.iterations }

// Accepted counts improving moves applied so far.
func (o *Optimizer) Accepted() int { return o.accepted }

// LastMove names the move applied by the most recent AdvanceIteration.
func (o *Optimizer) LastMove() MoveKind { return o.last }

// Len is the number of visitables including the two boundaries.
func (o *Optimizer) Len() int { return o.n }

// Reversed reports whether visitable v is currently traversed Exit→Entry.
// Out-of-range indices report false.
func (o *Optimizer) Reversed(v int) bool {
	if v < 0 || v >= o.n {
		return false
	}
	return o.flipped[v]
}

// Fixed returns the fixed-order visitables in input order, boundaries excluded.
func (o *Optimizer) Fixed() []int {
	out := make([]int, 0)
	for v, f := range o.fixed {
		if f {
			out = append(out, v)
		}
	}

	return out
}

// Movable counts interior visitables that are free to be reordered.
func (o *Optimizer) Movable() int {
	var cnt int
	for v := 1; v < o.n-1; v++ {
		if !o.fixed[v] {
			cnt++
		}
	}

	return cnt
}

// String summarizes the instance for logs and debugging.
func (o *Optimizer) String() string {
	return fmt.Sprintf("tsp.Optimizer{n=%d cost=%g initial=%g it=%d accepted=%d converged=%t tour=%s}",
		o.n, o.cost, o.initial, o.iterations, o.accepted, o.converged, DebugString(o.tour))
}

// rebuildPrefix refreshes the fixed-count prefix sums after the tour changed.
//
// Complexity: O(n).
func (o *Optimizer) rebuildPrefix() {
	o.prefix[0] = 0
	for p, v := range o.tour {
		o.prefix[p+1] = o.prefix[p]
		if o.fixed[v] {
			o.prefix[p+1]++
		}
	}
}

// fixedIn counts fixed visitables at positions [a..b]; empty ranges count 0.
func (o *Optimizer) fixedIn(a, b int) int {
	if a > b {
		return 0
	}
	return o.prefix[b+1] - o.prefix[a]
}
