package tsp

import "github.com/paulmach/orb"

// DefaultEps is the default improvement tolerance: a move is accepted only
// when its cost delta is below −DefaultEps.
const DefaultEps = 1e-9

// DefaultMaxSegment is the default longest block moved by a single relocate.
const DefaultMaxSegment = 3

// Visitable is one shape's pair of endpoints. The tool enters at Entry and
// leaves at Exit; for closed contours both are the same point.
type Visitable struct {
	Entry orb.Point
	Exit  orb.Point
}

// Options tunes the local search. The zero value is usable; DefaultOptions
// documents the defaults explicitly.
type Options struct {
	// Eps is the acceptance tolerance: a candidate is applied only when
	// Δ < −Eps. Must be ≥ 0.
	Eps float64

	// MaxSegment is the longest contiguous block a relocate move shifts.
	// 0 ⇒ DefaultMaxSegment. Must be ≥ 0.
	MaxSegment int

	// AllowReverse lets the optimizer swap entry and exit of movable shapes.
	// Fixed-order shapes keep their supplied direction.
	AllowReverse bool

	// Shuffle scans candidate positions in a seeded pseudo-random order that is
	// redrawn after every accepted move. Results stay deterministic per Seed.
	Shuffle bool

	// Seed drives Shuffle. 0 ⇒ a fixed default seed.
	Seed int64
}

// DefaultOptions returns the recommended settings.
func DefaultOptions() Options {
	return Options{
		Eps:        DefaultEps,
		MaxSegment: DefaultMaxSegment,
	}
}

// MoveKind names the neighborhood move applied by the last successful step.
type MoveKind int

const (
	// MoveNone means the last step changed nothing.
	MoveNone MoveKind = iota
	// MoveRelocate shifts a block of consecutive shapes to another gap.
	MoveRelocate
	// MoveSwap exchanges two shapes.
	MoveSwap
	// MoveReverse reverses a segment of the tour.
	MoveReverse
	// MoveFlip swaps the entry and exit of a single shape.
	MoveFlip
)

// String implements fmt.Stringer.
func (k MoveKind) String() string {
	switch k {
	case MoveRelocate:
		return "relocate"
	case MoveSwap:
		return "swap"
	case MoveReverse:
		return "reverse"
	case MoveFlip:
		return "flip"
	default:
		return "none"
	}
}
