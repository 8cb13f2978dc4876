// Package tsp orders the shapes of a drawing so that the non-cutting (rapid)
// travel of a tool between them is approximately minimal.
//
// The problem is an open-path, asymmetric TSP:
//
//   - Every "city" is a shape with an entry point and an exit point, so the
//     cost of visiting u then v is the distance from exit(u) to entry(v).
//   - Index 0 and index N-1 are synthetic boundary entries (tool start and
//     tool end). They are pinned to the first and last position.
//   - A caller-supplied fixed-order set lists shapes whose relative order must
//     never change. They may still move and be interleaved with other shapes.
//
// The Optimizer is driven one step at a time:
//
//	opt, err := tsp.New(points, fixed, tsp.DefaultOptions())
//	if err != nil { ... fall back to input order ... }
//	for it := 0; it < budget; it++ {
//		opt.AdvanceIteration()
//		if it%50 == 0 {
//			redraw(opt.CurrentRoute())
//		}
//	}
//
// Each AdvanceIteration applies at most one strictly improving move
// (first-improvement local search over relocate / swap / reverse, plus
// single-shape flips when Options.AllowReverse is set). Cost never increases,
// so the caller may stop at any iteration. Once a full neighborhood scan finds
// no improvement the instance is converged and further calls are O(1) no-ops.
//
// The package performs no I/O and no logging; construction is the only place
// errors are reported (see InvalidInputError).
package tsp
