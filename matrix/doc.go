// Package matrix provides the dense float64 storage used by the route optimizer.
//
// The package offers:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) so solvers can
//     accept any backing store.
//   - Dense, a row-major implementation with bounds-checked accessors that
//     return sentinel errors instead of panicking.
//   - NewEuclidean, which materializes all pairwise planar distances between
//     a list of orb.Point values.
//
// Matrices are meant for the small-to-medium instances a single drawing layer
// produces; memory is O(n²).
package matrix
