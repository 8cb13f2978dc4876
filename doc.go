// Package lvroute orders the shapes of a drawing so that a CAM export spends
// as little time as possible travelling between cuts.
//
// The problem is an open-path travelling-salesman variant: every shape has an
// entry and an exit point, the tool starts and ends at a fixed machine
// position, and shapes flagged as fixed-order must keep their relative order.
//
// Packages:
//
//	matrix/ dense float64 matrices and Euclidean distance tables
//	tsp/    the incremental tour optimizer (AdvanceIteration / CurrentRoute)
//	shape/  drawing shapes, endpoint extraction, GeoJSON in and out
//	route/  per-layer planning: budget, progress cadence, fallback
//	store/  bbolt persistence of committed orders
//	config/ viper-backed settings (file, LVROUTE_* env, flags)
//
// Command:
//
//	cmd/lvroute `lvroute optimize drawing.geojson --out ordered.geojson`
//
// Quick start:
//
//	opt, err := tsp.New(points, fixed, tsp.DefaultOptions())
//	if err != nil {
//		// invalid geometry: keep the input order
//	}
//	for it := 0; it < budget; it++ {
//		opt.AdvanceIteration()
//	}
//	order := opt.CurrentRoute()
package lvroute
