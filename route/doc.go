// Package route drives the tour optimizer for one drawing layer at a time.
//
// A Planner turns a shape.Layer into tsp Visitables (machine start, every
// shape, machine start again), runs tsp.Optimizer.AdvanceIteration under an
// iteration budget, reports progress at a fixed cadence and returns the
// committed export order. The optimizer itself never logs and never blocks;
// everything about cadence, cancellation and user-visible fallback lives here.
//
// Budget:
//
//	budget = min(MaxIterations, movable × IterationsPerShape)
//
// Every iteration optimizes; ReportEvery only controls how often the
// progress callback sees the current order. Once the optimizer reports
// convergence the Planner stops early, since further calls are no-ops.
//
// Invalid geometry (NaN or ±Inf endpoints) is not an error for the caller:
// the layer is returned in its input order with Result.Fallback set and a
// warning logged.
package route
