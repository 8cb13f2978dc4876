package route

import (
	"github.com/katalvlaran/lvroute/shape"
	"github.com/katalvlaran/lvroute/tsp"
	"github.com/paulmach/orb"
)

// Defaults for Config.
const (
	DefaultMaxIterations      = 300
	DefaultIterationsPerShape = 50
	DefaultReportEvery        = 50
)

// Config controls one Planner.
type Config struct {
	// Start is the machine start point; tours begin and end here.
	Start orb.Point

	// MaxIterations caps the iteration budget of a layer.
	MaxIterations int

	// IterationsPerShape scales the budget with the number of movable shapes.
	IterationsPerShape int

	// ReportEvery is the progress cadence in iterations. ≤ 0 ⇒ final report only.
	ReportEvery int

	// Options are passed to tsp.New unchanged.
	Options tsp.Options
}

// DefaultConfig returns the stock settings with the start at the origin.
func DefaultConfig() Config {
	return Config{
		MaxIterations:      DefaultMaxIterations,
		IterationsPerShape: DefaultIterationsPerShape,
		ReportEvery:        DefaultReportEvery,
		Options:            tsp.DefaultOptions(),
	}
}

// Budget returns min(maxIterations, movable*perShape), never negative.
func Budget(maxIterations, perShape, movable int) int {
	b := movable * perShape
	if maxIterations < b {
		b = maxIterations
	}
	if b < 0 {
		return 0
	}

	return b
}

// Progress is a snapshot passed to a ProgressFunc.
type Progress struct {
	Layer     string
	Iteration int
	Budget    int
	Cost      float64
	// Order holds indices into the layer's Shapes in visiting order.
	Order []int
	// Final is set on the last report of a layer.
	Final bool
}

// ProgressFunc receives progress snapshots. It runs on the planning
// goroutine; a slow callback slows planning.
type ProgressFunc func(Progress)

// OrderStore persists committed orders between runs. *store.Store satisfies it.
type OrderStore interface {
	Load(layer string, fingerprint uint64) ([]int, bool, error)
	Save(layer string, fingerprint uint64, order []int) error
}

// Result is the committed outcome for one layer.
type Result struct {
	Layer string

	// Order holds indices into the input layer's Shapes in export order.
	Order []int

	// Shapes are the layer's shapes in export order. A shape the optimizer
	// flipped is returned with Reversed geometry.
	Shapes []shape.Shape

	InitialCost float64
	Cost        float64
	Budget      int
	Iterations  int
	Accepted    int
	Converged   bool

	// WarmStart is set when the search began from a stored order.
	WarmStart bool

	// Fallback is set when the layer could not be optimized and Order is
	// the input order.
	Fallback bool
}

// Saved returns the relative cost reduction in percent, 0 when InitialCost is 0.
func (r Result) Saved() float64 {
	if r.InitialCost == 0 {
		return 0
	}

	return (r.InitialCost - r.Cost) / r.InitialCost * 100
}
