package route

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvroute/shape"
	"github.com/katalvlaran/lvroute/store"
	"github.com/katalvlaran/lvroute/tsp"
)

// Planner plans layers one at a time. It is not safe for concurrent use.
type Planner struct {
	cfg    Config
	logger *slog.Logger
	store  OrderStore
}

// NewPlanner returns a Planner. A nil logger means slog.Default().
func NewPlanner(cfg Config, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Planner{cfg: cfg, logger: logger.With("component", "route")}
}

// WithStore makes the Planner warm-start from, and save to, s.
func (p *Planner) WithStore(s OrderStore) *Planner {
	p.store = s

	return p
}

// Config returns the Planner's settings.
func (p *Planner) Config() Config { return p.cfg }

// PlanAll plans layers in order. On error it returns the results completed
// so far, including the partial result of the failing layer.
func (p *Planner) PlanAll(ctx context.Context, layers []shape.Layer, progress ProgressFunc) ([]Result, error) {
	out := make([]Result, 0, len(layers))
	for _, l := range layers {
		res, err := p.Plan(ctx, l, progress)
		out = append(out, res)
		if err != nil {
			return out, fmt.Errorf("layer %q: %w", l.Name, err)
		}
	}

	return out, nil
}

// Plan optimizes the export order of layer.
//
// On context cancellation Plan returns the best order found so far together
// with ctx.Err().
func (p *Planner) Plan(ctx context.Context, layer shape.Layer, progress ProgressFunc) (Result, error) {
	started := time.Now()
	log := p.logger.With("layer", layer.Name)

	base, fp, warm := p.seedOrder(layer, log)

	points := make([]tsp.Visitable, 0, len(layer.Shapes)+2)
	points = append(points, tsp.Visitable{Entry: p.cfg.Start, Exit: p.cfg.Start})
	var fixed []int
	for k, idx := range base {
		s := layer.Shapes[idx]
		points = append(points, tsp.Visitable{Entry: s.Entry, Exit: s.Exit})
		if !s.Optimize {
			fixed = append(fixed, k+1)
		}
	}
	points = append(points, tsp.Visitable{Entry: p.cfg.Start, Exit: p.cfg.Start})

	opt, err := tsp.New(points, fixed, p.cfg.Options)
	if err != nil {
		log.Warn("Route optimisation skipped, keeping input order", "error", err)
		res := Result{
			Layer:    layer.Name,
			Order:    identity(len(layer.Shapes)),
			Shapes:   append([]shape.Shape(nil), layer.Shapes...),
			Fallback: true,
		}
		p.report(progress, res, 0, true)

		return res, nil
	}

	budget := Budget(p.cfg.MaxIterations, p.cfg.IterationsPerShape, opt.Movable())
	log.Debug("Planning layer",
		"shapes", humanize.Comma(int64(len(layer.Shapes))),
		"movable", humanize.Comma(int64(opt.Movable())),
		"budget", humanize.Comma(int64(budget)),
		"warm", warm)

	var ctxErr error
	for it := 0; it < budget; it++ {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		opt.AdvanceIteration()
		if p.cfg.ReportEvery > 0 && it%p.cfg.ReportEvery == 0 {
			p.report(progress, p.result(layer, base, opt, budget, warm), opt.Iterations(), false)
			log.Debug("Iteration",
				"iteration", humanize.Comma(int64(opt.Iterations())),
				"cost", humanize.FtoaWithDigits(opt.Cost(), 3),
				"move", opt.LastMove().String())
		}
		if opt.Converged() {
			break
		}
	}

	res := p.result(layer, base, opt, budget, warm)
	p.report(progress, res, res.Iterations, true)
	if ctxErr != nil {
		log.Info("Route optimisation cancelled",
			"iterations", humanize.Comma(int64(res.Iterations)),
			"cost", humanize.FtoaWithDigits(res.Cost, 3))
		return res, ctxErr
	}

	if p.store != nil && fp != 0 {
		if err := p.store.Save(layer.Name, fp, res.Order); err != nil {
			log.Warn("Could not persist order", "error", err)
		}
	}

	log.Info("Optimized layer",
		"shapes", humanize.Comma(int64(len(layer.Shapes))),
		"iterations", humanize.Comma(int64(res.Iterations)),
		"accepted", humanize.Comma(int64(res.Accepted)),
		"initial", humanize.FtoaWithDigits(res.InitialCost, 3),
		"cost", humanize.FtoaWithDigits(res.Cost, 3),
		"saved", humanize.FtoaWithDigits(res.Saved(), 1)+"%",
		"converged", res.Converged,
		"elapsed", time.Since(started).Round(time.Millisecond))

	return res, nil
}

// seedOrder picks the order the optimizer starts from: the stored order when
// one matches the layer, otherwise the input order. fp is 0 without a store.
func (p *Planner) seedOrder(layer shape.Layer, log *slog.Logger) (base []int, fp uint64, warm bool) {
	base = identity(len(layer.Shapes))
	if p.store == nil {
		return base, 0, false
	}

	fp, err := store.Fingerprint(layer)
	if err != nil {
		log.Warn("Could not fingerprint layer", "error", err)
		return base, 0, false
	}
	stored, ok, err := p.store.Load(layer.Name, fp)
	if err != nil {
		log.Warn("Could not load stored order", "error", err)
		return base, fp, false
	}
	if !ok {
		return base, fp, false
	}
	if !usableOrder(layer, stored) {
		log.Warn("Ignoring stored order", "len", len(stored))
		return base, fp, false
	}
	log.Debug("Warm start from stored order")

	return append([]int(nil), stored...), fp, true
}

// result maps the optimizer's current route back onto layer.
func (p *Planner) result(layer shape.Layer, base []int, opt *tsp.Optimizer, budget int, warm bool) Result {
	route := opt.CurrentRoute()
	res := Result{
		Layer:       layer.Name,
		Order:       make([]int, len(route)),
		Shapes:      make([]shape.Shape, len(route)),
		InitialCost: opt.InitialCost(),
		Cost:        opt.Cost(),
		Budget:      budget,
		Iterations:  opt.Iterations(),
		Accepted:    opt.Accepted(),
		Converged:   opt.Converged(),
		WarmStart:   warm,
	}
	for k, v := range route {
		idx := base[v-1]
		res.Order[k] = idx
		s := layer.Shapes[idx]
		if opt.Reversed(v) {
			s = s.Reverse()
		}
		res.Shapes[k] = s
	}

	return res
}

func (p *Planner) report(progress ProgressFunc, res Result, iteration int, final bool) {
	if progress == nil {
		return
	}
	progress(Progress{
		Layer:     res.Layer,
		Iteration: iteration,
		Budget:    res.Budget,
		Cost:      res.Cost,
		Order:     append([]int(nil), res.Order...),
		Final:     final,
	})
}

// usableOrder reports whether order is a permutation of layer's indices
// that keeps pinned shapes in input order.
func usableOrder(layer shape.Layer, order []int) bool {
	if len(order) != len(layer.Shapes) {
		return false
	}
	seen := make([]bool, len(order))
	last := -1
	for _, idx := range order {
		if idx < 0 || idx >= len(order) || seen[idx] {
			return false
		}
		seen[idx] = true
		if !layer.Shapes[idx].Optimize {
			if idx < last {
				return false
			}
			last = idx
		}
	}

	return true
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
