package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/route"
	"github.com/katalvlaran/lvroute/shape"
	"github.com/katalvlaran/lvroute/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type optimizeOptions struct {
	*rootOptions
	out string
}

func newOptimizeCmd(root *rootOptions) *cobra.Command {
	opts := &optimizeOptions{rootOptions: root}
	v := config.New()

	cmd := &cobra.Command{
		Use:   "optimize [input.geojson]",
		Short: "Optimize the export order of every layer",
		Long: `Reads a GeoJSON FeatureCollection (from the file argument, or stdin when it is
missing or "-"), optimizes each layer and writes the collection back with
features in export order. Every output feature carries "layer", "optimize",
"order" and "reversed" properties.

Interrupting the run keeps the best order found so far for the layer in
progress; layers not reached yet are written in input order.

Examples:

  lvroute optimize drawing.geojson --out ordered.geojson
  lvroute optimize --allow-reverse --max-iterations 2000 < drawing.geojson`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runOptimize(cmd, v, opts, input)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	flags.Int("max-iterations", route.DefaultMaxIterations, "iteration cap per layer")
	flags.Int("report-every", route.DefaultReportEvery, "progress log cadence in iterations")
	flags.Bool("allow-reverse", false, "let the optimizer flip the cutting direction of shapes")
	flags.String("store", "", "bbolt file that keeps optimized orders between runs")
	bindFlags(v, flags, map[string]string{
		"max-iterations": config.KeyMaxIterations,
		"report-every":   config.KeyReportEvery,
		"allow-reverse":  config.KeyAllowReverse,
		"store":          config.KeyStorePath,
	})

	return cmd
}

// bindFlags wires flag names to config keys; a flag only overrides the
// config when it is set on the command line.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind --%s: %v", name, err))
		}
	}
}

func runOptimize(cmd *cobra.Command, v *viper.Viper, opts *optimizeOptions, input string) error {
	started := time.Now()
	log := slog.With("component", "optimize")

	if err := config.Read(v, opts.configFile); err != nil {
		return err
	}
	cfg, err := config.Decode(v)
	if err != nil {
		return err
	}
	if cfg.File != "" {
		log.Debug("Using config file", "path", cfg.File)
	}

	data, err := readInput(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}
	shapes, err := shape.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	layers := shape.GroupByLayer(shapes)
	log.Info("Read drawing",
		"input", input,
		"size", humanize.Bytes(uint64(len(data))),
		"shapes", humanize.Comma(int64(len(shapes))),
		"layers", len(layers))

	planner := route.NewPlanner(cfg.Route(), slog.Default())
	if cfg.Store.Path != "" {
		db, err := store.Open(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		planner.WithStore(db)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, planErr := planner.PlanAll(ctx, layers, logProgress(log))
	if planErr != nil && !errors.Is(planErr, context.Canceled) {
		return planErr
	}

	out := make([]shape.Layer, len(layers))
	copy(out, layers)
	var initial, final float64
	for i, r := range results {
		out[i] = shape.Layer{Name: r.Layer, Shapes: r.Shapes}
		initial += r.InitialCost
		final += r.Cost
	}

	body, err := shape.ToFeatureCollection(out).MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	if err := writeOutput(cmd.OutOrStdout(), opts.out, body); err != nil {
		return err
	}

	log.Info("Done",
		"layers", fmt.Sprintf("%d/%d", len(results), len(layers)),
		"travel", humanize.FtoaWithDigits(initial, 3)+" -> "+humanize.FtoaWithDigits(final, 3),
		"elapsed", time.Since(started).Round(time.Millisecond))

	return planErr
}

func logProgress(log *slog.Logger) route.ProgressFunc {
	return func(p route.Progress) {
		if p.Final {
			return
		}
		log.Info("Optimizing",
			"layer", p.Layer,
			"iteration", humanize.Comma(int64(p.Iteration))+"/"+humanize.Comma(int64(p.Budget)),
			"cost", humanize.FtoaWithDigits(p.Cost, 3))
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return data, nil
}

func writeOutput(stdout io.Writer, path string, body []byte) error {
	if path == "-" {
		_, err := stdout.Write(append(body, '\n'))
		return err
	}
	if err := os.WriteFile(path, append(body, '\n'), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
