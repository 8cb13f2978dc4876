package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "lvroute",
		Short: "Order drawing shapes for short tool travel",
		Long: `lvroute reorders the shapes of each drawing layer so that the tool travels
as little as possible between cuts. Shapes marked "optimize": false keep
their relative order; the machine starts and ends at the configured
plane coordinates.

Configuration is read from ~/.lvroute.yaml (or --config), then LVROUTE_*
environment variables, then flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setDefaultSlog(cmd.ErrOrStderr(), opts.logLevel)
		},
	}

	pFlags := cmd.PersistentFlags()
	pFlags.StringVar(&opts.configFile, "config", "", "config file (default $HOME/.lvroute.yaml)")
	pFlags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newOptimizeCmd(opts))

	return cmd
}

// setDefaultSlog installs a text logger on w at the named level.
func setDefaultSlog(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))

	return nil
}
