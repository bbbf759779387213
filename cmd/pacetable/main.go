// SPDX-License-Identifier: MIT

// Command pacetable prints running pace tables and converts physical
// quantities between units.
package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/physq/dimension"
	"github.com/katalvlaran/physq/internal/config"
	"github.com/katalvlaran/physq/internal/logger"
	"github.com/katalvlaran/physq/quantity"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration. A preset log replaces the one built from the
// configured environment.
type app struct {
	cfg   *config.Config
	sys   *quantity.System
	reg   *prometheus.Registry
	log   *zap.Logger
	start time.Time
}

func newRootCommand() *cobra.Command {
	return rootCommand(&app{})
}

func rootCommand(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pacetable",
		Short:         "Running pace tables and unit conversions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return a.setup(cmd, path)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()
			if a.cfg.Metrics.Dump {
				if err := dumpMetrics(cmd.ErrOrStderr(), a.reg); err != nil {
					logger.Warn(ctx, "metrics dump failed", zap.Error(err))
				}
			}
			logger.Info(ctx, "command finished", zap.Duration("took", time.Since(a.start)))
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file path (environment only when empty)")

	rootCmd.AddCommand(
		tableCommand(a),
		convertCommand(a),
		unitsCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, path string) error {
	a.start = time.Now()
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	l := a.log
	if l == nil {
		l = logger.Setup(cfg.Environment)
	}
	ctx := logger.WithFields(logger.WithLogger(cmd.Context(), l), zap.String("command", cmd.Name()))
	cmd.SetContext(ctx)

	a.cfg = cfg
	a.reg = prometheus.NewRegistry()
	a.sys, err = quantity.NewSystem(
		quantity.WithLogger(l),
		quantity.WithRegisterer(a.reg),
	)
	if err != nil {
		return errors.Wrap(err, "quantity system")
	}
	logger.Debug(ctx, "configuration loaded", zap.String("environment", cfg.Environment))

	return nil
}

// dumpMetrics writes the catalog metrics gathered by reg in the Prometheus
// text format.
func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrap(err, "encode metrics")
		}
	}

	return nil
}

// normalize returns the NFC form of a command-line argument, trimmed.
func normalize(arg string) string {
	return strings.TrimSpace(norm.NFC.String(arg))
}

// signature reads a dimension from a signature such as "L/T" or from the
// name of a built-in kind such as "speed".
func signature(arg string) (dimension.Dimension, error) {
	arg = normalize(arg)
	for _, k := range quantity.Kinds() {
		if strings.EqualFold(arg, k.String()) {
			d, _ := k.Dimension()
			return d, nil
		}
	}
	d, err := dimension.Parse(arg)
	if err != nil {
		return dimension.Dimension{}, errors.Wrapf(err, "signature %q", arg)
	}

	return d, nil
}

func main() {
	ctx := context.Background()
	rootCmd := newRootCommand()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
		_, _ = io.WriteString(os.Stderr, "pacetable: "+err.Error()+"\n")
		os.Exit(1) //nolint: gocritic
	}
}
