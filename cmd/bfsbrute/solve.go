package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bruteforce/bfs"
	"github.com/katalvlaran/bruteforce/examples/addition"
	"github.com/katalvlaran/bruteforce/internal/config"
	"github.com/katalvlaran/bruteforce/internal/logging"
	"github.com/katalvlaran/bruteforce/metrics"
)

// solve runs the configured puzzle, writing progress or the move list to
// the command's output.
func solve(cmd *cobra.Command, cfg config.Config) error {
	out := cmd.OutOrStdout()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	opts := []bfs.Option{
		bfs.WithContext(cmd.Context()),
		bfs.WithLogger(logger),
		bfs.WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.Status {
		opts = append(opts, bfs.WithStatus(out))
	}

	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		col, err := metrics.NewCollector(reg)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, col.Options()...)
	}

	start := addition.New(cfg.Start, cfg.Final,
		addition.WithSteps(cfg.Steps...),
		addition.WithCeiling(cfg.Ceiling),
	)
	logger.Info("solving", "puzzle", cfg.Puzzle, "start", cfg.Start, "final", cfg.Final, "steps", cfg.Steps)

	path, err := bfs.Solve[addition.State, int](start, opts...)
	if reg != nil {
		if derr := writeMetrics(out, reg); derr != nil {
			logger.Warn("metrics dump failed", "error", derr)
		}
	}
	if err != nil {
		return err
	}

	if !cfg.Status {
		for i, move := range path.Moves {
			fmt.Fprintf(out, "Move %d) %s\n", i+1, move)
		}
	}

	return nil
}

// writeMetrics encodes every gathered family in the Prometheus text
// exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "\nMetrics:"); err != nil {
		return err
	}
	for _, fam := range families {
		if _, err := expfmt.MetricFamilyToText(w, fam); err != nil {
			return err
		}
	}

	return nil
}
