package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bruteforce/internal/config"
)

func newAdditionCmd() *cobra.Command {
	cfg := config.Default()
	var quiet bool

	cmd := &cobra.Command{
		Use:   "addition",
		Short: "Solve the addition puzzle given on the command line",
		Example: `  bfsbrute addition --start 0 --final 42
  bfsbrute addition --start 3 --final 427 --steps 1,10,100 --quiet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg.Status = !quiet
			cfg.LogLevel, cfg.LogFormat = "", ""
			if err := applyLogFlags(cmd, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return solve(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Start, "start", cfg.Start, "Starting number")
	f.IntVar(&cfg.Final, "final", cfg.Final, "Number to reach")
	f.IntSliceVar(&cfg.Steps, "steps", cfg.Steps, "Moves in enumeration order; negative values subtract")
	f.IntVar(&cfg.Ceiling, "ceiling", 0, "Prune values above this (0 = no ceiling)")
	f.IntVar(&cfg.MaxDepth, "max-depth", 0, "Give up after this many moves (0 = no limit)")
	f.BoolVarP(&quiet, "quiet", "q", false, "Print only the moves, not the search progress")
	f.BoolVar(&cfg.Metrics, "metrics", false, "Print solver metrics after the search")

	return cmd
}

// applyLogFlags copies the persistent log flags into cfg when set explicitly
// or when cfg carries no value of its own.
func applyLogFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	level, err := flags.GetString(flagLogLevel)
	if err != nil {
		return err
	}
	format, err := flags.GetString(flagLogFormat)
	if err != nil {
		return err
	}
	if flags.Changed(flagLogLevel) || cfg.LogLevel == "" {
		cfg.LogLevel = level
	}
	if flags.Changed(flagLogFormat) || cfg.LogFormat == "" {
		cfg.LogFormat = format
	}

	return nil
}
