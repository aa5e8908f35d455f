package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bruteforce/internal/config"
)

func newRunCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a puzzle described by a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := applyLogFlags(cmd, &cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return solve(cmd, cfg)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "puzzle.yaml", "Path to the YAML run description")

	return cmd
}
