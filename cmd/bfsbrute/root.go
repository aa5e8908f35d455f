package main

import (
	"github.com/spf13/cobra"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bfsbrute",
		Short: "bfsbrute finds shortest move sequences by breadth-first brute force",
		Long: `bfsbrute runs the breadth-first puzzle solver on the addition puzzle:
reach a final number from a start number using moves such as "Add 10" and "Add 1".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String(flagLogLevel, "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String(flagLogFormat, "text", "Log format (text, json)")

	root.AddCommand(newAdditionCmd(), newRunCmd(), newVersionCmd())

	return root
}
