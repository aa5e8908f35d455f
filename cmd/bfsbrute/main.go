// Command bfsbrute solves the addition puzzle with the bfs solver.
//
//	bfsbrute addition --start 0 --final 42 --steps 10,1
//	bfsbrute run --config puzzle.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/bruteforce/bfs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps an exhausted search to 2 and every other failure to 1.
func exitCode(err error) int {
	if errors.Is(err, bfs.ErrNoSolution) {
		return 2
	}

	return 1
}
