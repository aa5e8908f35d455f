// Package bruteforce solves state-space puzzles by breadth-first brute force.
//
// Describe a puzzle as a puzzle.State (a goal test plus successor
// enumeration) and the solver returns a shortest sequence of moves from the
// starting configuration to a solved one, or a NoSolutionError once every
// reachable configuration has been tried.
//
// Everything is organized under a few subpackages:
//
//	puzzle/             — the State contract, the visited set Seen, Unimplemented
//	bfs/                — the level-synchronous Solver, Path results, options & hooks
//	metrics/            — Prometheus counters fed by the solver hooks
//	examples/addition/  — the reference "Add 10 / Add 1" puzzle
//	cmd/bfsbrute/       — command-line runner for the addition puzzle
//
// Quick example:
//
//	path, err := bfs.Solve[addition.State, int](addition.New(0, 42))
//	// path.Moves == [Add 10 Add 10 Add 10 Add 10 Add 1 Add 1]
//
//	go get github.com/katalvlaran/bruteforce
package bruteforce
