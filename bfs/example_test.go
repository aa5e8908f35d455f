package bfs_test

import (
	"errors"
	"fmt"
	"iter"
	"os"

	"github.com/katalvlaran/bruteforce/bfs"
	"github.com/katalvlaran/bruteforce/examples/addition"
	"github.com/katalvlaran/bruteforce/puzzle"
)

// jugs is the classic water-jug puzzle: a 3-litre and a 5-litre jug, fill,
// empty or pour, until one jug holds exactly 4 litres.
type jugs struct{ small, large int }

const smallCap, largeCap = 3, 5

func (j jugs) Solved() bool { return j.small == 4 || j.large == 4 }

func (j jugs) Key() jugs { return j }

var _ puzzle.Keyer[jugs] = jugs{}

func (j jugs) NextStates(seen *puzzle.Seen[jugs]) iter.Seq2[string, jugs] {
	return func(yield func(string, jugs) bool) {
		pourSL := min(j.small, largeCap-j.large)
		pourLS := min(j.large, smallCap-j.small)
		moves := []struct {
			label string
			next  jugs
		}{
			{"fill small", jugs{smallCap, j.large}},
			{"fill large", jugs{j.small, largeCap}},
			{"empty small", jugs{0, j.large}},
			{"empty large", jugs{j.small, 0}},
			{"pour small into large", jugs{j.small - pourSL, j.large + pourSL}},
			{"pour large into small", jugs{j.small + pourLS, j.large - pourLS}},
		}
		for _, m := range moves {
			if seen.Add(m.next) && !yield(m.label, m.next) {
				return
			}
		}
	}
}

// ExampleSolve_addition reproduces the addition puzzle from 0 to 42 using "Add 10" and "Add 1".
func ExampleSolve_addition() {
	path, err := bfs.Solve[addition.State, int](addition.New(0, 42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, move := range path.Moves {
		fmt.Printf("Move %d) %s\n", i+1, move)
	}
	// Output:
	// Move 1) Add 10
	// Move 2) Add 10
	// Move 3) Add 10
	// Move 4) Add 10
	// Move 5) Add 1
	// Move 6) Add 1
}

// ExampleSolve_waterJugs measures 4 litres with a 3-litre and a 5-litre jug.
func ExampleSolve_waterJugs() {
	path, err := bfs.Solve[jugs, jugs](jugs{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path.Len(), "moves:", path)
	fmt.Printf("final: %+v\n", path.State)
	// Output:
	// 6 moves: fill large, pour large into small, empty small, pour large into small, fill large, pour large into small
	// final: {small:3 large:4}
}

// ExampleSolve_noSolution shows how to branch on an exhausted state space.
func ExampleSolve_noSolution() {
	_, err := bfs.Solve[addition.State, int](addition.New(3, 2, addition.WithSteps(1, 10, 100)))

	var none *bfs.NoSolutionError
	if errors.As(err, &none) {
		fmt.Println("unreachable after", none.Tries, "tries")
	}
	// Output:
	// unreachable after 0 tries
}

// ExampleNewSolver_status streams progress text to stdout.
func ExampleNewSolver_status() {
	solver := bfs.NewSolver[addition.State, int](bfs.WithStatus(os.Stdout))
	_, _ = solver.Solve(addition.New(0, 11))
	// Output:
	// Looking for solution for:
	// 0 (goal 11)
	//
	// Checking for solutions that take    1 moves ... none in         2 new states
	// Checking for solutions that take    2 moves ... solved in 4 tries
	//
	// Moves:
	//   Add 10
	//   Add 1
	//
	// Final state:
	//  11 (goal 11)
}
