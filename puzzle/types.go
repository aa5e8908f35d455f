package puzzle

import (
	"errors"
	"iter"
)

// ErrUnimplemented is carried by the panic raised when a required State
// method was not provided by the puzzle author.
var ErrUnimplemented = errors.New("puzzle: method not implemented")

// Goal reports whether a configuration satisfies the puzzle.
type Goal interface {
	// Solved must be a pure function of the configuration.
	Solved() bool
}

// State is one configuration of a puzzle whose successors are of type S and
// whose visited-set key is K.
//
// S is normally the implementing type itself:
//
//	type Board struct{ ... }
//	func (b Board) NextStates(seen *puzzle.Seen[string]) iter.Seq2[string, Board]
type State[S any, K comparable] interface {
	Goal

	// NextStates yields a (move, successor) pair for every successor whose
	// key was newly added to seen. Successors already in seen are skipped.
	NextStates(seen *Seen[K]) iter.Seq2[string, S]
}

// Keyer is implemented by configurations that can report their own
// visited-set key. The key type must match the solver's K exactly; assert
// it at compile time with
//
//	var _ puzzle.Keyer[MyKey] = MyState{}
type Keyer[K comparable] interface {
	Key() K
}
