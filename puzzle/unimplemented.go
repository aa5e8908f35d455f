package puzzle

import (
	"fmt"
	"iter"
)

// Unimplemented can be embedded in a configuration type to satisfy State
// before every method is written. Each method it provides panics with an
// error wrapping ErrUnimplemented on first use. Override both methods.
//
//	type Draft struct {
//		puzzle.Unimplemented[Draft, int]
//	}
//
//	func (Draft) Solved() bool { return false }
type Unimplemented[S any, K comparable] struct{}

// Solved panics: the embedding type did not provide a goal test.
func (Unimplemented[S, K]) Solved() bool {
	panic(fmt.Errorf("%w: Solved", ErrUnimplemented))
}

// NextStates panics: the embedding type did not provide successor enumeration.
func (Unimplemented[S, K]) NextStates(*Seen[K]) iter.Seq2[string, S] {
	panic(fmt.Errorf("%w: NextStates", ErrUnimplemented))
}
