// Package puzzle defines the contract a puzzle author implements so that
// the bfs solver can brute-force it.
//
// What
//
//   - State[S, K]: one configuration of a puzzle. It answers the goal test
//     (Solved) and enumerates legal successors (NextStates).
//   - Seen[K]: the visited set shared by every expansion of one solve call.
//     Puzzle authors insert the key of each successor before yielding it,
//     and yield only successors whose key was not already present.
//   - Keyer[K]: optional. A configuration that can report its own key lets
//     the solver mark the start as visited.
//   - Unimplemented[S, K]: embeddable base whose methods panic with
//     ErrUnimplemented, for authors who build a State incrementally.
//
// Contract
//
//	Configurations are immutable. A move always builds a new value; older
//	path nodes keep referencing the configuration they were created with.
//
//	NextStates returns an iter.Seq2 of (move label, successor). It must be
//	finite for a single call and must stop when yield returns false.
//
// Usage
//
//	type Counter struct{ value, goal int }
//
//	func (c Counter) Solved() bool { return c.value == c.goal }
//
//	func (c Counter) NextStates(seen *puzzle.Seen[int]) iter.Seq2[string, Counter] {
//		return func(yield func(string, Counter) bool) {
//			if next := c.value + 1; seen.Add(next) {
//				yield("Add 1", Counter{next, c.goal})
//			}
//		}
//	}
package puzzle
