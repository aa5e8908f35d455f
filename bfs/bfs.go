// Package bfs provides a breadth-first brute-force solver for puzzles
// described by puzzle.State, returning a shortest sequence of moves from
// the initial configuration to a solved one.
//
// The search is level-synchronous: every configuration reachable in L moves
// is produced and goal-tested before any configuration at L+1 moves exists,
// so the first solved configuration found is a shortest solution.
package bfs

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/katalvlaran/bruteforce/puzzle"
)

// Solver runs breadth-first searches over configurations of type S whose
// visited-set key is K. A Solver has no required configuration and may be
// reused; every Solve call gets its own visited set.
type Solver[S puzzle.State[S, K], K comparable] struct {
	opts []Option
}

// NewSolver returns a Solver applying opts to every Solve call.
func NewSolver[S puzzle.State[S, K], K comparable](opts ...Option) *Solver[S, K] {
	return &Solver[S, K]{opts: opts}
}

// Solve runs a one-shot search from initial; see (*Solver).Solve.
func Solve[S puzzle.State[S, K], K comparable](initial S, opts ...Option) (*Path[S], error) {
	return NewSolver[S, K](opts...).Solve(initial)
}

// walker encapsulates mutable search state for one Solve call.
type walker[S puzzle.State[S, K], K comparable] struct {
	opts     Options
	log      *slog.Logger
	seen     *puzzle.Seen[K]
	frontier []*Path[S]
	depth    int
	tries    int
}

// Solve finds a shortest path from initial to a solved configuration.
// Returns a *NoSolutionError (matching ErrNoSolution) when the state space
// is exhausted, ErrOptionViolation for bad options, ErrDepthLimit when
// WithMaxDepth stopped the search, or the context error on cancellation.
// A panic raised by the puzzle (e.g. puzzle.ErrUnimplemented) is not recovered.
func (s *Solver[S, K]) Solve(initial S) (*Path[S], error) {
	o := DefaultOptions()
	for _, opt := range s.opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, K]{
		opts: o,
		log:  o.Logger,
		seen: puzzle.NewSeen[K](),
	}
	// a start that knows its key is never rediscovered
	if k, ok := any(initial).(puzzle.Keyer[K]); ok {
		w.seen.Add(k.Key())
	} else if t := reflect.TypeOf(any(initial)); t != nil {
		if m, ok := t.MethodByName("Key"); ok {
			w.log.Warn("bfs: start has a Key method of the wrong type, not seeding the visited set",
				"method", m.Type.String(), "want", reflect.TypeFor[K]().String())
		}
	}

	path, err := w.run(&Path[S]{State: initial})
	moves := -1
	if err == nil {
		moves = path.Len()
	}
	w.log.Debug("bfs: finished", "depth", w.depth, "tries", w.tries, "moves", moves, "err", err)
	o.OnFinish(Outcome{Depth: w.depth, Tries: w.tries, Moves: moves, Err: err})

	return path, err
}

// run drives the level loop until a solution is found or the frontier is empty.
func (w *walker[S, K]) run(start *Path[S]) (*Path[S], error) {
	w.statusf("Looking for solution for:\n%v\n\n", start.State)

	if start.Solved() {
		w.statusf("Good news, its already solved\n")
		return start, nil
	}

	w.frontier = []*Path[S]{start}
	for len(w.frontier) > 0 {
		if w.opts.MaxDepth > 0 && w.depth >= w.opts.MaxDepth {
			return nil, fmt.Errorf("%w: no solution within %d moves after %d tries",
				ErrDepthLimit, w.opts.MaxDepth, w.tries)
		}
		w.statusf("Checking for solutions that take %4d moves ... ", w.depth+1)

		next, solved, err := w.expandLevel()
		if err != nil {
			return nil, err
		}
		if solved != nil {
			w.depth++
			w.report(solved)
			return solved, nil
		}

		w.depth++
		w.frontier = next
		w.statusf("none in %9d new states\n", len(next))
		w.log.Debug("bfs: level exhausted", "depth", w.depth, "frontier", len(next), "tries", w.tries)
		w.opts.OnLevel(w.depth, len(next))
	}

	return nil, &NoSolutionError{Tries: w.tries}
}

// expandLevel enumerates successors of every frontier node in order and
// goal-tests each one as it is produced. It returns either the first solved
// path or the complete next frontier.
func (w *walker[S, K]) expandLevel() ([]*Path[S], *Path[S], error) {
	var next []*Path[S]
	for _, node := range w.frontier {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return nil, nil, w.opts.Ctx.Err()
		default:
		}

		w.opts.OnExpand(w.depth)
		for move, state := range node.State.NextStates(w.seen) {
			w.tries++
			w.opts.OnDiscover(w.depth + 1)

			child := node.extend(move, state)
			if child.Solved() {
				return nil, child, nil
			}
			next = append(next, child)
		}
	}

	return next, nil, nil
}

// report writes the winning moves and final configuration to the status sink.
func (w *walker[S, K]) report(p *Path[S]) {
	w.statusf("solved in %d tries\n\nMoves:\n", w.tries)
	for _, m := range p.Moves {
		w.statusf("  %s\n", m)
	}
	w.statusf("\nFinal state:\n %v\n", p.State)
}

// statusf writes progress text; sink errors never affect the search.
func (w *walker[S, K]) statusf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.opts.Status, format, args...)
}
