// Package bfs provides tunable options, result types and error definitions
// for the breadth-first puzzle solver.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/bruteforce/internal/logging"
	"github.com/katalvlaran/bruteforce/puzzle"
)

// Sentinel errors for solver execution.
var (
	// ErrNoSolution is matched by every *NoSolutionError.
	ErrNoSolution = errors.New("bfs: no solution")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrDepthLimit is returned when WithMaxDepth stops the search because
	// paths reached the limit while the frontier was still non-empty. The
	// frontier at the limit is not expanded, so this is reported even when
	// none of its configurations has an unseen successor.
	ErrDepthLimit = errors.New("bfs: depth limit reached")
)

// NoSolutionError reports that the frontier became empty without reaching
// a solved configuration. It is an expected outcome, not a defect.
type NoSolutionError struct {
	// Tries is the number of successors produced during the search.
	Tries int
}

// Error implements error.
func (e *NoSolutionError) Error() string {
	return fmt.Sprintf("bfs: no solution in %d tries, there are no more states to analyze", e.Tries)
}

// Is makes errors.Is(err, ErrNoSolution) hold.
func (e *NoSolutionError) Is(target error) bool {
	return target == ErrNoSolution
}

// Option configures solver behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a solve.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked before every expansion.
	Ctx context.Context

	// Status receives human-readable progress text. Write errors are ignored.
	Status io.Writer

	// Logger receives structured debug records.
	Logger *slog.Logger

	// MaxDepth, if > 0, stops the search with ErrDepthLimit once paths
	// reach that many moves and are still unsolved.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnExpand is called before successors of a node at depth are enumerated.
	OnExpand func(depth int)

	// OnDiscover is called for every successor produced at depth.
	OnDiscover func(depth int)

	// OnLevel is called after a level finished without a solution.
	// depth is the move count of the new frontier, frontier its size.
	OnLevel func(depth, frontier int)

	// OnFinish is called exactly once when Solve returns, panics excluded.
	OnFinish func(Outcome)

	// internal error recorded during option parsing
	err error
}

// Outcome summarizes a finished solve for OnFinish.
type Outcome struct {
	// Depth is the deepest level whose nodes were produced.
	Depth int
	// Tries is the number of successors produced.
	Tries int
	// Moves is the solution length, or -1 when Err != nil.
	Moves int
	// Err is nil on success.
	Err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - status text discarded
//   - logger discarding every record
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Status:     io.Discard,
		Logger:     logging.NewNop(),
		MaxDepth:   0,
		OnExpand:   func(int) {},
		OnDiscover: func(int) {},
		OnLevel:    func(int, int) {},
		OnFinish:   func(Outcome) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStatus sends progress text to w.
func WithStatus(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Status = w
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth stops the search once paths reach d moves. Configurations
// d moves away are goal-tested but never expanded, so a search that would
// have run dry at depth d+1 still ends with ErrDepthLimit.
//
//	d > 0: limit to d moves
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnExpand registers a callback run before each successor enumeration.
func WithOnExpand(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run for each produced successor.
func WithOnDiscover(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnLevel registers a callback run after each unsolved level.
func WithOnLevel(fn func(depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithOnFinish registers a callback run once per Solve.
func WithOnFinish(fn func(Outcome)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinish = fn
		}
	}
}

// Path is a configuration paired with the moves that reach it from the
// initial configuration. A Path is never mutated after creation.
type Path[S puzzle.Goal] struct {
	State S
	Moves []string
}

// Solved reports whether the final configuration is a goal.
func (p *Path[S]) Solved() bool {
	return p.State.Solved()
}

// Len returns the number of moves.
func (p *Path[S]) Len() int {
	return len(p.Moves)
}

// String joins the moves with ", ".
func (p *Path[S]) String() string {
	return strings.Join(p.Moves, ", ")
}

// extend returns the child path reached by move. The parent's moves are
// copied so siblings never share a backing array.
func (p *Path[S]) extend(move string, next S) *Path[S] {
	moves := make([]string, len(p.Moves)+1)
	copy(moves, p.Moves)
	moves[len(p.Moves)] = move

	return &Path[S]{State: next, Moves: moves}
}
