// Package bfs provides a breadth-first brute-force solver over any puzzle
// implementing puzzle.State, returning a shortest sequence of moves.
//
// What
//
//   - Explore configurations in non-decreasing move count from the start.
//   - Returns a *Path holding:
//   - State: the solved configuration
//   - Moves: move labels from the initial configuration, in order
//   - Supports functional hooks at four stages:
//   - OnExpand   (before a node's successors are enumerated)
//   - OnDiscover (for each produced successor)
//   - OnLevel    (after a level finished without a solution)
//   - OnFinish   (once, with depth, tries and error)
//   - Writes the classic progress text to an optional status sink.
//
// Why
//
//   - Brute-force small puzzles (counters, jugs, sliding tiles) without
//     writing a search loop per puzzle.
//   - Shortest by move count with no heuristic to tune.
//
// Determinism
//
//	The frontier is a slice iterated in insertion order, and successors are
//	consumed in the order NextStates yields them. Among equally short
//	solutions the first one produced wins, so results are reproducible for a
//	deterministic puzzle.
//
// Visited set
//
//	Each Solve call creates a fresh puzzle.Seen shared by every expansion of
//	that call. A key enters the set at most once, when its configuration is
//	first produced, so no configuration is expanded twice (the start
//	included, when it implements puzzle.Keyer) and the search terminates on
//	any finite state space, cycles included.
//
// Complexity (V = reachable configurations, E = moves between them)
//
//   - Time:   O(V + E) successor enumerations and goal tests
//   - Memory: O(V · d) for the frontier, d being the solution depth, since
//     every node owns a copy of its move list
//
// Usage
//
//	path, err := bfs.Solve[addition.State, int](addition.New(0, 42))
//	var none *bfs.NoSolutionError
//	switch {
//	case errors.As(err, &none):
//		// state space exhausted after none.Tries successors
//	case err != nil:
//		// ErrOptionViolation, ErrDepthLimit or context error
//	}
//
//	// Reusable solver with options:
//	s := bfs.NewSolver[addition.State, int](
//		bfs.WithStatus(os.Stdout),
//		bfs.WithContext(ctx),
//		bfs.WithMaxDepth(20),
//		bfs.WithOnLevel(func(depth, frontier int) { /* ... */ }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, discarded status and logs, no depth limit, no-op hooks.
//   - WithContext(ctx):      cancellation, checked before every expansion.
//   - WithStatus(w):         progress text sink.
//   - WithLogger(l):         structured debug records.
//   - WithMaxDepth(d):       give up after d moves (>0).
//   - WithOnExpand(fn), WithOnDiscover(fn), WithOnLevel(fn), WithOnFinish(fn): hooks.
//
// Errors
//
//   - *NoSolutionError (errors.Is ErrNoSolution) when the frontier empties.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrDepthLimit        if paths reached MaxDepth moves unsolved (the last frontier is not expanded).
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// A puzzle that panics (for example a type embedding puzzle.Unimplemented
// without overriding NextStates) panics through Solve unchanged.
package bfs
