// Package metrics exports solver progress as Prometheus metrics by plugging
// a Collector's hooks into bfs options.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bruteforce/bfs"
)

// Outcome label values of bfs_solves_total.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
	OutcomeError      = "error"
)

// Collector holds the solver metrics. It is safe for concurrent solves.
type Collector struct {
	Expansions prometheus.Counter
	Discovered prometheus.Counter
	Levels     prometheus.Counter
	Frontier   prometheus.Gauge
	Solves     *prometheus.CounterVec
	Moves      prometheus.Histogram
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bfs_expansions_total",
			Help: "Configurations whose successors were enumerated.",
		}),
		Discovered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bfs_discovered_total",
			Help: "Successor configurations produced (tries).",
		}),
		Levels: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bfs_levels_total",
			Help: "Levels completed without finding a solution.",
		}),
		Frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bfs_frontier_size",
			Help: "Size of the most recent frontier.",
		}),
		Solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bfs_solves_total",
			Help: "Finished solves by outcome.",
		}, []string{"outcome"}),
		Moves: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bfs_solution_moves",
			Help:    "Length of found solutions in moves.",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.Expansions, c.Discovered, c.Levels, c.Frontier, c.Solves, c.Moves} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Options returns the bfs hooks feeding c.
func (c *Collector) Options() []bfs.Option {
	return []bfs.Option{
		bfs.WithOnExpand(func(int) { c.Expansions.Inc() }),
		bfs.WithOnDiscover(func(int) { c.Discovered.Inc() }),
		bfs.WithOnLevel(func(_, frontier int) {
			c.Levels.Inc()
			c.Frontier.Set(float64(frontier))
		}),
		bfs.WithOnFinish(c.finish),
	}
}

func (c *Collector) finish(o bfs.Outcome) {
	switch {
	case o.Err == nil:
		c.Solves.WithLabelValues(OutcomeSolved).Inc()
		c.Moves.Observe(float64(o.Moves))
	case errors.Is(o.Err, bfs.ErrNoSolution):
		c.Solves.WithLabelValues(OutcomeNoSolution).Inc()
	default:
		c.Solves.WithLabelValues(OutcomeError).Inc()
	}
}
