package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bruteforce/bfs"
	"github.com/katalvlaran/bruteforce/examples/addition"
	"github.com/katalvlaran/bruteforce/metrics"
)

func TestCollector_Solved(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	// 0 → {10, 1}; 10 is past the goal, 1 → {11, 2}
	_, err = bfs.Solve[addition.State, int](addition.New(0, 2), c.Options()...)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(c.Expansions))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.Discovered))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Levels))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Frontier))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Solves.WithLabelValues(metrics.OutcomeSolved)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.Moves))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestCollector_Outcomes(t *testing.T) {
	c, err := metrics.NewCollector(nil)
	require.NoError(t, err)

	_, err = bfs.Solve[addition.State, int](addition.New(3, 2), c.Options()...)
	require.ErrorIs(t, err, bfs.ErrNoSolution)

	opts := append(c.Options(), bfs.WithMaxDepth(1))
	_, err = bfs.Solve[addition.State, int](addition.New(0, 42), opts...)
	require.ErrorIs(t, err, bfs.ErrDepthLimit)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Solves.WithLabelValues(metrics.OutcomeNoSolution)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Solves.WithLabelValues(metrics.OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Solves.WithLabelValues(metrics.OutcomeSolved)))
}

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewCollector(reg)
	require.NoError(t, err)

	_, err = metrics.NewCollector(reg)
	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}
