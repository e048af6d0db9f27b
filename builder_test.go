package nearmiss

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChain(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	f, err := Search(3).
		Limit(12).
		Workers(2).
		ProgressEvery(5).
		Logger(NoopLogger()).
		Metrics(metrics).
		Build()
	require.NoError(t, err)

	res, err := f.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Best)
	assert.EqualValues(t, 9, metrics.CandidateCount.Load())
}

func TestBuilderImmutability(t *testing.T) {
	base := Search(3).Limit(12)
	wide := base.Limit(20)

	f1, err := base.Build()
	require.NoError(t, err)
	f2, err := wide.Build()
	require.NoError(t, err)

	assert.EqualValues(t, 12, f1.Limit(), "deriving a builder must not mutate its parent")
	assert.EqualValues(t, 20, f2.Limit())
}

func TestBuilderDefaults(t *testing.T) {
	// Limit defaults to MinBase: a single-candidate search.
	f, err := Search(3).Build()
	require.NoError(t, err)
	assert.EqualValues(t, MinBase, f.Limit())
	assert.EqualValues(t, 1, f.Total())
}

func TestBuilderInvalid(t *testing.T) {
	_, err := Search(2).Limit(100).Build()
	require.ErrorIs(t, err, ErrInvalidExponent)

	_, err = Search(3).Limit(5).Build()
	require.ErrorIs(t, err, ErrInvalidLimit)
}

func TestMustBuild(t *testing.T) {
	assert.NotPanics(t, func() {
		Search(3).Limit(12).MustBuild()
	})
	assert.Panics(t, func() {
		Search(1).MustBuild()
	})
}
