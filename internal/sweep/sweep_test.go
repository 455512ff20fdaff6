package sweep

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

func TestRunCompletesAllCareers(t *testing.T) {
	result, err := Run(context.Background(), Config{Careers: 5, MaxTurns: 8, Seed: 42}, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 5, result.Careers)
	require.Len(t, result.Outcomes, 5)

	total := 0
	for _, n := range result.WinDistribution {
		total += n
	}
	assert.Equal(t, 5, total)

	for _, outcome := range result.Outcomes {
		assert.Greater(t, outcome.FinalPower, 0)
		assert.Greater(t, outcome.Training, 0)
		assert.Equal(t, outcome.RacesRun, len(outcome.Results))
		assert.GreaterOrEqual(t, outcome.RacesWon, 0)
		assert.LessOrEqual(t, outcome.RacesWon, outcome.RacesRun)
	}

	assert.GreaterOrEqual(t, result.PowerPercentiles["p90"], result.PowerPercentiles["p50"])
	assert.GreaterOrEqual(t, result.PowerPercentiles["p50"], result.PowerPercentiles["p10"])
}

func TestRunReproducibleFromSeed(t *testing.T) {
	first, err := Run(context.Background(), Config{Careers: 3, MaxTurns: 8, Seed: 7}, quietLogger())
	require.NoError(t, err)
	second, err := Run(context.Background(), Config{Careers: 3, MaxTurns: 8, Seed: 7}, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, first.MeanFinalPower, second.MeanFinalPower)
	assert.Equal(t, first.MeanWins, second.MeanWins)
	assert.True(t, first.TotalEarnings.Equal(second.TotalEarnings))
	for i := range first.Outcomes {
		assert.Equal(t, first.Outcomes[i].FinalStats, second.Outcomes[i].FinalStats)
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Careers: 3, Seed: 1}, quietLogger())
	require.ErrorIs(t, err, context.Canceled)
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, mean)
	assert.Equal(t, 2.0, std)

	mean, std = meanStd(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	assert.Equal(t, 10.0, percentile(values, 0.10))
	assert.Equal(t, 50.0, percentile(values, 0.50))
	assert.Equal(t, 90.0, percentile(values, 0.90))
	assert.Zero(t, percentile(nil, 0.5))
}
