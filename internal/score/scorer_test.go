package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karsk-io/datascribe/internal/analyze"
)

func testResults() *analyze.Results {
	return &analyze.Results{
		Missing: []analyze.MissingStat{
			{Column: "a", Pct: 0},
			{Column: "b", Pct: 10},
			{Column: "c", Pct: 20},
		},
		Duplicates: 10,
		Outliers: []analyze.OutlierStat{
			{Column: "a", Count: 2},
			{Column: "b", Count: 3},
		},
	}
}

func TestMissingScore(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, s.MissingScore(), 1e-9)
}

func TestMissingScoreNoMissingData(t *testing.T) {
	s, err := NewScorer(&analyze.Results{}, 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, s.MissingScore(), 1e-9)
}

func TestDuplicatesScore(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, s.DuplicatesScore(), 1e-9)
}

func TestDuplicatesScoreClampsAtZero(t *testing.T) {
	s, err := NewScorer(&analyze.Results{Duplicates: 60}, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.DuplicatesScore())
}

func TestDuplicatesScoreZeroRows(t *testing.T) {
	s, err := NewScorer(&analyze.Results{Duplicates: 1}, 0, nil)
	require.NoError(t, err)
	// Row count is floored at 1, so pct = 100 and the penalty clamps.
	assert.Equal(t, 0.0, s.DuplicatesScore())
}

func TestOutliersScore(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	assert.InDelta(t, 92.5, s.OutliersScore(), 1e-9)
}

func TestBalanceScoreIsPlaceholder(t *testing.T) {
	s, err := NewScorer(&analyze.Results{}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, s.BalanceScore())

	s2, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 90.0, s2.BalanceScore())
}

func TestOverallScoreDefaultWeights(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)

	overall := s.OverallScore()
	assert.InDelta(t, 89.125, overall, 1e-9)

	scores := s.Scores()
	assert.InDelta(t, 90.0, scores[MetricMissing], 1e-9)
	assert.InDelta(t, 80.0, scores[MetricDuplicates], 1e-9)
	assert.InDelta(t, 92.5, scores[MetricOutliers], 1e-9)
	assert.InDelta(t, 90.0, scores[MetricBalance], 1e-9)
	assert.InDelta(t, 89.125, scores[MetricOverall], 1e-9)
}

func TestOverallScoreIdempotent(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)

	first := s.OverallScore()
	second := s.OverallScore()
	assert.Equal(t, first, second)
}

func TestSetWeightsRecomputesOverall(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	require.InDelta(t, 89.125, s.OverallScore(), 1e-9)

	equal := Weights{
		MetricMissing:    0.25,
		MetricDuplicates: 0.25,
		MetricOutliers:   0.25,
		MetricBalance:    0.25,
	}
	require.NoError(t, s.SetWeights(equal))

	assert.InDelta(t, 88.125, s.Scores()[MetricOverall], 1e-9)
	assert.InDelta(t, 88.125, s.OverallScore(), 1e-9)
}

func TestSetWeightsBeforeOverallDoesNotScore(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)

	require.NoError(t, s.SetWeights(DefaultWeights()))
	_, ok := s.Scores()[MetricOverall]
	assert.False(t, ok)
}

func TestSetWeightsInvalidLeavesStateAlone(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	require.InDelta(t, 89.125, s.OverallScore(), 1e-9)

	bad := Weights{MetricMissing: 0.5, MetricDuplicates: 0.5}
	err = s.SetWeights(bad)
	require.ErrorIs(t, err, ErrInvalidWeights)

	assert.InDelta(t, 89.125, s.Scores()[MetricOverall], 1e-9)
	assert.InDelta(t, 0.35, s.Weights()[MetricMissing], 1e-9)
}

func TestNewScorerRejectsInvalidWeights(t *testing.T) {
	bad := Weights{
		MetricMissing:    0.1,
		MetricDuplicates: 0.1,
		MetricOutliers:   0.1,
		MetricBalance:    0.2,
	}
	_, err := NewScorer(testResults(), 100, bad)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "0.5000")
}

func TestScoresReturnsCopy(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)
	s.OverallScore()

	scores := s.Scores()
	scores[MetricOverall] = -1

	assert.InDelta(t, 89.125, s.Scores()[MetricOverall], 1e-9)
}

func TestWeightsReturnsCopy(t *testing.T) {
	s, err := NewScorer(testResults(), 100, nil)
	require.NoError(t, err)

	w := s.Weights()
	w[MetricMissing] = 99

	assert.InDelta(t, 0.35, s.Weights()[MetricMissing], 1e-9)
}
