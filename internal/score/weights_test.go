package score

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaultWeights(t *testing.T) {
	require.NoError(t, Validate(DefaultWeights()))
}

func TestValidateSumTooLow(t *testing.T) {
	w := Weights{
		MetricMissing:    0.1,
		MetricDuplicates: 0.1,
		MetricOutliers:   0.1,
		MetricBalance:    0.2,
	}
	err := Validate(w)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "must sum to 1.0")
	assert.Contains(t, err.Error(), "0.5000")
}

func TestValidateSumTooHigh(t *testing.T) {
	w := Weights{
		MetricMissing:    0.5,
		MetricDuplicates: 0.5,
		MetricOutliers:   0.25,
		MetricBalance:    0.25,
	}
	err := Validate(w)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "1.5000")
}

func TestValidateSumTolerance(t *testing.T) {
	w := Weights{
		MetricMissing:    0.35,
		MetricDuplicates: 0.15,
		MetricOutliers:   0.25,
		MetricBalance:    0.2449,
	}
	// 0.9949 sits inside the accepted [0.99, 1.01] band.
	require.NoError(t, Validate(w))
}

func TestValidateMissingAndExtraKeys(t *testing.T) {
	w := Weights{
		MetricMissing:    0.35,
		MetricDuplicates: 0.15,
		MetricOutliers:   0.25,
		"bias":           0.25,
	}
	err := Validate(w)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "missing keys [balance]")
	assert.Contains(t, err.Error(), "extra keys [bias]")
	assert.Contains(t, err.Error(), "required keys: missing, duplicates, outliers, balance")
}

func TestValidateNegativeWeight(t *testing.T) {
	w := Weights{
		MetricMissing:    -0.1,
		MetricDuplicates: 0.45,
		MetricOutliers:   0.35,
		MetricBalance:    0.3,
	}
	err := Validate(w)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestValidateNilWeights(t *testing.T) {
	err := Validate(nil)
	require.ErrorIs(t, err, ErrInvalidWeights)
	assert.Contains(t, err.Error(), "missing keys [missing, duplicates, outliers, balance]")
}

func TestWeightsClone(t *testing.T) {
	w := DefaultWeights()
	c := w.Clone()
	c[MetricMissing] = 1.0

	if diff := cmp.Diff(DefaultWeights(), w); diff != "" {
		t.Errorf("clone mutated the source (-want +got):\n%s", diff)
	}
}
