package score

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Metric names used as keys in weight and score maps.
const (
	MetricMissing    = "missing"
	MetricDuplicates = "duplicates"
	MetricOutliers   = "outliers"
	MetricBalance    = "balance"
	MetricOverall    = "overall"
)

// MetricOrder is the canonical component order for computation and
// display.
var MetricOrder = []string{MetricMissing, MetricDuplicates, MetricOutliers, MetricBalance}

// Weight sums within this band of 1.0 are accepted.
const (
	weightSumMin = 0.99
	weightSumMax = 1.01
)

// ErrInvalidWeights wraps every weight validation failure.
var ErrInvalidWeights = errors.New("invalid weights")

// Weights maps metric names to their share of the overall score.
type Weights map[string]float64

// DefaultWeights returns the standard metric weighting.
func DefaultWeights() Weights {
	return Weights{
		MetricMissing:    0.35,
		MetricDuplicates: 0.15,
		MetricOutliers:   0.25,
		MetricBalance:    0.25,
	}
}

// Clone returns an independent copy.
func (w Weights) Clone() Weights {
	c := make(Weights, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

// Validate checks a weight map: the key set must be exactly the four
// metrics, the sum must land in [0.99, 1.01], and no weight may be
// negative. Checks run in that order and the first failure wins.
func Validate(w Weights) error {
	var missing, extra []string
	for _, m := range MetricOrder {
		if _, ok := w[m]; !ok {
			missing = append(missing, m)
		}
	}
	for k := range w {
		if !isMetric(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	if len(missing) > 0 || len(extra) > 0 {
		var parts []string
		if len(missing) > 0 {
			parts = append(parts, fmt.Sprintf("missing keys [%s]", strings.Join(missing, ", ")))
		}
		if len(extra) > 0 {
			parts = append(parts, fmt.Sprintf("extra keys [%s]", strings.Join(extra, ", ")))
		}
		return fmt.Errorf("%w: %s (required keys: %s)",
			ErrInvalidWeights, strings.Join(parts, ", "), strings.Join(MetricOrder, ", "))
	}

	sum := 0.0
	for _, m := range MetricOrder {
		sum += w[m]
	}
	if sum < weightSumMin || sum > weightSumMax {
		return fmt.Errorf("%w: weights must sum to 1.0, got %.4f", ErrInvalidWeights, sum)
	}

	for _, m := range MetricOrder {
		if w[m] < 0 {
			return fmt.Errorf("%w: weight for %q must be non-negative, got %v", ErrInvalidWeights, m, w[m])
		}
	}
	return nil
}

func isMetric(name string) bool {
	for _, m := range MetricOrder {
		if m == name {
			return true
		}
	}
	return false
}
