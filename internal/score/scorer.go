package score

import (
	"math"

	"github.com/karsk-io/datascribe/internal/analyze"
)

// Penalty factors applied to duplicate and outlier percentages.
const (
	duplicatePenalty = 2.0
	outlierPenalty   = 1.5
)

// balanceScore is a fixed placeholder until class-balance detection
// lands; it still participates in the weighted overall score.
const balanceScore = 90.0

// Scorer turns analyzer results into component scores on a 0-100 scale
// plus a weighted overall score. Component methods cache their value in
// the scores map; OverallScore fills whatever is still missing.
type Scorer struct {
	results  *analyze.Results
	rowCount int
	weights  Weights
	scores   map[string]float64
}

// NewScorer builds a scorer over analyzer results. A nil weights map
// selects DefaultWeights; anything else is validated up front.
func NewScorer(results *analyze.Results, rowCount int, weights Weights) (*Scorer, error) {
	if weights == nil {
		weights = DefaultWeights()
	}
	if err := Validate(weights); err != nil {
		return nil, err
	}
	return &Scorer{
		results:  results,
		rowCount: rowCount,
		weights:  weights.Clone(),
		scores:   make(map[string]float64),
	}, nil
}

// MissingScore penalizes the mean per-column missing percentage. A
// dataset with no missing data scores 100.
func (s *Scorer) MissingScore() float64 {
	mean := 0.0
	if pcts := s.results.MissingPcts(); len(pcts) > 0 {
		sum := 0.0
		for _, p := range pcts {
			sum += p
		}
		mean = sum / float64(len(pcts))
	}
	score := math.Max(0, 100-mean)
	s.scores[MetricMissing] = score
	return score
}

// DuplicatesScore penalizes the duplicate-row percentage at double
// weight.
func (s *Scorer) DuplicatesScore() float64 {
	pct := float64(s.results.Duplicates) / float64(max(1, s.rowCount)) * 100
	score := math.Max(0, 100-pct*duplicatePenalty)
	s.scores[MetricDuplicates] = score
	return score
}

// OutliersScore penalizes the total outlier percentage at 1.5x weight.
func (s *Scorer) OutliersScore() float64 {
	pct := float64(s.results.TotalOutliers()) / float64(max(1, s.rowCount)) * 100
	score := math.Max(0, 100-pct*outlierPenalty)
	s.scores[MetricOutliers] = score
	return score
}

// BalanceScore returns the fixed placeholder balance score.
func (s *Scorer) BalanceScore() float64 {
	s.scores[MetricBalance] = balanceScore
	return balanceScore
}

// OverallScore computes any component not yet cached, in canonical
// order, then combines them with the active weights. The result is
// cached, so repeated calls return the same value.
func (s *Scorer) OverallScore() float64 {
	if overall, ok := s.scores[MetricOverall]; ok {
		return overall
	}
	for _, m := range MetricOrder {
		if _, ok := s.scores[m]; !ok {
			s.compute(m)
		}
	}
	return s.combine()
}

// Weights returns a copy of the active weights.
func (s *Scorer) Weights() Weights {
	return s.weights.Clone()
}

// SetWeights swaps in a new weight map after validation. A failed
// validation leaves weights and scores untouched. If the overall score
// was already computed it is recomputed immediately with the new
// weights.
func (s *Scorer) SetWeights(w Weights) error {
	if err := Validate(w); err != nil {
		return err
	}
	s.weights = w.Clone()
	if _, ok := s.scores[MetricOverall]; ok {
		s.combine()
	}
	return nil
}

// Scores returns a copy of every score computed so far.
func (s *Scorer) Scores() map[string]float64 {
	c := make(map[string]float64, len(s.scores))
	for k, v := range s.scores {
		c[k] = v
	}
	return c
}

func (s *Scorer) compute(metric string) {
	switch metric {
	case MetricMissing:
		s.MissingScore()
	case MetricDuplicates:
		s.DuplicatesScore()
	case MetricOutliers:
		s.OutliersScore()
	case MetricBalance:
		s.BalanceScore()
	}
}

func (s *Scorer) combine() float64 {
	overall := 0.0
	for _, m := range MetricOrder {
		overall += s.scores[m] * s.weights[m]
	}
	s.scores[MetricOverall] = overall
	return overall
}
