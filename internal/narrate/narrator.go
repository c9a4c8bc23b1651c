// Package narrate turns analysis results and quality scores into plain
// sentences for reports and terminal output.
package narrate

import (
	"fmt"

	"github.com/karsk-io/datascribe/internal/analyze"
	"github.com/karsk-io/datascribe/internal/score"
)

// Verdict labels an overall score. Band lower bounds are inclusive.
func Verdict(overall float64) string {
	switch {
	case overall >= 90:
		return "Excellent"
	case overall >= 75:
		return "Good"
	case overall >= 50:
		return "Fair"
	default:
		return "Poor"
	}
}

// Generate produces the narrative, in a fixed order: numeric column
// summaries, columns with missing data, columns with outliers, and a
// closing verdict sentence built from scores["overall"]. Column
// sentences follow the order of the results slices.
func Generate(results *analyze.Results, scores map[string]float64) []string {
	var sentences []string

	for _, s := range results.Summary {
		if !s.Numeric {
			continue
		}
		sentences = append(sentences,
			fmt.Sprintf("Column '%s' has mean %.2f and std %.2f.", s.Name, s.Mean, s.Std))
	}

	for _, m := range results.Missing {
		if m.Count == 0 {
			continue
		}
		sentences = append(sentences,
			fmt.Sprintf("Column '%s' has %d missing (%.2f%%).", m.Column, m.Count, m.Pct))
	}

	for _, o := range results.Outliers {
		if o.Count == 0 {
			continue
		}
		sentences = append(sentences,
			fmt.Sprintf("Column '%s' has %d outliers.", o.Column, o.Count))
	}

	overall := scores[score.MetricOverall]
	sentences = append(sentences,
		fmt.Sprintf("Overall data quality: %.2f/100 - %s.", overall, Verdict(overall)))

	return sentences
}
