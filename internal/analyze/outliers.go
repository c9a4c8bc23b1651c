package analyze

import (
	"sort"

	"github.com/karsk-io/datascribe/internal/dataset"
)

// fenceFactor is the Tukey IQR multiplier for outlier fences.
const fenceFactor = 1.5

// OutlierStats counts values outside the Tukey fences per numeric
// column. Every numeric column gets an entry, clean ones included.
func OutlierStats(f *dataset.Frame) []OutlierStat {
	var stats []OutlierStat
	for _, name := range f.NumericColumns() {
		stats = append(stats, OutlierStat{
			Column: name,
			Count:  countOutliers(f.NumericColumn(name)),
		})
	}
	return stats
}

func countOutliers(vals []float64) int {
	if len(vals) < 2 {
		return 0
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1
	lower := q1 - fenceFactor*iqr
	upper := q3 + fenceFactor*iqr

	count := 0
	for _, v := range vals {
		if v < lower || v > upper {
			count++
		}
	}
	return count
}
