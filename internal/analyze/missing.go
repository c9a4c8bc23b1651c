package analyze

import "github.com/karsk-io/datascribe/internal/dataset"

// MissingStats counts null cells per column. Percentages are over the
// row count; an empty frame yields zero percentages.
func MissingStats(f *dataset.Frame) []MissingStat {
	stats := make([]MissingStat, len(f.Columns))
	for i, name := range f.Columns {
		stats[i] = MissingStat{Column: name}
	}
	for _, row := range f.Rows {
		for i := range f.Columns {
			if row[i] == "" {
				stats[i].Count++
			}
		}
	}
	if f.Len() > 0 {
		for i := range stats {
			stats[i].Pct = float64(stats[i].Count) / float64(f.Len()) * 100
		}
	}
	return stats
}
