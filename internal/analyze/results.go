package analyze

// ColumnSummary holds describe-style statistics for one column. Numeric
// marks whether Mean/Std/quantiles are meaningful; Unique/Top/Freq are
// filled for categorical columns.
type ColumnSummary struct {
	Name      string
	Type      string
	Count     int
	NullCount int
	Numeric   bool
	Mean      float64
	Std       float64
	Min       string
	Q25       float64
	Q50       float64
	Q75       float64
	Max       string
	Unique    int
	Top       string
	Freq      int
}

// MissingStat reports null cells for one column. Every column gets an
// entry, including clean ones, so downstream averages see the zeros.
type MissingStat struct {
	Column string
	Count  int
	Pct    float64
}

// OutlierStat reports values outside the Tukey fences for one numeric
// column.
type OutlierStat struct {
	Column string
	Count  int
}

// Results bundles everything the analyzers produce for one dataset.
// Slices keep column order so narration and reports stay deterministic.
type Results struct {
	Summary    []ColumnSummary
	Missing    []MissingStat
	Duplicates int
	Outliers   []OutlierStat
}

// Merge folds other into r, keyed by column name: colliding entries are
// replaced in place, new ones appended, so r's order wins and other's
// additions follow. Returns r for chaining.
func (r *Results) Merge(other *Results) *Results {
	if other == nil {
		return r
	}
	for _, s := range other.Summary {
		if i := summaryIndex(r.Summary, s.Name); i >= 0 {
			r.Summary[i] = s
		} else {
			r.Summary = append(r.Summary, s)
		}
	}
	for _, m := range other.Missing {
		if i := missingIndex(r.Missing, m.Column); i >= 0 {
			r.Missing[i] = m
		} else {
			r.Missing = append(r.Missing, m)
		}
	}
	for _, o := range other.Outliers {
		if i := outlierIndex(r.Outliers, o.Column); i >= 0 {
			r.Outliers[i] = o
		} else {
			r.Outliers = append(r.Outliers, o)
		}
	}
	if other.Duplicates != 0 {
		r.Duplicates = other.Duplicates
	}
	return r
}

// TotalOutliers sums outlier counts across columns.
func (r *Results) TotalOutliers() int {
	total := 0
	for _, o := range r.Outliers {
		total += o.Count
	}
	return total
}

// MissingPcts returns the per-column missing percentages in order.
func (r *Results) MissingPcts() []float64 {
	pcts := make([]float64, len(r.Missing))
	for i, m := range r.Missing {
		pcts[i] = m.Pct
	}
	return pcts
}

func summaryIndex(s []ColumnSummary, name string) int {
	for i := range s {
		if s[i].Name == name {
			return i
		}
	}
	return -1
}

func missingIndex(s []MissingStat, name string) int {
	for i := range s {
		if s[i].Column == name {
			return i
		}
	}
	return -1
}

func outlierIndex(s []OutlierStat, name string) int {
	for i := range s {
		if s[i].Column == name {
			return i
		}
	}
	return -1
}
