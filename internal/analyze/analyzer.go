package analyze

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/karsk-io/datascribe/internal/dataset"
)

// Predicate selects which columns an Analyzer summarizes, by name and
// inferred type tag.
type Predicate func(name, typ string) bool

// AnyColumn keeps every column.
func AnyColumn(string, string) bool { return true }

// IsNumeric keeps int and float columns.
func IsNumeric(_ string, typ string) bool {
	return typ == dataset.TypeInt || typ == dataset.TypeFloat
}

// IsCategorical keeps string and date columns.
func IsCategorical(_ string, typ string) bool {
	return typ == dataset.TypeString || typ == dataset.TypeDate
}

// Analyzer computes describe-style summaries over the columns a
// predicate selects. The numeric and categorical variants are the same
// machinery with different predicates.
type Analyzer struct {
	frame   *dataset.Frame
	include Predicate
}

// New summarizes the full dataset.
func New(frame *dataset.Frame) *Analyzer {
	return &Analyzer{frame: frame, include: AnyColumn}
}

// NewNumeric summarizes int/float columns only.
func NewNumeric(frame *dataset.Frame) *Analyzer {
	return &Analyzer{frame: frame, include: IsNumeric}
}

// NewCategorical summarizes string/date columns only.
func NewCategorical(frame *dataset.Frame) *Analyzer {
	return &Analyzer{frame: frame, include: IsCategorical}
}

// NewWith summarizes whatever the given predicate selects.
func NewWith(frame *dataset.Frame, include Predicate) *Analyzer {
	return &Analyzer{frame: frame, include: include}
}

// RunAll executes the analyzer and wraps its summary in a Results.
func (a *Analyzer) RunAll() *Results {
	return &Results{Summary: a.Summarize()}
}

// Summarize returns one ColumnSummary per selected column, in frame
// column order.
func (a *Analyzer) Summarize() []ColumnSummary {
	types := a.frame.Types()
	var out []ColumnSummary
	for i, name := range a.frame.Columns {
		if !a.include(name, types[i]) {
			continue
		}
		out = append(out, summarizeColumn(a.frame, name, types[i]))
	}
	return out
}

func summarizeColumn(f *dataset.Frame, name, typ string) ColumnSummary {
	if typ == dataset.TypeInt || typ == dataset.TypeFloat {
		return summarizeNumeric(f, name, typ)
	}
	return summarizeCategorical(f, name, typ)
}

func summarizeNumeric(f *dataset.Frame, name, typ string) ColumnSummary {
	vals := f.NumericColumn(name)
	s := ColumnSummary{
		Name:      name,
		Type:      typ,
		Count:     len(vals),
		NullCount: f.Len() - len(vals),
		Numeric:   true,
	}
	if len(vals) == 0 {
		return s
	}

	s.Mean = stat.Mean(vals, nil)
	if len(vals) > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	s.Min = fmt.Sprintf("%.6g", floats.Min(vals))
	s.Max = fmt.Sprintf("%.6g", floats.Max(vals))

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Q25 = quantile(sorted, 0.25)
	s.Q50 = quantile(sorted, 0.50)
	s.Q75 = quantile(sorted, 0.75)
	return s
}

func summarizeCategorical(f *dataset.Frame, name, typ string) ColumnSummary {
	col, _ := f.Column(name)
	s := ColumnSummary{Name: name, Type: typ}

	counts := make(map[string]int)
	for _, cell := range col {
		if cell == "" {
			s.NullCount++
			continue
		}
		s.Count++
		counts[cell]++
		if counts[cell] > s.Freq {
			s.Freq = counts[cell]
			s.Top = cell
		}
	}

	s.Unique = len(counts)
	if len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s.Min = keys[0]
		s.Max = keys[len(keys)-1]
	}
	return s
}

// quantile interpolates linearly between order statistics; vals must be
// sorted ascending.
func quantile(vals []float64, q float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	if len(vals) == 1 {
		return vals[0]
	}

	index := q * float64(len(vals)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return vals[lower]
	}

	weight := index - float64(lower)
	return vals[lower]*(1-weight) + vals[upper]*weight
}
