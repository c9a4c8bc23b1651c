// Package report renders pipeline outcomes as markdown documents and
// HTML chart pages.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/karsk-io/datascribe/internal/analyze"
	"github.com/karsk-io/datascribe/internal/narrate"
	"github.com/karsk-io/datascribe/internal/score"
)

// Meta carries the run-level facts printed in the report header.
type Meta struct {
	RunID       string
	Path        string
	FileSize    int64
	Rows        int
	Cols        int
	GeneratedAt time.Time
	Elapsed     time.Duration
}

// Report bundles everything a rendering needs.
type Report struct {
	Meta      Meta
	Results   *analyze.Results
	Scores    map[string]float64
	Narrative []string
	Columns   []string
	Preview   [][]string
}

// Markdown renders the full report document.
func (r *Report) Markdown() string {
	var b strings.Builder

	b.WriteString("# Data Quality Report\n\n")
	fmt.Fprintf(&b, "- File: `%s` (%s)\n", r.Meta.Path, humanize.Bytes(uint64(r.Meta.FileSize)))
	fmt.Fprintf(&b, "- Rows: %s | Columns: %d\n", humanize.Comma(int64(r.Meta.Rows)), r.Meta.Cols)
	fmt.Fprintf(&b, "- Run: `%s`\n", r.Meta.RunID)
	if !r.Meta.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "- Generated: %s\n", r.Meta.GeneratedAt.Format(time.RFC3339))
	}
	if r.Meta.Elapsed > 0 {
		fmt.Fprintf(&b, "- Elapsed: %s\n", r.Meta.Elapsed.Round(time.Millisecond))
	}
	b.WriteString("\n")

	r.writeNarrative(&b)
	r.writeScores(&b)
	r.writeSummaries(&b)
	r.writeMissing(&b)
	r.writeOutliers(&b)
	r.writePreview(&b)

	return b.String()
}

func (r *Report) writeNarrative(b *strings.Builder) {
	if len(r.Narrative) == 0 {
		return
	}
	b.WriteString("## Narrative\n\n")
	for _, s := range r.Narrative {
		fmt.Fprintf(b, "- %s\n", s)
	}
	b.WriteString("\n")
}

func (r *Report) writeScores(b *strings.Builder) {
	if len(r.Scores) == 0 {
		return
	}
	b.WriteString("## Quality Scores\n\n")
	b.WriteString("| Metric | Score |\n|---|---:|\n")
	for _, m := range score.MetricOrder {
		fmt.Fprintf(b, "| %s | %.2f |\n", m, r.Scores[m])
	}
	overall := r.Scores[score.MetricOverall]
	fmt.Fprintf(b, "| **overall** | **%.2f** |\n\n", overall)
	fmt.Fprintf(b, "Verdict: **%s**\n\n", narrate.Verdict(overall))
}

func (r *Report) writeSummaries(b *strings.Builder) {
	var numeric, categorical []analyze.ColumnSummary
	for _, s := range r.Results.Summary {
		if s.Numeric {
			numeric = append(numeric, s)
		} else {
			categorical = append(categorical, s)
		}
	}

	if len(numeric) > 0 {
		b.WriteString("## Numeric Columns\n\n")
		b.WriteString("| Column | Type | Count | Nulls | Mean | Std | Min | 25% | 50% | 75% | Max |\n")
		b.WriteString("|---|---|---:|---:|---:|---:|---:|---:|---:|---:|---:|\n")
		for _, s := range numeric {
			fmt.Fprintf(b, "| %s | %s | %d | %d | %.2f | %.2f | %s | %.2f | %.2f | %.2f | %s |\n",
				s.Name, s.Type, s.Count, s.NullCount, s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max)
		}
		b.WriteString("\n")
	}

	if len(categorical) > 0 {
		b.WriteString("## Categorical Columns\n\n")
		b.WriteString("| Column | Type | Count | Nulls | Unique | Top | Freq |\n")
		b.WriteString("|---|---|---:|---:|---:|---|---:|\n")
		for _, s := range categorical {
			fmt.Fprintf(b, "| %s | %s | %d | %d | %d | %s | %d |\n",
				s.Name, s.Type, s.Count, s.NullCount, s.Unique, s.Top, s.Freq)
		}
		b.WriteString("\n")
	}
}

func (r *Report) writeMissing(b *strings.Builder) {
	b.WriteString("## Missing Values\n\n")
	any := false
	for _, m := range r.Results.Missing {
		if m.Count == 0 {
			continue
		}
		if !any {
			b.WriteString("| Column | Missing | Pct |\n|---|---:|---:|\n")
			any = true
		}
		fmt.Fprintf(b, "| %s | %d | %.2f%% |\n", m.Column, m.Count, m.Pct)
	}
	if !any {
		b.WriteString("No missing values detected.\n")
	}
	b.WriteString("\n")

	if r.Results.Duplicates > 0 {
		fmt.Fprintf(b, "Duplicate rows: %d\n\n", r.Results.Duplicates)
	}
}

func (r *Report) writeOutliers(b *strings.Builder) {
	b.WriteString("## Outliers\n\n")
	any := false
	for _, o := range r.Results.Outliers {
		if o.Count == 0 {
			continue
		}
		if !any {
			b.WriteString("| Column | Outliers |\n|---|---:|\n")
			any = true
		}
		fmt.Fprintf(b, "| %s | %d |\n", o.Column, o.Count)
	}
	if !any {
		b.WriteString("No outliers detected.\n")
	}
	b.WriteString("\n")
}

func (r *Report) writePreview(b *strings.Builder) {
	if len(r.Preview) == 0 || len(r.Columns) == 0 {
		return
	}
	b.WriteString("## Preview\n\n")
	fmt.Fprintf(b, "| %s |\n", strings.Join(r.Columns, " | "))
	b.WriteString("|" + strings.Repeat("---|", len(r.Columns)) + "\n")
	for _, row := range r.Preview {
		cells := make([]string, len(r.Columns))
		for i := range r.Columns {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
	}
	b.WriteString("\n")
}
