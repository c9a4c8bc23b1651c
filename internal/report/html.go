package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/karsk-io/datascribe/internal/narrate"
	"github.com/karsk-io/datascribe/internal/score"
)

// WriteHTML renders the quality scores as a standalone bar-chart page.
func (r *Report) WriteHTML(w io.Writer) error {
	overall := r.Scores[score.MetricOverall]

	labels := make([]string, 0, len(score.MetricOrder)+1)
	values := make([]opts.BarData, 0, len(score.MetricOrder)+1)
	for _, m := range score.MetricOrder {
		labels = append(labels, m)
		values = append(values, opts.BarData{Value: r.Scores[m]})
	}
	labels = append(labels, score.MetricOverall)
	values = append(values, opts.BarData{Value: overall})

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "datascribe report",
			Width:     "900px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Data Quality Scores",
			Subtitle: fmt.Sprintf("%s - overall %.2f/100 (%s)",
				filepath.Base(r.Meta.Path), overall, narrate.Verdict(overall)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("score", values,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
