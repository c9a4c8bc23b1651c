// Package pipeline wires the loader, analyzers, scorer, narrator, and
// report builder into a single synchronous run.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/karsk-io/datascribe/internal/analyze"
	"github.com/karsk-io/datascribe/internal/dataset"
	"github.com/karsk-io/datascribe/internal/narrate"
	"github.com/karsk-io/datascribe/internal/report"
	"github.com/karsk-io/datascribe/internal/score"
)

// Options tune a run. Zero values select the defaults.
type Options struct {
	Weights  score.Weights // nil means score.DefaultWeights
	PeekRows int           // <= 0 means dataset.DefaultPeekRows
}

// Outcome is everything one run produces.
type Outcome struct {
	RunID     string
	Frame     *dataset.Frame
	Results   *analyze.Results
	Scores    map[string]float64
	Narrative []string
	Report    *report.Report
}

// Pipeline runs the full analysis for one file. The stages execute
// sequentially on the caller's goroutine.
type Pipeline struct {
	path string
	opts Options
	log  *slog.Logger
}

func New(path string, opts Options) *Pipeline {
	return &Pipeline{path: path, opts: opts, log: slog.Default()}
}

// Run loads the file, trims textual columns, gathers summaries and
// quality signals, scores them, and assembles narrative plus report.
func (p *Pipeline) Run() (*Outcome, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.log.With("run", runID, "file", p.path)

	loader := dataset.NewLoader(p.path)
	frame, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", p.path, err)
	}
	log.Debug("loaded", "rows", frame.Len(), "cols", len(frame.Columns), "elapsed", time.Since(start))

	dataset.TrimStrings(frame, frame.TextColumns())

	stage := time.Now()
	results := analyze.NewNumeric(frame).RunAll().
		Merge(analyze.NewCategorical(frame).RunAll())
	results.Missing = analyze.MissingStats(frame)
	results.Duplicates = analyze.CountDuplicates(frame)
	results.Outliers = analyze.OutlierStats(frame)
	log.Debug("analyzed", "columns", len(results.Summary), "duplicates", results.Duplicates, "elapsed", time.Since(stage))

	scorer, err := score.NewScorer(results, frame.Len(), p.opts.Weights)
	if err != nil {
		return nil, err
	}
	overall := scorer.OverallScore()
	scores := scorer.Scores()
	log.Debug("scored", "overall", overall)

	narrative := narrate.Generate(results, scores)

	preview, err := loader.Peek(p.opts.PeekRows)
	if err != nil {
		return nil, err
	}

	var fileSize int64
	if info, err := os.Stat(p.path); err == nil {
		fileSize = info.Size()
	}

	rep := &report.Report{
		Meta: report.Meta{
			RunID:       runID,
			Path:        p.path,
			FileSize:    fileSize,
			Rows:        frame.Len(),
			Cols:        len(frame.Columns),
			GeneratedAt: time.Now(),
			Elapsed:     time.Since(start),
		},
		Results:   results,
		Scores:    scores,
		Narrative: narrative,
		Columns:   frame.Columns,
		Preview:   preview,
	}

	return &Outcome{
		RunID:     runID,
		Frame:     frame,
		Results:   results,
		Scores:    scores,
		Narrative: narrative,
		Report:    rep,
	}, nil
}
