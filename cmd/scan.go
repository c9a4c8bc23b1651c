package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/karsk-io/datascribe/internal/analyze"
	"github.com/karsk-io/datascribe/internal/connectors"
	"github.com/karsk-io/datascribe/internal/dataset"
	"github.com/karsk-io/datascribe/internal/narrate"
	"github.com/karsk-io/datascribe/internal/score"
)

var (
	scanFile      string
	scanDir       string
	scanFormat    string
	scanRecursive bool
	scanVerbose   bool
	scanMinSize   int64
	scanMaxSize   int64
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan directory for data files",
	Long: `Scan a directory and analyze data files
for quality metrics and statistics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scanFile != "" {
			specificFile := filepath.Join(scanDir, scanFile)
			if _, err := os.Stat(specificFile); err != nil {
				return fmt.Errorf("file not found: %s", specificFile)
			}
			return scanOne(specificFile)
		}

		options := connectors.DiscoveryOptions{
			Recursive: scanRecursive,
			MinSize:   scanMinSize,
			MaxSize:   scanMaxSize,
		}

		files, fileCount, err := connectors.DiscoverFiles(scanDir, scanFormat, options)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		if fileCount == 0 {
			fmt.Printf("No %s files found in %s\n", scanFormat, scanDir)
			return nil
		}

		bar := progressbar.NewOptions(fileCount,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Processing files..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Println()
			}),
		)

		for _, file := range files {
			bar.Add(1)

			if err := scanOne(file.Path); err != nil {
				slog.Warn("failed to analyze file", "file", file.Path, "error", err)
			}
		}

		bar.Finish()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanFile, "file", "n", "",
		"You might want to check specific file only")
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "csv",
		"File format to analyze (csv)")
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"Search directories recursively")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Display detailed quality metrics")
	scanCmd.Flags().Int64Var(&scanMinSize, "min-size", 0,
		"Minimum file size in bytes")
	scanCmd.Flags().Int64Var(&scanMaxSize, "max-size", 0,
		"Maximum file size in bytes")

	scanCmd.MarkFlagRequired("dir")
}

// scanOne loads a file, runs the quality signals, and prints a short
// per-file summary.
func scanOne(path string) error {
	frame, err := dataset.NewLoader(path).Load()
	if err != nil {
		return err
	}
	dataset.TrimStrings(frame, frame.TextColumns())

	results := &analyze.Results{
		Missing:    analyze.MissingStats(frame),
		Duplicates: analyze.CountDuplicates(frame),
		Outliers:   analyze.OutlierStats(frame),
	}

	scorer, err := score.NewScorer(results, frame.Len(), score.Weights(appCfg.Weights))
	if err != nil {
		return err
	}
	overall := scorer.OverallScore()

	meanMissing := 0.0
	if pcts := results.MissingPcts(); len(pcts) > 0 {
		for _, p := range pcts {
			meanMissing += p
		}
		meanMissing /= float64(len(pcts))
	}

	fmt.Printf("\nFile: %s\n", path)
	fmt.Printf("- Rows: %d\n", frame.Len())
	fmt.Printf("- Missing Values: %.2f%% (mean per column)\n", meanMissing)
	fmt.Printf("- Duplicate Rows: %d\n", results.Duplicates)
	fmt.Printf("- Outliers: %d\n", results.TotalOutliers())
	fmt.Printf("- Quality: %.2f/100 (%s)\n", overall, narrate.Verdict(overall))

	if scanVerbose {
		for _, m := range results.Missing {
			if m.Count == 0 {
				continue
			}
			fmt.Printf("\nColumn: %s\n", m.Column)
			fmt.Printf("  Missing: %d (%.2f%%)\n", m.Count, m.Pct)
		}
		for _, o := range results.Outliers {
			if o.Count == 0 {
				continue
			}
			fmt.Printf("\nColumn: %s\n", o.Column)
			fmt.Printf("  Outliers: %d\n", o.Count)
		}
	}
	return nil
}
