package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karsk-io/datascribe/internal/config"
	"github.com/karsk-io/datascribe/internal/pipeline"
	"github.com/karsk-io/datascribe/internal/score"
)

var (
	analyzeOutput  string
	analyzeHTML    string
	analyzeWeights string
	analyzePeek    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file.csv]",
	Short: "Run the full quality analysis on a CSV file",
	Long: `Run the full analysis pipeline on one CSV file: column summaries,
missing data, duplicate rows, outliers, quality scores, and a narrated
markdown report.

Examples:
  datascribe analyze data.csv                        # Report to stdout
  datascribe analyze data.csv --output report.md     # Save the report
  datascribe analyze data.csv --html report.html     # Score chart page
  datascribe analyze data.csv --weights custom.yaml  # Custom weighting
  datascribe analyze data.csv --peek 10              # Larger preview`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weights := score.Weights(appCfg.Weights)
		if analyzeWeights != "" {
			w, err := config.LoadWeights(analyzeWeights)
			if err != nil {
				return err
			}
			weights = w
		}

		peek := analyzePeek
		if peek <= 0 {
			peek = appCfg.PeekRows
		}

		outcome, err := pipeline.New(args[0], pipeline.Options{
			Weights:  weights,
			PeekRows: peek,
		}).Run()
		if err != nil {
			return err
		}

		md := outcome.Report.Markdown()
		if analyzeOutput != "" {
			if err := os.WriteFile(analyzeOutput, []byte(md), 0644); err != nil {
				return fmt.Errorf("failed to write report to %s: %w", analyzeOutput, err)
			}
			fmt.Printf("Report saved to %s\n", analyzeOutput)
		} else {
			fmt.Print(md)
		}

		if analyzeHTML != "" {
			f, err := os.Create(analyzeHTML)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", analyzeHTML, err)
			}
			defer f.Close()
			if err := outcome.Report.WriteHTML(f); err != nil {
				return err
			}
			fmt.Printf("Chart saved to %s\n", analyzeHTML)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "",
		"Write the markdown report to a file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeHTML, "html", "",
		"Also render an HTML score chart to this path")
	analyzeCmd.Flags().StringVar(&analyzeWeights, "weights", "",
		"YAML file with metric weights (missing, duplicates, outliers, balance)")
	analyzeCmd.Flags().IntVar(&analyzePeek, "peek", 0,
		"Number of preview rows in the report (default from config)")
}
