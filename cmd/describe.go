package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/karsk-io/datascribe/internal/analyze"
	"github.com/karsk-io/datascribe/internal/connectors"
	"github.com/karsk-io/datascribe/internal/dataset"
)

var (
	describeWorkers   int
	describeOutput    string
	describeRecursive bool
)

type describeResult struct {
	Path    string
	Size    int64
	Rows    int
	Summary []analyze.ColumnSummary
	NullPct float64
	Elapsed time.Duration
	Err     error
}

var describeCmd = &cobra.Command{
	Use:   "describe [file or directory]",
	Short: "Column statistics for CSV files",
	Long: `Compute exact per-column statistics for CSV files: counts, nulls,
mean, std, quartiles, and min/max for numeric columns; unique counts and
top values for categorical ones.

Examples:
  datascribe describe file.csv                  # Single file
  datascribe describe /data/dir/ --recursive    # Whole directory tree
  datascribe describe /data/dir/ --workers 4    # Limit concurrency
  datascribe describe file.csv --output out.txt # Save output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", target, err)
		}

		if info.IsDir() {
			return describeDirectory(target)
		}
		return describeSingleFile(target)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().IntVar(&describeWorkers, "workers", 0,
		"Number of parallel workers (default: CPU cores)")
	describeCmd.Flags().StringVar(&describeOutput, "output", "",
		"Output file to save results (default: stdout)")
	describeCmd.Flags().BoolVar(&describeRecursive, "recursive", false,
		"Process directories recursively")
}

func describeSingleFile(path string) error {
	start := time.Now()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan][reset] Describing %s...", filepath.Base(path))),
		progressbar.OptionSetWidth(20),
	)

	result := describeFile(path)
	bar.Add(1)
	bar.Finish()

	return writeDescribeOutput([]describeResult{result}, time.Since(start))
}

func describeDirectory(dir string) error {
	options := connectors.DiscoveryOptions{Recursive: describeRecursive}

	files, fileCount, err := connectors.DiscoverFiles(dir, "csv", options)
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}
	if fileCount == 0 {
		fmt.Printf("No CSV files found in %s\n", dir)
		return nil
	}
	fmt.Printf("Found %d CSV files\n", fileCount)

	bar := progressbar.NewOptions(fileCount,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][reset] Processing files..."),
		progressbar.OptionSetWidth(20),
	)

	workers := describeWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	results := make([]describeResult, len(files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, file := range files {
		g.Go(func() error {
			results[i] = describeFile(file.Path)
			bar.Add(1)
			return nil
		})
	}
	g.Wait()
	bar.Finish()

	return writeDescribeOutput(results, time.Since(start))
}

// describeFile loads one CSV and summarizes every column. Failures are
// carried in the result so a directory walk keeps going.
func describeFile(path string) describeResult {
	start := time.Now()
	result := describeResult{Path: path}

	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}

	frame, err := dataset.NewLoader(path).Load()
	if err != nil {
		result.Err = err
		return result
	}

	result.Rows = frame.Len()
	result.Summary = analyze.New(frame).Summarize()

	totalNulls := 0
	for _, s := range result.Summary {
		totalNulls += s.NullCount
	}
	if frame.Len() > 0 && len(frame.Columns) > 0 {
		result.NullPct = float64(totalNulls) / float64(frame.Len()*len(frame.Columns)) * 100
	}

	result.Elapsed = time.Since(start)
	return result
}

func writeDescribeOutput(results []describeResult, total time.Duration) error {
	var out strings.Builder

	var totalRows, failed int
	var totalSize int64
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		totalRows += r.Rows
		totalSize += r.Size
	}

	out.WriteString("=== DESCRIBE SUMMARY ===\n")
	fmt.Fprintf(&out, "Files processed: %d\n", len(results)-failed)
	if failed > 0 {
		fmt.Fprintf(&out, "Files failed: %d\n", failed)
	}
	fmt.Fprintf(&out, "Total rows: %s\n", humanize.Comma(int64(totalRows)))
	fmt.Fprintf(&out, "Total size: %s\n", humanize.Bytes(uint64(totalSize)))
	fmt.Fprintf(&out, "Elapsed: %v\n\n", total.Round(time.Millisecond))

	out.WriteString("=== PER-FILE ===\n")
	fmt.Fprintf(&out, "%-40s %10s %8s %10s %12s\n", "File", "Rows", "Columns", "Null Rate", "Elapsed")
	out.WriteString(strings.Repeat("-", 84) + "\n")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(&out, "%-40s failed: %v\n", truncateLabel(filepath.Base(r.Path), 37), r.Err)
			continue
		}
		fmt.Fprintf(&out, "%-40s %10d %8d %9.1f%% %12s\n",
			truncateLabel(filepath.Base(r.Path), 37), r.Rows, len(r.Summary),
			r.NullPct, r.Elapsed.Round(time.Millisecond))
	}
	out.WriteString("\n")

	detailed := 0
	for _, r := range results {
		if r.Err != nil || detailed >= 3 {
			continue
		}
		writeColumnTables(&out, r)
		detailed++
	}

	if describeOutput != "" {
		if err := os.WriteFile(describeOutput, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", describeOutput, err)
		}
		fmt.Printf("Results saved to %s\n", describeOutput)
		return nil
	}
	fmt.Print(out.String())
	return nil
}

func writeColumnTables(out *strings.Builder, r describeResult) {
	fmt.Fprintf(out, "File: %s (%s)\n", r.Path, humanize.Bytes(uint64(r.Size)))

	var numeric, categorical []analyze.ColumnSummary
	for _, s := range r.Summary {
		if s.Numeric {
			numeric = append(numeric, s)
		} else {
			categorical = append(categorical, s)
		}
	}

	if len(numeric) > 0 {
		fmt.Fprintf(out, "  %-20s %-7s %8s %7s %10s %10s %10s %10s %10s %10s %10s\n",
			"Column", "Type", "Count", "Nulls", "Mean", "Std", "Min", "25%", "50%", "75%", "Max")
		for _, s := range numeric {
			fmt.Fprintf(out, "  %-20s %-7s %8d %7d %10.2f %10.2f %10s %10.2f %10.2f %10.2f %10s\n",
				truncateLabel(s.Name, 20), s.Type, s.Count, s.NullCount,
				s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max)
		}
	}

	if len(categorical) > 0 {
		fmt.Fprintf(out, "  %-20s %-7s %8s %7s %8s %-20s %6s\n",
			"Column", "Type", "Count", "Nulls", "Unique", "Top", "Freq")
		for _, s := range categorical {
			fmt.Fprintf(out, "  %-20s %-7s %8d %7d %8d %-20s %6d\n",
				truncateLabel(s.Name, 20), s.Type, s.Count, s.NullCount,
				s.Unique, truncateLabel(s.Top, 20), s.Freq)
		}
	}

	out.WriteString("\n")
}

func truncateLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
