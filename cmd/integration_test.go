package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with the given args, with HOME
// pointed at a temp dir so no real config is touched. Flag globals are
// reset first since they persist across Execute calls.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfgFile, logLevel = "", ""
	analyzeOutput, analyzeHTML, analyzeWeights, analyzePeek = "", "", "", 0
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestAnalyzeCommandWritesReport(t *testing.T) {
	csv := writeTempCSV(t, "data.csv", `id,name,score
1,alice,10
2,bob,12
3,carol,11
`)
	out := filepath.Join(t.TempDir(), "report.md")

	require.NoError(t, runCLI(t, "analyze", csv, "--output", out))

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), "# Data Quality Report")
	assert.Contains(t, string(body), "## Quality Scores")
	assert.Contains(t, string(body), "Verdict:")
}

func TestAnalyzeCommandHTMLChart(t *testing.T) {
	csv := writeTempCSV(t, "data.csv", "a,b\n1,x\n2,y\n")
	out := filepath.Join(t.TempDir(), "report.md")
	html := filepath.Join(t.TempDir(), "chart.html")

	require.NoError(t, runCLI(t, "analyze", csv, "--output", out, "--html", html))

	body, err := os.ReadFile(html)
	require.NoError(t, err)
	assert.Contains(t, string(body), "echarts")
}

func TestConfigInitWritesDefaultFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, runCLI(t, "config", "init", "--config", cfgPath))

	body, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "weights:")
	assert.Contains(t, string(body), "peek_rows: 5")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	err := runCLI(t, "analyze", filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
