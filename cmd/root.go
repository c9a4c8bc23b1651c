package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/karsk-io/datascribe/internal/config"
	"github.com/karsk-io/datascribe/internal/logging"
)

var (
	cfgFile  string
	logLevel string
	appCfg   *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "datascribe",
	Short: "CSV profiling and data quality scoring",
	Long: `Profile CSV files, score their quality, and narrate the findings.

datascribe loads a file into memory, summarizes numeric and categorical
columns, measures missing data, duplicate rows, and outliers, and folds
those signals into a weighted 0-100 quality score with a plain-language
report.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.datascribe/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error (default from config)")
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	cobra.CheckErr(err)
	appCfg = cfg

	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	logging.SetDefault(level)
}
