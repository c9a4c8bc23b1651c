package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/karsk-io/datascribe/internal/config"
	"github.com/karsk-io/datascribe/internal/score"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(config.Default(), cfgFile); err != nil {
			return err
		}
		path := cfgFile
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		fmt.Printf("Config written to %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if appCfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		b, err := yaml.Marshal(appCfg)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Long: `Set a config value and save it. Keys:

  weights.missing, weights.duplicates, weights.outliers, weights.balance
  peek_rows
  log_level`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if appCfg == nil {
			c, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			appCfg = c
		}
		switch {
		case strings.HasPrefix(key, "weights."):
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for %s: %v", key, val)
			}
			w := score.Weights(appCfg.Weights).Clone()
			w[strings.TrimPrefix(key, "weights.")] = f
			if err := score.Validate(w); err != nil {
				return err
			}
			appCfg.Weights = w
		case key == "peek_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for peek_rows: %v", val)
			}
			appCfg.PeekRows = i
		case key == "log_level":
			appCfg.LogLevel = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := config.Save(appCfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
