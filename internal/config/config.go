// Package config loads and saves tool configuration. Precedence:
// explicit file > environment (DATASCRIBE_*) > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/karsk-io/datascribe/internal/score"
)

// Config is everything tunable from a file or the environment.
type Config struct {
	Weights  map[string]float64 `mapstructure:"weights" yaml:"weights"`
	PeekRows int                `mapstructure:"peek_rows" yaml:"peek_rows"`
	LogLevel string             `mapstructure:"log_level" yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Weights:  score.DefaultWeights(),
		PeekRows: 5,
		LogLevel: "info",
	}
}

// Load reads configuration from cfgFile (or ~/.datascribe/config.yaml
// when empty), layered over env vars and defaults. Configured weights
// are validated here so a bad file fails at startup, not mid-run.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DATASCRIBE")
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("weights", def.Weights)
	v.SetDefault("peek_rows", def.PeekRows)
	v.SetDefault("log_level", def.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".datascribe"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// A missing file means defaults; a malformed one is an error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := score.Validate(c.Weights); err != nil {
		return nil, fmt.Errorf("config weights: %w", err)
	}
	return &c, nil
}

// DefaultPath is where configuration lives when no --config flag is
// given: ~/.datascribe/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".datascribe", "config.yaml"), nil
}

// Save writes the configuration to cfgFile, or to DefaultPath when
// cfgFile is empty.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LoadWeights reads a standalone weights file: a YAML mapping from
// metric name to weight. The map is validated before it is returned.
func LoadWeights(path string) (score.Weights, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}
	var w score.Weights
	if err := yaml.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("parse weights file: %w", err)
	}
	if err := score.Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}
