// Package config binds Wick's CLI/REPL configuration from a .wickrc.yaml
// file and WICK_* environment variables, the way the teacher's own
// internal/cli/config package binds its project configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings that shape the REPL's presentation.
type Config struct {
	REPL REPLConfig `mapstructure:"repl"`
}

// REPLConfig controls the interactive session's prompt and coloring.
type REPLConfig struct {
	Prompt    string `mapstructure:"prompt"`
	NoColor   bool   `mapstructure:"no_color"`
	HistoryFile string `mapstructure:"history_file"`
}

// Load reads .wickrc.yaml from the current directory (if present) and
// WICK_*-prefixed environment variables, falling back to defaults when
// neither is set.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("repl.prompt", "wick> ")
	v.SetDefault("repl.no_color", false)
	v.SetDefault("repl.history_file", ".wick_history")

	v.SetConfigName(".wickrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("WICK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .wickrc.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wick config: %w", err)
	}
	return &cfg, nil
}
