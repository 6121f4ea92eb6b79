// Package config loads the fundwatch configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the repository-wide settings: where the snapshot
// database lives, which funds are tracked, and report defaults.
type Config struct {
	DBPath string       `json:"db_path" yaml:"db_path"`
	Funds  []string     `json:"funds" yaml:"funds"`
	Report ReportConfig `json:"report" yaml:"report"`
}

// ReportConfig contains report generation defaults, all overridable
// from the command line.
type ReportConfig struct {
	LookbackDays int    `json:"lookback_days" yaml:"lookback_days"`
	OutputPrefix string `json:"output_prefix" yaml:"output_prefix"`
	Format       string `json:"format" yaml:"format"` // csv, html, markdown, or all
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration to path; .yaml/.yml extensions
// get YAML, anything else JSON.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if len(c.Funds) == 0 {
		return fmt.Errorf("at least one fund is required")
	}
	if c.Report.LookbackDays < 1 {
		return fmt.Errorf("report.lookback_days must be at least 1")
	}
	switch c.Report.Format {
	case "csv", "html", "markdown", "all":
	default:
		return fmt.Errorf("report.format must be csv, html, markdown, or all")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		DBPath: "./holdings.db",
		Funds:  []string{"PRIV", "PRSD", "HIYS"},
		Report: ReportConfig{
			LookbackDays: 7,
			OutputPrefix: "weekly_report",
			Format:       "all",
		},
	}
}
