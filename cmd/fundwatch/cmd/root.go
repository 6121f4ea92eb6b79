package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"fundwatch/config"
)

var rootCmd = &cobra.Command{
	Use:   "fundwatch",
	Short: "Track fund holdings snapshots and report changes",
	Long: `Fundwatch tracks daily holdings snapshots of financial fund portfolios
and produces periodic change reports over a lookback window of trading days.

It provides tools for:
  - Ingesting daily holdings CSV files into a SQLite snapshot store
  - Detecting new assets, removed assets, and par value changes
  - Exporting reports as CSV, HTML, and Markdown
  - Inspecting stored funds and trading dates`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

var (
	cfgPath string
	dbPath  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "path to SQLite snapshot DB (overrides config)")
}

// loadConfig resolves the effective configuration: an explicit
// --config file, a ./fundwatch.yaml if present, or built-in defaults.
// --db always wins for the database path.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case cfgPath != "":
		cfg, err = config.LoadFromFile(cfgPath)
	default:
		if _, statErr := os.Stat("fundwatch.yaml"); statErr == nil {
			cfg, err = config.LoadFromFile("fundwatch.yaml")
		} else {
			cfg = config.Default()
		}
	}
	if err != nil {
		return nil, err
	}

	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}
