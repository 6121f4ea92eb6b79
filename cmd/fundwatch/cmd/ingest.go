package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fundwatch/holdings"
	"fundwatch/ingest"
	"fundwatch/logger"
	"fundwatch/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file...>",
	Short: "Load holdings files into the snapshot store",
	Long: `Ingest one or more daily holdings files for a fund.

Accepted inputs are .csv files, .csv.xz compressed files, and .zip
archives of daily CSVs. Dates already present in the store are skipped.

Examples:
  fundwatch ingest holdings-2026-01-16.csv --fund PRIV
  fundwatch ingest history.zip --fund PRSD
  fundwatch ingest holdings.csv --fund HIYS --date 2026-01-16`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

var (
	ingestFund string
	ingestDate string
)

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVarP(&ingestFund, "fund", "f", "", "fund symbol the files belong to (required)")
	ingestCmd.Flags().StringVar(&ingestDate, "date", "", "snapshot date YYYY-MM-DD (default: date column in the file)")
	ingestCmd.MarkFlagRequired("fund")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var on time.Time
	if ingestDate != "" {
		on, err = holdings.ParseDate(ingestDate)
		if err != nil {
			return fmt.Errorf("bad --date: %w", err)
		}
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	log := logger.New()
	defer log.Sync()

	ing := &ingest.Ingestor{Store: st, Log: log}

	var ingested, skipped int
	for _, path := range args {
		results, err := ing.File(path, ingestFund, on)
		if err != nil {
			return fmt.Errorf("ingest %s: %w", path, err)
		}
		for _, res := range results {
			if res.Skipped {
				skipped++
				continue
			}
			ingested++
			fmt.Printf("  %s %s: %d rows (run %s)\n",
				res.Fund, res.Date.Format(holdings.DateLayout), res.Rows, res.RunID)
		}
	}

	fmt.Printf("%d snapshot(s) ingested, %d skipped\n", ingested, skipped)
	return nil
}
