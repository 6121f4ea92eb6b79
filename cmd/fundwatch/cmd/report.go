package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fundwatch/holdings"
	"fundwatch/render"
	"fundwatch/report"
	"fundwatch/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a change report for a fund",
	Long: `Generate a change report over the last N trading days.

The report lists new assets, removed assets, and par value changes
between every pair of consecutive trading dates in the window, plus
end-of-window totals.

Examples:
  fundwatch report --fund PRIV --days 7
  fundwatch report --fund PRSD --days 5 --format markdown --out weekly`,
	RunE: runReport,
}

var (
	reportFund   string
	reportDays   int
	reportFormat string
	reportOut    string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFund, "fund", "f", "", "fund symbol (required)")
	reportCmd.Flags().IntVarP(&reportDays, "days", "n", 0, "trading days to look back (default from config)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "", "output format: csv, html, markdown, or all (default from config)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", "output file prefix (default from config)")
	reportCmd.MarkFlagRequired("fund")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if reportDays == 0 {
		reportDays = cfg.Report.LookbackDays
	}
	if reportFormat == "" {
		reportFormat = cfg.Report.Format
	}
	if reportOut == "" {
		reportOut = cfg.Report.OutputPrefix
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	engine := report.NewEngine(st)
	rep, err := engine.Run(reportFund, reportDays)
	if err != nil {
		var insufficient *report.InsufficientDataError
		if errors.As(err, &insufficient) {
			return fmt.Errorf("%w (reduce --days and retry)", err)
		}
		return err
	}

	printSummary(&rep)

	var created []string
	if reportFormat == "csv" || reportFormat == "all" {
		files, err := render.WriteCSV(&rep, reportOut)
		if err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		created = append(created, files...)
	}
	if reportFormat == "html" || reportFormat == "all" {
		path := fmt.Sprintf("%s_%s_%s.html", reportOut, rep.Fund, rep.EndDate.Format(holdings.DateLayout))
		if err := render.WriteHTML(&rep, path); err != nil {
			return fmt.Errorf("write html: %w", err)
		}
		created = append(created, path)
	}
	if reportFormat == "markdown" || reportFormat == "all" {
		path := fmt.Sprintf("%s_%s_%s.md", reportOut, rep.Fund, rep.EndDate.Format(holdings.DateLayout))
		if err := render.WriteMarkdown(&rep, path); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		created = append(created, path)
	}

	if len(created) > 0 {
		fmt.Printf("%d file(s) created:\n", len(created))
		for _, f := range created {
			fmt.Printf("  - %s\n", f)
		}
	}
	return nil
}

func printSummary(rep *report.Report) {
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Printf("Change Report Summary - %s\n", rep.Fund)
	fmt.Println(line)
	fmt.Printf("Report Date:        %s\n", rep.EndDate.Format(holdings.DateLayout))
	fmt.Printf("Comparison Date:    %s\n", rep.StartDate.Format(holdings.DateLayout))
	fmt.Printf("Total Market Value: $%.2f\n", rep.Summary.TotalMarketValue)
	fmt.Printf("Total Par Value:    $%.2f\n", rep.Summary.TotalParValue)
	fmt.Printf("Securities Count:   %d\n", rep.Summary.SecuritiesCount)
	fmt.Printf("New Assets:         %d\n", rep.Summary.NewAssetsCount)
	fmt.Printf("Removed Assets:     %d\n", rep.Summary.RemovedAssetsCount)
	fmt.Printf("Par Value Changes:  %d\n", rep.Summary.ParChangesCount)
	fmt.Println(line)
}
