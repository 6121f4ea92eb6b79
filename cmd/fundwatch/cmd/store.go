package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fundwatch/holdings"
	"fundwatch/store"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List trading dates stored for a fund",
	RunE:  runDates,
}

var fundsCmd = &cobra.Command{
	Use:   "funds",
	Short: "List funds with stored snapshots",
	Args:  cobra.NoArgs,
	RunE:  runFunds,
}

var datesFund string

func init() {
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(fundsCmd)

	datesCmd.Flags().StringVarP(&datesFund, "fund", "f", "", "fund symbol (required)")
	datesCmd.MarkFlagRequired("fund")
}

func runDates(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	dates, err := st.DistinctDates(datesFund)
	if err != nil {
		return fmt.Errorf("list dates: %w", err)
	}
	if len(dates) == 0 {
		fmt.Printf("no snapshots for %s\n", datesFund)
		return nil
	}

	for _, on := range dates {
		fmt.Println(on.Format(holdings.DateLayout))
	}
	fmt.Printf("%d trading date(s)\n", len(dates))
	return nil
}

func runFunds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer st.Close()

	funds, err := st.Funds()
	if err != nil {
		return fmt.Errorf("list funds: %w", err)
	}
	for _, f := range funds {
		fmt.Println(f)
	}
	return nil
}
