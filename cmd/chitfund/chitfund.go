// Package chitfund handles the manual chit fund commands
package chitfund

import (
	"fmt"

	"anand/fintrack/cmd/root"
	"anand/fintrack/internal/chitfund"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Cmd represents the chitfund command group
var Cmd = &cobra.Command{
	Use:   "chitfund",
	Short: "Record and summarize manual chit fund payments",
	Long: `Record monthly chit fund payments and summarize the payment history.
A payment is the fixed beat amount minus the dividend received that
month; only the net amount is stored as an expense.`,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a chit fund payment",
	RunE:  addFunc,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize chit fund payments for a user",
	RunE:  summaryFunc,
}

func init() {
	addCmd.Flags().StringVarP(&root.User, "user", "u", "", "User the payment belongs to")
	addCmd.Flags().StringVarP(&root.ChitDate, "date", "t", "", "Payment date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&root.ChitDiv, "dividend", "d", "0", "Dividend received this month")
	addCmd.Flags().StringVarP(&root.ChitBeat, "beat", "b", "", "Beat amount (defaults to the configured amount)")
	addCmd.Flags().StringVarP(&root.ChitName, "name", "n", "", "Chit fund name for the description")
	_ = addCmd.MarkFlagRequired("user")
	_ = addCmd.MarkFlagRequired("date")

	summaryCmd.Flags().StringVarP(&root.User, "user", "u", "", "User to summarize")
	_ = summaryCmd.MarkFlagRequired("user")

	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(summaryCmd)
}

func addFunc(cmd *cobra.Command, args []string) error {
	beat := chitfund.DefaultBeatAmount
	if root.Cfg != nil && root.Cfg.ChitFund.BeatAmount > 0 {
		beat = decimal.NewFromInt(root.Cfg.ChitFund.BeatAmount)
	}
	if root.ChitBeat != "" {
		parsed, err := decimal.NewFromString(root.ChitBeat)
		if err != nil {
			return fmt.Errorf("invalid beat amount %q: %w", root.ChitBeat, err)
		}
		beat = parsed
	}

	dividend, err := decimal.NewFromString(root.ChitDiv)
	if err != nil {
		return fmt.Errorf("invalid dividend %q: %w", root.ChitDiv, err)
	}

	entry, err := chitfund.NewEntry(root.ChitDate, beat, dividend, root.ChitName)
	if err != nil {
		return err
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	result, err := chitfund.NewService(s, root.Log).Record(cmd.Context(), root.User, entry)
	if err != nil {
		return err
	}

	if result.Skipped > 0 {
		fmt.Printf("Payment for %s already recorded, skipped\n", entry.Date)
		return nil
	}
	fmt.Printf("Recorded chit fund payment: %s paid on %s (beat %s, dividend %s)\n",
		entry.NetPaid().StringFixed(2), entry.Date, beat.StringFixed(2), dividend.StringFixed(2))
	return nil
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	summary, err := chitfund.NewService(s, root.Log).Summarize(cmd.Context(), root.User)
	if err != nil {
		return err
	}

	fmt.Printf("Chit fund summary for %s\n", root.User)
	fmt.Printf("  Payments:       %d\n", summary.Payments)
	fmt.Printf("  Total beat:     %s\n", summary.TotalBeat.StringFixed(2))
	fmt.Printf("  Total dividend: %s\n", summary.TotalDividend.StringFixed(2))
	fmt.Printf("  Total paid:     %s\n", summary.TotalPaid.StringFixed(2))
	return nil
}
