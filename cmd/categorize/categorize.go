// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"anand/fintrack/cmd/root"
	"anand/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a transaction description against the rule tables (and the
AI fallback when enabled), without touching the store. Useful for
checking how a narration will be classified before uploading.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&root.TxType, "type", "t", models.TypeExpense, "Transaction direction: income or expense")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	if root.TxType != models.TypeIncome && root.TxType != models.TypeExpense {
		return fmt.Errorf("type must be %q or %q, got %q", models.TypeIncome, models.TypeExpense, root.TxType)
	}

	cat, cleanup, err := root.NewCategorizer(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	category := cat.Categorize(cmd.Context(), root.Description, root.TxType)
	fmt.Printf("Category: %s\n", category)
	return nil
}
