// Package transactions handles the stored-transaction commands
package transactions

import (
	"fmt"

	"anand/fintrack/cmd/root"
	"anand/fintrack/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the transactions command group
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List and delete stored transactions",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's stored transactions",
	RunE:  listFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a stored transaction by ID",
	RunE:  deleteFunc,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the known categories per direction",
	Run:   categoriesFunc,
}

func init() {
	listCmd.Flags().StringVarP(&root.User, "user", "u", "", "User whose transactions to list")
	listCmd.Flags().StringVarP(&root.Category, "category", "c", "", "Only list this category")
	_ = listCmd.MarkFlagRequired("user")

	deleteCmd.Flags().StringVarP(&root.User, "user", "u", "", "User the transaction belongs to")
	deleteCmd.Flags().StringVarP(&root.TransID, "id", "", "", "Transaction ID to delete")
	_ = deleteCmd.MarkFlagRequired("user")
	_ = deleteCmd.MarkFlagRequired("id")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(categoriesCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	var txs []models.Transaction
	if root.Category != "" {
		txs, err = s.ListByCategory(cmd.Context(), root.User, root.Category)
	} else {
		txs, err = s.ListAll(cmd.Context(), root.User)
	}
	if err != nil {
		return fmt.Errorf("could not list transactions: %w", err)
	}

	if len(txs) == 0 {
		fmt.Println("No transactions found")
		return nil
	}

	for _, tx := range txs {
		fmt.Printf("%s  %s  %-8s  %10s  %-20s  %s\n",
			tx.ID, tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Description)
	}
	fmt.Printf("%d transactions\n", len(txs))
	return nil
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	if err := s.Delete(cmd.Context(), root.User, root.TransID); err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}

	fmt.Printf("Deleted transaction %s\n", root.TransID)
	return nil
}

func categoriesFunc(cmd *cobra.Command, args []string) {
	fmt.Println("Income categories:")
	for _, c := range models.IncomeCategories {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println("Expense categories:")
	for _, c := range models.ExpenseCategories {
		fmt.Printf("  %s\n", c)
	}
}
