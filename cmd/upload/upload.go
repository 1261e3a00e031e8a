// Package upload handles the statement upload command
package upload

import (
	"fmt"

	"anand/fintrack/cmd/common"
	"anand/fintrack/cmd/root"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/persister"
	"anand/fintrack/internal/statement"

	"github.com/spf13/cobra"
)

// Cmd represents the upload command
var Cmd = &cobra.Command{
	Use:   "upload",
	Short: "Parse a bank statement and store its transactions",
	Long: `Parse a bank statement export and store the resulting transactions for
a user. Transactions whose (date, description, amount) triple already
exists are skipped, so re-uploading the same statement is safe.

With --reviewed, a previously exported review CSV is uploaded instead
of parsing a raw statement.`,
	RunE: uploadFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.User, "user", "u", "", "User the transactions belong to")
	Cmd.Flags().StringVarP(&root.ReviewedFile, "reviewed", "r", "", "Reviewed CSV to upload instead of parsing a statement")
	_ = Cmd.MarkFlagRequired("user")
}

func uploadFunc(cmd *cobra.Command, args []string) error {
	txs, err := collectTransactions(cmd)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		root.Log.Warn("No transactions to upload")
		return nil
	}

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	result, err := persister.New(s, root.Log).Persist(cmd.Context(), root.User, txs)
	if err != nil {
		return fmt.Errorf("upload stopped after %d inserted, %d skipped: %w",
			result.Inserted, result.Skipped, err)
	}

	fmt.Printf("Uploaded for %s: %d inserted, %d skipped as duplicates\n",
		root.User, result.Inserted, result.Skipped)
	return nil
}

// collectTransactions yields the batch to upload, either from a
// reviewed CSV or by parsing the raw statement.
func collectTransactions(cmd *cobra.Command) ([]models.Transaction, error) {
	if root.ReviewedFile != "" {
		txs, err := statement.ReadCSVFile(root.ReviewedFile)
		if err != nil {
			return nil, err
		}
		root.Log.Info("Loaded reviewed CSV",
			logging.Field{Key: logging.FieldFile, Value: root.ReviewedFile},
			logging.Field{Key: logging.FieldCount, Value: len(txs)})
		return txs, nil
	}

	if root.SharedFlags.Input == "" {
		return nil, fmt.Errorf("either --input or --reviewed is required")
	}

	cat, cleanup, err := root.NewCategorizer(cmd.Context())
	if err != nil {
		return nil, err
	}
	defer cleanup()

	parser := statement.NewParser(cat, root.Log, common.ParserOptions(root.Cfg)...)
	batch, err := common.ParseStatement(cmd.Context(), root.SharedFlags.Input, parser, root.Log)
	if err != nil {
		return nil, err
	}
	return batch.Transactions, nil
}
