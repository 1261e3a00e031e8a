// Package parse handles the statement parsing command
package parse

import (
	"fmt"

	"anand/fintrack/cmd/common"
	"anand/fintrack/cmd/root"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/statement"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a bank statement into categorized transactions",
	Long: `Parse a bank statement export (.xlsx, .xls or .csv) into normalized,
categorized transactions. Prints a preview and, when --output is set,
writes the full batch as a review CSV that can be edited and uploaded.`,
	RunE: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("input file is required (use --input)")
	}

	cat, cleanup, err := root.NewCategorizer(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	parser := statement.NewParser(cat, root.Log, common.ParserOptions(root.Cfg)...)
	batch, err := common.ParseStatement(cmd.Context(), root.SharedFlags.Input, parser, root.Log)
	if err != nil {
		return err
	}

	previewRows := 20
	if root.Cfg != nil && root.Cfg.Parser.PreviewRows > 0 {
		previewRows = root.Cfg.Parser.PreviewRows
	}
	printPreview(batch, previewRows)

	if root.SharedFlags.Output != "" {
		if err := statement.WriteCSVFile(root.SharedFlags.Output, batch.Transactions); err != nil {
			return err
		}
		root.Log.Info("Wrote review CSV",
			logging.Field{Key: logging.FieldFile, Value: root.SharedFlags.Output},
			logging.Field{Key: logging.FieldCount, Value: len(batch.Transactions)})
	}

	return nil
}

// printPreview writes the first rows of the batch to stdout along with
// the rejection tally.
func printPreview(batch statement.Batch, limit int) {
	fmt.Printf("Parsed %d transactions (%d rows rejected)\n",
		len(batch.Transactions), len(batch.Rejections))

	shown := len(batch.Transactions)
	if shown > limit {
		shown = limit
	}
	for _, tx := range batch.Transactions[:shown] {
		fmt.Printf("  %s  %-8s  %10s  %-20s  %s\n",
			tx.Date, tx.Type, tx.Amount.StringFixed(2), tx.Category, tx.Description)
	}
	if len(batch.Transactions) > shown {
		fmt.Printf("  ... and %d more\n", len(batch.Transactions)-shown)
	}

	for _, rej := range batch.Rejections {
		root.Log.Debug("Row rejected",
			logging.Field{Key: logging.FieldRow, Value: rej.RowIndex},
			logging.Field{Key: logging.FieldReason, Value: rej.Reason})
	}
}
