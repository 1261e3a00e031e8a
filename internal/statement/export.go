package statement

import (
	"fmt"
	"io"
	"os"

	"anand/fintrack/internal/models"

	"github.com/gocarina/gocsv"
)

// WriteCSV writes a parsed batch as a review CSV. The file can be
// edited by hand (fix categories, delete bad rows) and fed back to
// upload through ReadCSV.
func WriteCSV(w io.Writer, txs []models.Transaction) error {
	if err := gocsv.Marshal(&txs, w); err != nil {
		return fmt.Errorf("error writing transactions CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes the batch to a CSV file at path.
func WriteCSVFile(path string, txs []models.Transaction) error {
	f, err := os.Create(path) // #nosec G304 -- output path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return WriteCSV(f, txs)
}

// ReadCSV reads a reviewed batch back from CSV. Every record is
// re-validated; hand edits can break invariants the parser guaranteed.
func ReadCSV(r io.Reader) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := gocsv.Unmarshal(r, &txs); err != nil {
		return nil, fmt.Errorf("error reading transactions CSV: %w", err)
	}

	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction on CSV record %d: %w", i+1, err)
		}
	}
	return txs, nil
}

// ReadCSVFile reads a reviewed batch from a CSV file at path.
func ReadCSVFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path) // #nosec G304 -- input path comes from the CLI flag
	if err != nil {
		return nil, fmt.Errorf("error opening reviewed CSV: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ReadCSV(f)
}
