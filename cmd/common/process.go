// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"fmt"
	"os"

	"anand/fintrack/internal/config"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/normalize"
	"anand/fintrack/internal/sheet"
	"anand/fintrack/internal/statement"

	"github.com/shopspring/decimal"
)

// ParseStatement runs the full ingestion pipeline over a statement
// file: format detection from the extension, decode, header and column
// resolution, row normalization and categorization. Both the parse and
// upload commands go through here.
func ParseStatement(ctx context.Context, path string, parser *statement.Parser, log logging.Logger) (statement.Batch, error) {
	format, err := sheet.FormatForFile(path)
	if err != nil {
		return statement.Batch{}, err
	}

	f, err := os.Open(path) // #nosec G304 -- input path comes from the CLI flag
	if err != nil {
		return statement.Batch{}, fmt.Errorf("could not open statement file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	log.Info("Parsing statement",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: string(format)})

	return parser.Parse(ctx, f, format)
}

// ParserOptions derives statement parser options from the loaded
// configuration.
func ParserOptions(cfg *config.Config) []statement.Option {
	var opts []statement.Option
	if cfg != nil && cfg.Parser.MinMaterialAmount > 0 {
		opts = append(opts, statement.WithNormalizeOptions(
			normalize.WithMinMaterialAmount(decimal.NewFromInt(int64(cfg.Parser.MinMaterialAmount)))))
	}
	return opts
}
