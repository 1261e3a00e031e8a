// Package statement is the ingestion façade: it takes a raw statement
// file and produces a batch of categorized transactions plus the
// rejection diagnostics for every row that did not make it. It wires
// the sheet decoder, the column mapper, the row normalizer and the
// categorizer together; each stage lives in its own package and this
// one only orchestrates.
package statement

import (
	"context"
	"fmt"
	"io"

	"anand/fintrack/internal/categorizer"
	"anand/fintrack/internal/columnmap"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/normalize"
	"anand/fintrack/internal/sheet"
)

// Batch is the result of parsing one statement file.
type Batch struct {
	Transactions []models.Transaction
	Rejections   []models.Rejection

	// HeaderRow is the sheet index of the header row that was used.
	HeaderRow int
	// RowsScanned counts the data rows examined below the header.
	RowsScanned int
}

// Parser converts statement files into transaction batches.
type Parser struct {
	categorizer *categorizer.Categorizer
	logger      logging.Logger
	normOpts    []normalize.Option
}

// Option customizes a Parser.
type Option func(*Parser)

// WithNormalizeOptions forwards options to the per-sheet normalizer.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(p *Parser) {
		p.normOpts = append(p.normOpts, opts...)
	}
}

// NewParser creates a Parser using the given categorizer.
func NewParser(cat *categorizer.Categorizer, logger logging.Logger, opts ...Option) *Parser {
	p := &Parser{categorizer: cat, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a statement file, extracts its transaction table and
// normalizes every data row. Admitted rows come back categorized; the
// rest come back as rejections. Only decode failures are errors.
func (p *Parser) Parse(ctx context.Context, r io.Reader, format sheet.Format) (Batch, error) {
	grid, err := sheet.Decode(r, format)
	if err != nil {
		return Batch{}, fmt.Errorf("decoding %s statement: %w", format, err)
	}
	return p.ParseGrid(ctx, grid)
}

// ParseGrid runs the pipeline over an already decoded cell grid.
func (p *Parser) ParseGrid(ctx context.Context, grid [][]string) (Batch, error) {
	table := sheet.Extract(grid, p.logger)
	mapping := columnmap.Map(table.Headers)

	p.logger.Debug("Resolved column mapping",
		logging.Field{Key: logging.FieldHeaderRow, Value: table.HeaderIdx},
		logging.Field{Key: "date_column", Value: mapping.DateLabel(table.Headers)},
		logging.Field{Key: "description_column", Value: mapping.DescriptionLabel(table.Headers)})

	norm := normalize.New(table.Headers, mapping, p.logger, p.normOpts...)

	batch := Batch{HeaderRow: table.HeaderIdx, RowsScanned: len(table.Rows)}
	for _, idx := range table.Empty {
		batch.Rejections = append(batch.Rejections, models.Rejection{
			RowIndex: idx,
			Reason:   models.RejectEmptyRow,
		})
	}
	for _, row := range table.Rows {
		if err := ctx.Err(); err != nil {
			return batch, err
		}

		result := norm.Row(row)
		if !result.IsAdmitted() {
			batch.Rejections = append(batch.Rejections, *result.Rejection)
			p.logger.Debug("Rejected statement row",
				logging.Field{Key: logging.FieldRow, Value: result.Rejection.RowIndex},
				logging.Field{Key: logging.FieldReason, Value: result.Rejection.Reason})
			continue
		}

		tx := *result.Transaction
		tx.Category = p.categorizer.Categorize(ctx, tx.Description, tx.Type)
		batch.Transactions = append(batch.Transactions, tx)
	}

	p.logger.Info("Parsed statement",
		logging.Field{Key: logging.FieldCount, Value: len(batch.Transactions)},
		logging.Field{Key: logging.FieldSkipped, Value: len(batch.Rejections)})
	return batch, nil
}
