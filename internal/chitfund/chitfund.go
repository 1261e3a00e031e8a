// Package chitfund builds manual chit fund payment entries. A chit
// fund payment is a fixed monthly beat amount reduced by the dividend
// the subscriber received that month; only the net amount is an
// expense.
package chitfund

import (
	"context"
	"fmt"

	"anand/fintrack/internal/dateutils"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/persister"
	"anand/fintrack/internal/store"

	"github.com/shopspring/decimal"
)

// DefaultBeatAmount is the fixed monthly contribution.
var DefaultBeatAmount = decimal.NewFromInt(50000)

// Entry is one manual chit fund payment before persistence.
type Entry struct {
	Date       string
	Beat       decimal.Decimal
	Dividend   decimal.Decimal
	Descriptor string
}

// NewEntry validates the inputs and computes the net payment. The
// dividend must leave a positive net amount; a dividend at or above
// the beat amount means no money changed hands and is rejected.
func NewEntry(date string, beat, dividend decimal.Decimal, descriptor string) (Entry, error) {
	if _, err := dateutils.ParseISODate(date); err != nil {
		return Entry{}, fmt.Errorf("invalid payment date: %w", err)
	}
	if !beat.IsPositive() {
		return Entry{}, fmt.Errorf("beat amount must be positive, got %s", beat)
	}
	if dividend.IsNegative() {
		return Entry{}, fmt.Errorf("dividend cannot be negative, got %s", dividend)
	}
	if dividend.GreaterThanOrEqual(beat) {
		return Entry{}, fmt.Errorf("dividend %s must be below the beat amount %s", dividend, beat)
	}
	return Entry{Date: date, Beat: beat, Dividend: dividend, Descriptor: descriptor}, nil
}

// NetPaid is the actual cash outflow: beat minus dividend.
func (e Entry) NetPaid() decimal.Decimal {
	return e.Beat.Sub(e.Dividend)
}

// Transaction materializes the entry as an expense transaction with
// the chit fund sub-record attached.
func (e Entry) Transaction() models.Transaction {
	desc := "Chit Fund Payment"
	if e.Descriptor != "" {
		desc = fmt.Sprintf("Chit Fund Payment (%s)", e.Descriptor)
	}
	return models.Transaction{
		Date:        e.Date,
		Description: desc,
		Amount:      e.NetPaid(),
		Type:        models.TypeExpense,
		Category:    models.CategoryChitFunds,
		Source:      models.SourceManualChit,
		ChitFund: &models.ChitFundDetails{
			BeatAmount:       e.Beat,
			DividendReceived: e.Dividend,
			AmountPaid:       e.NetPaid(),
		},
	}
}

// Summary aggregates the user's chit fund history.
type Summary struct {
	Payments      int
	TotalBeat     decimal.Decimal
	TotalDividend decimal.Decimal
	TotalPaid     decimal.Decimal
}

// Service records and summarizes chit fund payments for a user.
type Service struct {
	store     store.TransactionStore
	persister *persister.Persister
	logger    logging.Logger
}

// NewService creates a chit fund service over the given store.
func NewService(s store.TransactionStore, logger logging.Logger) *Service {
	return &Service{
		store:     s,
		persister: persister.New(s, logger),
		logger:    logger,
	}
}

// Record persists one chit fund entry. The duplicate check applies the
// same way it does for statement uploads, so recording the same month
// twice is a no-op.
func (s *Service) Record(ctx context.Context, userID string, entry Entry) (persister.Result, error) {
	tx := entry.Transaction()
	result, err := s.persister.Persist(ctx, userID, []models.Transaction{tx})
	if err != nil {
		return result, err
	}

	s.logger.Info("Recorded chit fund payment",
		logging.Field{Key: logging.FieldDate, Value: entry.Date},
		logging.Field{Key: logging.FieldAmount, Value: entry.NetPaid().String()})
	return result, nil
}

// Summarize totals every chit fund transaction stored for the user.
func (s *Service) Summarize(ctx context.Context, userID string) (Summary, error) {
	txs, err := s.store.ListByCategory(ctx, userID, models.CategoryChitFunds)
	if err != nil {
		return Summary{}, fmt.Errorf("listing chit fund transactions: %w", err)
	}

	var summary Summary
	for _, tx := range txs {
		summary.Payments++
		summary.TotalPaid = summary.TotalPaid.Add(tx.Amount)
		if tx.ChitFund != nil {
			summary.TotalBeat = summary.TotalBeat.Add(tx.ChitFund.BeatAmount)
			summary.TotalDividend = summary.TotalDividend.Add(tx.ChitFund.DividendReceived)
		}
	}
	return summary, nil
}
