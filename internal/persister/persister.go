// Package persister writes normalized transactions to a
// TransactionStore, skipping records the user already holds. Duplicate
// detection is an exists-then-insert round trip per transaction rather
// than a bulk query, so partially persisted batches stay consistent
// when an error interrupts the run.
package persister

import (
	"context"
	"fmt"

	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/models"
	"anand/fintrack/internal/store"
)

// Result reports what a batch upload did.
type Result struct {
	Inserted int
	Skipped  int
}

// Persister uploads batches of transactions for a single owner.
type Persister struct {
	store  store.TransactionStore
	logger logging.Logger
}

// New creates a Persister over the given store.
func New(s store.TransactionStore, logger logging.Logger) *Persister {
	return &Persister{store: s, logger: logger}
}

// Persist uploads the batch for the user, inserting transactions whose
// (date, description, amount) triple is not already stored and
// counting the rest as skipped. Transactions are processed in order;
// the first store error halts the remainder and the partial counts are
// returned alongside it.
func (p *Persister) Persist(ctx context.Context, userID string, txs []models.Transaction) (Result, error) {
	var result Result

	for i, tx := range txs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		key := store.KeyOf(tx)
		exists, err := p.store.FindByKey(ctx, userID, key)
		if err != nil {
			return result, fmt.Errorf("duplicate check for transaction %d: %w", i, err)
		}
		if exists {
			result.Skipped++
			p.logger.Debug("Skipping duplicate transaction",
				logging.Field{Key: logging.FieldDate, Value: key.Date},
				logging.Field{Key: logging.FieldAmount, Value: key.Amount.String()})
			continue
		}

		if _, err := p.store.Insert(ctx, userID, tx); err != nil {
			return result, fmt.Errorf("insert of transaction %d: %w", i, err)
		}
		result.Inserted++
	}

	p.logger.Info("Persisted transaction batch",
		logging.Field{Key: logging.FieldUser, Value: userID},
		logging.Field{Key: logging.FieldInserted, Value: result.Inserted},
		logging.Field{Key: logging.FieldSkipped, Value: result.Skipped})
	return result, nil
}
