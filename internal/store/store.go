// Package store defines the document-store seam the persister writes
// through, plus a YAML-file-backed implementation for local use. The
// real deployment would put a hosted document database behind the same
// interface; everything above it only sees TransactionStore.
package store

import (
	"context"

	"anand/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Key is the logical identity used for duplicate detection: the
// (date, description, amount) triple. Deliberately coarse — two real
// transactions sharing all three fields are indistinguishable.
type Key struct {
	Date        string
	Description string
	Amount      decimal.Decimal
}

// KeyOf extracts the duplicate-detection key from a transaction.
func KeyOf(tx models.Transaction) Key {
	return Key{Date: tx.Date, Description: tx.Description, Amount: tx.Amount}
}

// TransactionStore is the per-user document collection holding
// persisted transactions. Implementations assign IDs and creation
// timestamps on insert.
type TransactionStore interface {
	// FindByKey returns whether a transaction with the exact
	// (date, description, amount) triple exists for the user.
	FindByKey(ctx context.Context, userID string, key Key) (bool, error)

	// Insert stores a transaction for the user, assigning its ID and
	// CreatedAt, and returns the stored record.
	Insert(ctx context.Context, userID string, tx models.Transaction) (models.Transaction, error)

	// Delete removes a transaction by its store-assigned identifier.
	Delete(ctx context.Context, userID, id string) error

	// ListByCategory returns the user's transactions with the exact
	// category label.
	ListByCategory(ctx context.Context, userID, category string) ([]models.Transaction, error)

	// ListAll returns every transaction stored for the user.
	ListAll(ctx context.Context, userID string) ([]models.Transaction, error)
}
