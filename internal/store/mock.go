package store

import (
	"context"
	"fmt"
	"time"

	"anand/fintrack/internal/models"
)

// MockStore is an in-memory TransactionStore for tests, with
// injectable errors to exercise failure paths.
type MockStore struct {
	Transactions map[string][]models.Transaction

	FindErr   error
	InsertErr error
	DeleteErr error
	ListErr   error

	// FailAfterInserts makes Insert start failing once that many
	// inserts have succeeded. Zero means never fail this way.
	FailAfterInserts int

	inserted int
	nextID   int
}

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{Transactions: make(map[string][]models.Transaction)}
}

// FindByKey checks the in-memory records for the key triple.
func (m *MockStore) FindByKey(_ context.Context, userID string, key Key) (bool, error) {
	if m.FindErr != nil {
		return false, m.FindErr
	}
	for _, tx := range m.Transactions[userID] {
		if tx.Date == key.Date && tx.Description == key.Description && tx.Amount.Equal(key.Amount) {
			return true, nil
		}
	}
	return false, nil
}

// Insert appends the transaction with a deterministic ID.
func (m *MockStore) Insert(_ context.Context, userID string, tx models.Transaction) (models.Transaction, error) {
	if m.InsertErr != nil {
		return models.Transaction{}, m.InsertErr
	}
	if m.FailAfterInserts > 0 && m.inserted >= m.FailAfterInserts {
		return models.Transaction{}, fmt.Errorf("mock store: insert limit reached")
	}

	m.nextID++
	m.inserted++
	tx.ID = fmt.Sprintf("tx-%d", m.nextID)
	tx.CreatedAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	m.Transactions[userID] = append(m.Transactions[userID], tx)
	return tx, nil
}

// Delete removes by ID.
func (m *MockStore) Delete(_ context.Context, userID, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	txs := m.Transactions[userID]
	for i, tx := range txs {
		if tx.ID == id {
			m.Transactions[userID] = append(txs[:i], txs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("transaction %s not found", id)
}

// ListByCategory filters the in-memory records.
func (m *MockStore) ListByCategory(_ context.Context, userID, category string) ([]models.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var result []models.Transaction
	for _, tx := range m.Transactions[userID] {
		if tx.Category == category {
			result = append(result, tx)
		}
	}
	return result, nil
}

// ListAll returns everything stored for the user.
func (m *MockStore) ListAll(_ context.Context, userID string) ([]models.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]models.Transaction(nil), m.Transactions[userID]...), nil
}
