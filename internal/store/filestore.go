package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"anand/fintrack/internal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// FileStore is a TransactionStore backed by a single YAML file,
// keyed by user. It loads the whole file on open and rewrites it on
// every mutation, which is fine at personal-finance scale.
type FileStore struct {
	path string

	mu   sync.RWMutex
	data fileData
	now  func() time.Time
}

type fileData struct {
	Users map[string][]models.Transaction `yaml:"users"`
}

// NewFileStore opens (or creates) a YAML-backed store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: fileData{Users: make(map[string][]models.Transaction)},
		now:  time.Now,
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- store path comes from user config
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("could not read store file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("could not parse store file: %w", err)
	}
	if s.data.Users == nil {
		s.data.Users = make(map[string][]models.Transaction)
	}
	return s, nil
}

// FindByKey reports whether a transaction with the key's exact
// (date, description, amount) triple exists for the user.
func (s *FileStore) FindByKey(ctx context.Context, userID string, key Key) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.data.Users[userID] {
		if tx.Date == key.Date && tx.Description == key.Description && tx.Amount.Equal(key.Amount) {
			return true, nil
		}
	}
	return false, nil
}

// Insert stores the transaction with a fresh ID and creation
// timestamp and persists the file.
func (s *FileStore) Insert(ctx context.Context, userID string, tx models.Transaction) (models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return models.Transaction{}, err
	}
	if err := tx.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("refusing to store invalid transaction: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.NewString()
	tx.CreatedAt = s.now()
	s.data.Users[userID] = append(s.data.Users[userID], tx)

	if err := s.flushLocked(); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// Delete removes the transaction with the given identifier.
func (s *FileStore) Delete(ctx context.Context, userID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	txs := s.data.Users[userID]
	for i, tx := range txs {
		if tx.ID == id {
			s.data.Users[userID] = append(txs[:i], txs[i+1:]...)
			return s.flushLocked()
		}
	}
	return fmt.Errorf("transaction %s not found for user %s", id, userID)
}

// ListByCategory returns the user's transactions with the category.
func (s *FileStore) ListByCategory(ctx context.Context, userID, category string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Transaction
	for _, tx := range s.data.Users[userID] {
		if tx.Category == category {
			result = append(result, tx)
		}
	}
	return result, nil
}

// ListAll returns every transaction stored for the user.
func (s *FileStore) ListAll(ctx context.Context, userID string) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Transaction(nil), s.data.Users[userID]...), nil
}

func (s *FileStore) flushLocked() error {
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("could not encode store file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("could not write store file: %w", err)
	}
	return nil
}
