// Package store holds transactions in memory for the lifetime of the
// process. There is deliberately no persistence behind it: the
// Repository seam in the transaction package is where a database-backed
// store would slot in.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"pennywise/internal/transaction"
)

type Store struct {
	mu  sync.RWMutex
	txs []*transaction.Transaction
}

func New() *Store {
	return &Store{}
}

func (s *Store) CreateTransaction(_ context.Context, tx *transaction.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.CreatedAt = time.Now()
	s.txs = append(s.txs, tx)

	return nil
}

func (s *Store) GetTransaction(_ context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, nil
		}
	}

	return nil, transaction.ErrNotFound
}

// ListTransactions returns the collection in insertion order. The slice
// is a copy, so callers get a consistent snapshot even if transactions
// are added while a report pass is running.
func (s *Store) ListTransactions(_ context.Context) ([]*transaction.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.txs), nil
}
