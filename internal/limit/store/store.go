// Package store keeps spending limits in memory, seeded with the
// default thresholds.
package store

import (
	"context"
	"slices"
	"sync"

	"pennywise/internal/limit"
)

type Store struct {
	mu     sync.RWMutex
	limits []limit.Limit
}

func New() *Store {
	return &Store{limits: limit.Defaults()}
}

func (s *Store) ListLimits(_ context.Context) ([]limit.Limit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.limits), nil
}

func (s *Store) UpdateLimit(_ context.Context, cat string, cents int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.limits {
		if s.limits[i].Category == cat {
			s.limits[i].Limit = cents
			return nil
		}
	}

	return limit.ErrNotFound
}
