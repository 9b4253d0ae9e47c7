package limit

import (
	"context"

	"pennywise/internal/category"
)

type Repository interface {
	ListLimits(ctx context.Context) ([]Limit, error)
	UpdateLimit(ctx context.Context, cat string, cents int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the configured limits in their stored order.
func (s *Service) List(ctx context.Context) ([]Limit, error) {
	return s.repo.ListLimits(ctx)
}

// Update replaces the threshold for an expense category in place.
func (s *Service) Update(ctx context.Context, cat string, cents int64) error {
	if cents < 0 {
		return ErrInvalidLimit
	}

	if !category.IsExpense(cat) {
		return ErrInvalidCategory
	}

	return s.repo.UpdateLimit(ctx, cat, cents)
}
