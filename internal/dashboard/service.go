// Package dashboard assembles the derived views the frontend renders:
// totals, spending trend, exceeded limits and the most recent
// transactions, all computed from one filtered snapshot.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"pennywise/internal/limit"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

// Clock supplies "now" for date-range filtering.
type Clock func() time.Time

type Service struct {
	transactions *transaction.Service
	limits       *limit.Service
	now          Clock
}

// NewService creates a dashboard service. now may be nil, in which case
// the wall clock is used.
func NewService(txSvc *transaction.Service, limitSvc *limit.Service, now Clock) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{transactions: txSvc, limits: limitSvc, now: now}
}

// Overview is everything one dashboard render needs.
type Overview struct {
	Summary  report.Summary
	Trend    []report.TrendPoint
	Exceeded []report.Exceeded
	Recent   []*transaction.Transaction
}

// Overview computes the dashboard for the given filter. The clock is
// sampled once so every date-range decision in the pass shares the same
// reference instant. recentN bounds the recent-transactions list.
func (s *Service) Overview(ctx context.Context, f report.FilterSpec, recentN int) (*Overview, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	limits, err := s.limits.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing limits: %w", err)
	}

	view := report.Apply(txs, f, s.now())

	return &Overview{
		Summary:  report.Aggregate(view),
		Trend:    report.DailyExpenseTrend(view),
		Exceeded: report.CheckLimits(view, limits),
		Recent:   report.Recent(view, recentN),
	}, nil
}

// Filtered returns the transactions matching the filter, in insertion
// order.
func (s *Service) Filtered(ctx context.Context, f report.FilterSpec) ([]*transaction.Transaction, error) {
	txs, err := s.transactions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return report.Apply(txs, f, s.now()), nil
}
