package loanmock

import (
	"context"
	"time"

	domain "loanflow/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups return context.Canceled so a missing stub fails loudly.
type Repo struct {
	CreateFn         func(ctx context.Context, l *domain.Loan) error
	GetByIDFn        func(ctx context.Context, id uint64) (*domain.Loan, error)
	ListByCustomerFn func(ctx context.Context, customerID uint64) ([]domain.Loan, error)
	ListByStatusFn   func(ctx context.Context, status domain.Status) ([]domain.Loan, error)
	UpdateStatusFn   func(ctx context.Context, id uint64, from, to domain.Status, at time.Time) (bool, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Loan, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Loan, error) {
	if m.ListByCustomerFn != nil {
		return m.ListByCustomerFn(ctx, customerID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, from, to domain.Status, at time.Time) (bool, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, from, to, at)
	}
	return true, nil
}
