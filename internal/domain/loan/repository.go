package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]Loan, error)
	ListByStatus(ctx context.Context, status Status) ([]Loan, error)

	// UpdateStatus moves the loan from -> to only if it is still in from.
	// It reports false when another writer changed the status first.
	UpdateStatus(ctx context.Context, id uint64, from, to Status, at time.Time) (bool, error)
}
